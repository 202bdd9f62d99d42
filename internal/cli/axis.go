package cli

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"kiss3d"
)

type AxisOptions struct {
	*GlobalOptions

	Quat      []float64
	Normalize bool

	q kiss3d.Quat
}

const axisExample = `  # Axis and angle of a quarter turn about i
  kiss3d axis --quat 0.70710678,0.70710678,0,0

  # Scale an arbitrary quaternion to unit norm first
  kiss3d axis --quat 1,1,0,0 --normalize`

func NewCmdAxis(g *GlobalOptions) *cobra.Command {
	o := &AxisOptions{GlobalOptions: g}

	cmd := &cobra.Command{
		Use:     "axis",
		Short:   "Extract the axis and angle encoded by a unit quaternion",
		Example: axisExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().Float64SliceVar(&o.Quat, "quat", nil, "Quaternion r,i,j,k")
	cmd.Flags().BoolVar(&o.Normalize, "normalize", false, "Scale the quaternion to unit norm before converting")
	markRequired(cmd, "quat")
	return cmd
}

func (o *AxisOptions) Complete() error {
	q, err := quatFromFlag("quat", o.Quat)
	if err != nil {
		return err
	}
	if o.Normalize {
		unit, ok := q.Normalize(o.Tol)
		if !ok {
			return errors.Errorf("cannot normalize %v", q)
		}
		q = unit
	}
	o.q = q
	return nil
}

func (o *AxisOptions) Run() error {
	o.Log.WithField("quat", o.q).Debug("extracting rotation")
	rot, ok := kiss3d.QuatToRotation(o.q, o.Tol)
	if !ok {
		return errors.Wrapf(ErrNotUnit, "%v has squared norm %v", o.q, o.q.NormSquare())
	}
	if rot.IsIdentity(o.Tol) {
		o.Log.WithFields(logrus.Fields{"quat": o.q}).Info("identity rotation, axis undetermined")
	}
	return o.Print(rot)
}
