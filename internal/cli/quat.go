package cli

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"kiss3d"
)

type QuatOptions struct {
	*GlobalOptions

	Axis    []float64
	Angle   float64
	Degrees bool

	axis  kiss3d.Vec
	angle kiss3d.Float
}

const quatExample = `  # Quarter turn about i
  kiss3d quat --axis 1,0,0 --angle 90 --degrees

  # The axis is normalized for you
  kiss3d quat --axis 1,2,3 --angle 0.423 -o json`

func NewCmdQuat(g *GlobalOptions) *cobra.Command {
	o := &QuatOptions{GlobalOptions: g}

	cmd := &cobra.Command{
		Use:     "quat",
		Short:   "Convert an axis-angle rotation to a unit quaternion",
		Example: quatExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().Float64SliceVar(&o.Axis, "axis", nil, "Rotation axis i,j,k; need not be unit length")
	cmd.Flags().Float64Var(&o.Angle, "angle", 0, "Rotation angle, in radians unless --degrees")
	cmd.Flags().BoolVar(&o.Degrees, "degrees", false, "Read --angle in degrees")
	markRequired(cmd, "axis")
	return cmd
}

func (o *QuatOptions) Complete() error {
	axis, err := vecFromFlag("axis", o.Axis)
	if err != nil {
		return err
	}
	o.axis = axis
	o.angle = toRadians(o.Angle, o.Degrees)
	return nil
}

func (o *QuatOptions) Run() error {
	o.Log.WithFields(logrus.Fields{"axis": o.axis, "angle": o.angle}).Debug("converting rotation")
	q, ok := kiss3d.RotationToQuat(o.axis, o.angle, o.Tol)
	if !ok {
		return errors.Wrapf(ErrNotRepresentable, "axis %v, angle %v", o.axis, o.angle)
	}
	return o.Print(q)
}
