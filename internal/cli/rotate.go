package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"kiss3d"
)

const (
	MethodSandwich  = "sandwich"
	MethodRodrigues = "rodrigues"
	MethodBoth      = "both"
)

type RotateOptions struct {
	*GlobalOptions

	Vec     []float64
	Quat    []float64
	Axis    []float64
	Angle   float64
	Degrees bool
	Method  string

	v        kiss3d.Vec
	q        kiss3d.Quat
	angleSet bool
}

// RotateResult reports both algorithms side by side.
type RotateResult struct {
	Sandwich  kiss3d.Vec   `json:"sandwich"`
	Rodrigues kiss3d.Vec   `json:"rodrigues"`
	Diff      kiss3d.Float `json:"diff"`
}

func (r RotateResult) String() string {
	return fmt.Sprintf("sandwich  %v\nrodrigues %v\ndiff      %g", r.Sandwich, r.Rodrigues, r.Diff)
}

const rotateExample = `  # Rotate j a quarter turn about i
  kiss3d rotate --vec 0,1,0 --quat 0.70710678,0.70710678,0,0

  # Same rotation from axis-angle, comparing both algorithms
  kiss3d rotate --vec 0,1,0 --axis 1,0,0 --angle 90 --degrees --method both`

func NewCmdRotate(g *GlobalOptions) *cobra.Command {
	o := &RotateOptions{GlobalOptions: g, Method: MethodSandwich}

	cmd := &cobra.Command{
		Use:     "rotate",
		Short:   "Rotate a vector by a quaternion or an axis-angle rotation",
		Example: rotateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.angleSet = cmd.Flags().Changed("angle") || cmd.Flags().Changed("degrees")
			if err := o.Complete(); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().Float64SliceVar(&o.Vec, "vec", nil, "Vector i,j,k to rotate")
	cmd.Flags().Float64SliceVar(&o.Quat, "quat", nil, "Rotation quaternion r,i,j,k")
	cmd.Flags().Float64SliceVar(&o.Axis, "axis", nil, "Rotation axis i,j,k, used with --angle instead of --quat")
	cmd.Flags().Float64Var(&o.Angle, "angle", 0, "Rotation angle, in radians unless --degrees")
	cmd.Flags().BoolVar(&o.Degrees, "degrees", false, "Read --angle in degrees")
	cmd.Flags().StringVar(&o.Method, "method", o.Method, "Algorithm: sandwich, rodrigues or both")
	markRequired(cmd, "vec")
	return cmd
}

func (o *RotateOptions) Complete() error {
	v, err := vecFromFlag("vec", o.Vec)
	if err != nil {
		return err
	}
	o.v = v

	switch {
	case len(o.Quat) > 0 && len(o.Axis) > 0:
		return errors.New("--quat and --axis are mutually exclusive")
	case len(o.Quat) > 0:
		if o.angleSet {
			return errors.New("--angle and --degrees only apply with --axis")
		}
		o.q, err = quatFromFlag("quat", o.Quat)
		return err
	case len(o.Axis) > 0:
		axis, err := vecFromFlag("axis", o.Axis)
		if err != nil {
			return err
		}
		angle := toRadians(o.Angle, o.Degrees)
		q, ok := kiss3d.RotationToQuat(axis, angle, o.Tol)
		if !ok {
			return errors.Wrapf(ErrNotRepresentable, "axis %v, angle %v", axis, angle)
		}
		o.q = q
		return nil
	default:
		return errors.New("one of --quat or --axis is required")
	}
}

func (o *RotateOptions) Validate() error {
	switch o.Method {
	case MethodSandwich, MethodRodrigues, MethodBoth:
		return nil
	default:
		return errors.Errorf("unknown method %q (supported: %s, %s, %s)", o.Method, MethodSandwich, MethodRodrigues, MethodBoth)
	}
}

func (o *RotateOptions) Run() error {
	log := o.Log.WithFields(logrus.Fields{"vec": o.v, "quat": o.q, "method": o.Method})
	log.Debug("rotating")

	switch o.Method {
	case MethodRodrigues:
		if !o.q.IsUnit(o.Tol) {
			log.Warn("quaternion is not unit norm, the rodrigues result is not a rotation")
		}
		return o.Print(kiss3d.RotateByQuatRodrigues(o.v, o.q))
	case MethodBoth:
		direct, ok := kiss3d.RotateByQuat(o.v, o.q, o.Tol)
		if !ok {
			return errors.Wrapf(ErrNotUnit, "%v has squared norm %v", o.q, o.q.NormSquare())
		}
		fast := kiss3d.RotateByQuatRodrigues(o.v, o.q)
		return o.Print(RotateResult{Sandwich: direct, Rodrigues: fast, Diff: direct.Sub(fast).Norm()})
	default:
		rotated, ok := kiss3d.RotateByQuat(o.v, o.q, o.Tol)
		if !ok {
			return errors.Wrapf(ErrNotUnit, "%v has squared norm %v", o.q, o.q.NormSquare())
		}
		return o.Print(rotated)
	}
}
