package kiss3d

import (
	"fmt"
	"io"
)

func (u Vec) String() string {
	return fmt.Sprintf("vec3 (%g, %g, %g)", u.I, u.J, u.K)
}

func (q Quat) String() string {
	return fmt.Sprintf("quat (%g, %g, %g, %g)", q.R, q.I, q.J, q.K)
}

func (rot Rotation) String() string {
	return fmt.Sprintf("rotation %v angle %g rad", rot.Axis, rot.Angle)
}

// Fprint writes each value on its own line.
func Fprint(w io.Writer, vs ...fmt.Stringer) error {
	for _, v := range vs {
		if _, err := fmt.Fprintln(w, v.String()); err != nil {
			return err
		}
	}
	return nil
}
