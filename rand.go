package kiss3d

import "kiss3d/m"

// RandomInUnitBall draws a non-null vector inside the unit ball.
func RandomInUnitBall(rnd *m.RandState) Vec {
	var u Vec
	var norm Float
	for {
		u = Vec{I: rnd.Signed(), J: rnd.Signed(), K: rnd.Signed()}
		norm = u.Norm()
		if m.Epsilon <= norm && norm < 1 {
			break
		}
	}
	return u
}

// RandomUnitQuat draws a unit quaternion, uniform over rotations: points
// inside the unit 4-ball projected onto the sphere.
func RandomUnitQuat(rnd *m.RandState) Quat {
	var q Quat
	var n2 Float
	for {
		q = Quat{R: rnd.Signed(), I: rnd.Signed(), J: rnd.Signed(), K: rnd.Signed()}
		n2 = q.NormSquare()
		if m.Tol <= n2 && n2 < 1 {
			break
		}
	}
	return q.Kmul(m.One / m.Sqrt(n2))
}
