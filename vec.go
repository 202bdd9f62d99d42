// Package kiss3d provides 3D vector and quaternion arithmetic, conversion
// between axis-angle rotations and unit quaternions, and rotation of
// vectors by quaternions.
//
// All types are plain values. Operations never mutate their operands; they
// return new values. Operations that can fail on degenerate input return an
// extra bool, and on failure the returned value is the unchanged input
// unless documented otherwise.
//
// The scalar type is m.Float: float64 by default, float32 with -tags math32.
package kiss3d // import "kiss3d"

import "kiss3d/m"

type Float = m.Float

// DefaultTol is the tolerance used when the caller has no better value.
const DefaultTol = m.Tol

var (
	Zeros = Vec{0, 0, 0}
	UnitI = Vec{1, 0, 0}
	UnitJ = Vec{0, 1, 0}
	UnitK = Vec{0, 0, 1}
)

// Vec is a vector in a right-handed Cartesian frame.
type Vec struct {
	I Float `json:"i"`
	J Float `json:"j"`
	K Float `json:"k"`
}

// IsNull reports whether every component is within tol of zero.
func (u Vec) IsNull(tol Float) bool {
	return m.Abs(u.I) < tol && m.Abs(u.J) < tol && m.Abs(u.K) < tol
}

// Equal compares component-wise within tol.
func (u Vec) Equal(v Vec, tol Float) bool {
	return m.Abs(u.I-v.I) < tol && m.Abs(u.J-v.J) < tol && m.Abs(u.K-v.K) < tol
}

func (u Vec) Neg() Vec {
	return Vec{I: -u.I, J: -u.J, K: -u.K}
}

func (u Vec) Add(v Vec) Vec {
	return Vec{I: u.I + v.I, J: u.J + v.J, K: u.K + v.K}
}

func (u Vec) Sub(v Vec) Vec {
	return Vec{I: u.I - v.I, J: u.J - v.J, K: u.K - v.K}
}

func (u Vec) Kmul(k Float) Vec {
	return Vec{I: k * u.I, J: k * u.J, K: k * u.K}
}

func (u Vec) Dot(v Vec) Float {
	return u.I*v.I + u.J*v.J + u.K*v.K
}

// Cross is right-handed: UnitI.Cross(UnitJ) == UnitK.
func (u Vec) Cross(v Vec) Vec {
	return Vec{
		I: u.J*v.K - u.K*v.J,
		J: u.K*v.I - u.I*v.K,
		K: u.I*v.J - u.J*v.I,
	}
}

func (u Vec) NormSquare() Float {
	return u.Dot(u)
}

func (u Vec) Norm() Float {
	return m.Sqrt(u.Dot(u))
}

// Normalize returns u scaled to unit norm. It fails, returning u, when u is
// null within DefaultTol.
func (u Vec) Normalize() (Vec, bool) {
	return u.NormalizeTol(DefaultTol)
}

// NormalizeTol is Normalize with an explicit null tolerance.
func (u Vec) NormalizeTol(tol Float) (Vec, bool) {
	if u.IsNull(tol) {
		return u, false
	}
	return u.Kmul(m.One / u.Norm()), true
}

// Colinear reports whether u×v is null within tol. The zero vector is
// colinear with everything, and parallel and anti-parallel are not told
// apart.
func (u Vec) Colinear(v Vec, tol Float) bool {
	return u.Cross(v).IsNull(tol)
}
