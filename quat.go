package kiss3d

import "kiss3d/m"

var (
	Identity = Quat{R: 1}
	QuatI    = Quat{I: 1}
	QuatJ    = Quat{J: 1}
	QuatK    = Quat{K: 1}
)

// Quat is a quaternion with real part R and imaginary parts I, J, K. A unit
// quaternion represents a rotation; q and q.Neg() represent the same one.
type Quat struct {
	R Float `json:"r"`
	I Float `json:"i"`
	J Float `json:"j"`
	K Float `json:"k"`
}

// Pure embeds v as the quaternion (0, v).
func Pure(v Vec) Quat {
	return Quat{R: 0, I: v.I, J: v.J, K: v.K}
}

// Vec returns the imaginary part of q. ok is false when q is not pure, that
// is when the real part is not within tol of zero; the imaginary part is
// returned regardless.
func (q Quat) Vec(tol Float) (v Vec, ok bool) {
	return q.vec(), m.Abs(q.R) < tol
}

func (q Quat) vec() Vec {
	return Vec{I: q.I, J: q.J, K: q.K}
}

func (q Quat) NormSquare() Float {
	return q.R*q.R + q.I*q.I + q.J*q.J + q.K*q.K
}

func (q Quat) Norm() Float {
	return m.Sqrt(q.NormSquare())
}

// Equal compares component-wise within tol. It does not identify q with
// q.Neg(); compare rotations with SameRotation.
func (q Quat) Equal(p Quat, tol Float) bool {
	return m.Abs(q.R-p.R) < tol &&
		m.Abs(q.I-p.I) < tol &&
		m.Abs(q.J-p.J) < tol &&
		m.Abs(q.K-p.K) < tol
}

// SameRotation reports whether q and p are equal up to sign.
func (q Quat) SameRotation(p Quat, tol Float) bool {
	return q.Equal(p, tol) || q.Equal(p.Neg(), tol)
}

// IsUnit reports whether the squared norm is within tol of one.
func (q Quat) IsUnit(tol Float) bool {
	return m.Abs(q.NormSquare()-m.One) < tol
}

func (q Quat) Conj() Quat {
	return Quat{R: q.R, I: -q.I, J: -q.J, K: -q.K}
}

func (q Quat) Neg() Quat {
	return Quat{R: -q.R, I: -q.I, J: -q.J, K: -q.K}
}

func (q Quat) Add(p Quat) Quat {
	return Quat{R: q.R + p.R, I: q.I + p.I, J: q.J + p.J, K: q.K + p.K}
}

func (q Quat) Sub(p Quat) Quat {
	return Quat{R: q.R - p.R, I: q.I - p.I, J: q.J - p.J, K: q.K - p.K}
}

func (q Quat) Kmul(k Float) Quat {
	return Quat{R: k * q.R, I: k * q.I, J: k * q.J, K: k * q.K}
}

// Mul returns the Hamilton product q*p. It is not commutative.
func (q Quat) Mul(p Quat) Quat {
	return Quat{
		R: q.R*p.R - q.I*p.I - q.J*p.J - q.K*p.K,
		I: q.R*p.I + q.I*p.R + q.J*p.K - q.K*p.J,
		J: q.R*p.J - q.I*p.K + q.J*p.R + q.K*p.I,
		K: q.R*p.K + q.I*p.J - q.J*p.I + q.K*p.R,
	}
}

// Inverse returns conj(q)/|q|². It fails, returning q, when the squared norm
// is below tol.
func (q Quat) Inverse(tol Float) (Quat, bool) {
	n2 := q.NormSquare()
	if n2 < tol {
		return q, false
	}
	return q.Conj().Kmul(m.One / n2), true
}

// Normalize returns q scaled to unit norm. It fails, returning q, when the
// squared norm is below tol.
func (q Quat) Normalize(tol Float) (Quat, bool) {
	n2 := q.NormSquare()
	if n2 < tol {
		return q, false
	}
	return q.Kmul(m.One / m.Sqrt(n2)), true
}
