package kiss3d

import "kiss3d/m"

// Rotation is an axis-angle rotation, angle in radians. Axis need not be
// unit length; conversions normalize it.
type Rotation struct {
	Axis  Vec   `json:"axis"`
	Angle Float `json:"angle"`
}

// IsIdentity reports the degenerate rotation produced by QuatToRotation for
// quaternions close to ±1: a null axis and a zero angle.
func (rot Rotation) IsIdentity(tol Float) bool {
	return rot.Axis.IsNull(tol) && m.Abs(rot.Angle) < tol
}

// Quat is RotationToQuat(rot.Axis, rot.Angle, tol).
func (rot Rotation) Quat(tol Float) (Quat, bool) {
	return RotationToQuat(rot.Axis, rot.Angle, tol)
}

// Apply rotates v by rot. It fails, returning v, when rot has a null axis
// and a nonzero angle.
func (rot Rotation) Apply(v Vec, tol Float) (Vec, bool) {
	q, ok := rot.Quat(tol)
	if !ok {
		return v, false
	}
	return RotateByQuatRodrigues(v, q), true
}

// RotationToQuat returns the unit quaternion (cos(angle/2), sin(angle/2)·â)
// where â is axis normalized.
//
// A null axis only describes the identity: with |angle| < tol the result is
// Identity, otherwise the conversion fails and returns the zero Quat.
func RotationToQuat(axis Vec, angle, tol Float) (Quat, bool) {
	unit, ok := axis.NormalizeTol(tol)
	if !ok {
		if m.Abs(angle) < tol {
			return Identity, true
		}
		return Quat{}, false
	}
	h := angle * m.Half
	s := m.Sin(h)
	return Quat{R: m.Cos(h), I: s * unit.I, J: s * unit.J, K: s * unit.K}, true
}

// QuatToRotation extracts the unit axis and the angle in [0, 2π] encoded by
// q. It fails, returning the zero Rotation, when q is not unit within tol.
//
// When sin(angle/2) is below tol, that is q is close to ±Identity, the axis
// is undetermined. QuatToRotation then returns Rotation{Axis: Zeros} (the
// identity, see Rotation.IsIdentity) and true. For q close to -Identity this
// drops a full turn, which describes the same rotation.
func QuatToRotation(q Quat, tol Float) (Rotation, bool) {
	if !q.IsUnit(tol) {
		return Rotation{}, false
	}
	// |u| rather than sqrt(1-r²): the subtraction cancels for small angles
	sinHalf := q.vec().Norm()
	if sinHalf < tol {
		return Rotation{Axis: Zeros}, true
	}
	return Rotation{
		Axis:  q.vec().Kmul(m.One / sinHalf),
		Angle: m.Two * m.Atan2(sinHalf, q.R),
	}, true
}

// RotateByQuat rotates v by the unit quaternion q with the sandwich product
// q·(0,v)·conj(q). It fails, returning v untouched, when q is not unit
// within tol.
func RotateByQuat(v Vec, q Quat, tol Float) (Vec, bool) {
	if !q.IsUnit(tol) {
		return v, false
	}
	return q.Mul(Pure(v)).Mul(q.Conj()).vec(), true
}

// RotateByQuatRodrigues rotates v by q = (s, u) with
//
//	2·[(u·v)u + (s²-½)v + s(u×v)]
//
// q must be a unit quaternion. This is not checked: for any other q the
// result is wrong, not an error. Use RotateByQuat, or q.Normalize first,
// when q is not known to be unit.
func RotateByQuatRodrigues(v Vec, q Quat) Vec {
	s, u := q.R, q.vec()
	res := u.Kmul(u.Dot(v))
	res = res.Add(v.Kmul(s*s - m.Half))
	res = res.Add(u.Cross(v).Kmul(s))
	return res.Kmul(m.Two)
}
