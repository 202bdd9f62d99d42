package kiss3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gquat "gonum.org/v1/gonum/num/quat"

	"kiss3d/m"
)

func randQuat(rnd *m.RandState, scale Float) Quat {
	return Quat{rnd.Signed(), rnd.Signed(), rnd.Signed(), rnd.Signed()}.Kmul(scale)
}

func toGonum(q Quat) gquat.Number {
	return gquat.Number{Real: float64(q.R), Imag: float64(q.I), Jmag: float64(q.J), Kmag: float64(q.K)}
}

func fromGonum(n gquat.Number) Quat {
	return Quat{R: Float(n.Real), I: Float(n.Imag), J: Float(n.Jmag), K: Float(n.Kmag)}
}

func TestQuatNorm(t *testing.T) {
	q := Quat{1, 2, 3, 4}
	assert.InDelta(t, 5.477225575051661, q.Norm(), float64(tol))
	assert.InDelta(t, 30, q.NormSquare(), float64(tol))
}

func TestQuatConj(t *testing.T) {
	q := Quat{1, 2, 3, 4}
	assert.True(t, q.Conj().Equal(Quat{1, -2, -3, -4}, tol))
	assert.Equal(t, Quat{1, 2, 3, 4}, q)
	assert.True(t, q.Conj().Conj().Equal(q, tol))
}

func TestQuatIsUnit(t *testing.T) {
	for _, q := range []Quat{Identity, QuatI, QuatJ, QuatK, {0.5, 0.5, 0.5, 0.5}, Identity.Neg()} {
		assert.True(t, q.IsUnit(tol), "%v", q)
	}
	for _, q := range []Quat{{}, {1, 1, 0, 0}, {0.5, 0, 0, 0}} {
		assert.False(t, q.IsUnit(tol), "%v", q)
	}
}

func TestQuatAddSub(t *testing.T) {
	p, q := Quat{1, 2, 3, 4}, Quat{10, 20, 30, 40}
	assert.Equal(t, Quat{11, 22, 33, 44}, p.Add(q))
	assert.Equal(t, Quat{9, 18, 27, 36}, q.Sub(p))
	assert.Equal(t, Quat{2, 4, 6, 8}, p.Kmul(2))
}

func TestQuatMulTable(t *testing.T) {
	mr := Identity.Neg()
	tcs := []struct {
		l, r, want Quat
	}{
		{Identity, Identity, Identity},
		{Identity, QuatI, QuatI},
		{Identity, QuatJ, QuatJ},
		{Identity, QuatK, QuatK},

		{QuatI, Identity, QuatI},
		{QuatI, QuatI, mr},
		{QuatI, QuatJ, QuatK},
		{QuatI, QuatK, QuatJ.Neg()},

		{QuatJ, Identity, QuatJ},
		{QuatJ, QuatI, QuatK.Neg()},
		{QuatJ, QuatJ, mr},
		{QuatJ, QuatK, QuatI},

		{QuatK, Identity, QuatK},
		{QuatK, QuatI, QuatJ},
		{QuatK, QuatJ, QuatI.Neg()},
		{QuatK, QuatK, mr},
	}
	for _, tc := range tcs {
		got := tc.l.Mul(tc.r)
		assert.True(t, got.Equal(tc.want, tol), "%v * %v = %v, want %v", tc.l, tc.r, got, tc.want)
	}
}

func TestQuatMulMatchesGonum(t *testing.T) {
	rnd := m.NewRand(3)
	for i := 0; i < 500; i++ {
		p, q := randQuat(rnd, 2), randQuat(rnd, 2)
		want := fromGonum(gquat.Mul(toGonum(p), toGonum(q)))
		got := p.Mul(q)
		require.True(t, got.Equal(want, 10*tol), "%v * %v = %v, gonum %v", p, q, got, want)

		assert.True(t, p.Conj().Equal(fromGonum(gquat.Conj(toGonum(p))), tol))
		assert.InDelta(t, gquat.Abs(toGonum(p)), p.Norm(), float64(tol))
	}
}

func TestQuatInverse(t *testing.T) {
	got, ok := Quat{}.Inverse(tol)
	require.False(t, ok)
	assert.Equal(t, Quat{}, got)

	small := Quat{tol / 10, 0, 0, 0}
	got, ok = small.Inverse(tol)
	require.False(t, ok)
	assert.Equal(t, small, got)

	rnd := m.NewRand(5)
	for i := 0; i < 500; i++ {
		q := randQuat(rnd, 3)
		if q.NormSquare() < 0.01 {
			continue
		}
		inv, ok := q.Inverse(tol)
		require.True(t, ok, "%v", q)
		assert.True(t, q.Mul(inv).Equal(Identity, tol), "q*inv(q) = %v", q.Mul(inv))
		assert.True(t, inv.Mul(q).Equal(Identity, tol), "inv(q)*q = %v", inv.Mul(q))
		assert.True(t, inv.Equal(fromGonum(gquat.Inv(toGonum(q))), tol))
	}
}

func TestQuatNormalize(t *testing.T) {
	_, ok := Quat{}.Normalize(tol)
	require.False(t, ok)

	q, ok := Quat{1, 2, 3, 4}.Normalize(tol)
	require.True(t, ok)
	assert.True(t, q.IsUnit(tol))
	assert.InDelta(t, 1/5.477225575051661, q.R, float64(tol))
}

func TestQuatPure(t *testing.T) {
	v := Vec{1, 2, 3}
	q := Pure(v)
	assert.Equal(t, Quat{0, 1, 2, 3}, q)

	got, ok := q.Vec(tol)
	require.True(t, ok)
	assert.Equal(t, v, got)

	got, ok = Quat{1, 1, 2, 3}.Vec(tol)
	require.False(t, ok)
	assert.Equal(t, v, got)

	// the product of two pure quaternions is (-u·v, u×v)
	u, w := Vec{1, 2, 3}, Vec{-2, 0.5, 4}
	p := Pure(u).Mul(Pure(w))
	assert.InDelta(t, float64(-u.Dot(w)), p.R, float64(tol))
	assert.True(t, p.vec().Equal(u.Cross(w), tol))
}

func TestQuatSameRotation(t *testing.T) {
	q := Quat{0.5, 0.5, -0.5, 0.5}
	assert.True(t, q.SameRotation(q.Neg(), tol))
	assert.True(t, q.SameRotation(q, tol))
	assert.False(t, q.SameRotation(q.Conj(), tol))
}
