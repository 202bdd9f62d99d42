//go:build !math32

package m // import "kiss3d/m"

import (
	"math"
)

// Float is the scalar type of every vector, quaternion and angle.
type Float = float64

// Tol is the default tolerance for comparisons and degeneracy checks.
const Tol Float = 1e-6

const MaxFloat = math.MaxFloat64

var Epsilon Float

func init() {
	Epsilon = math.Nextafter(1, 2) - 1
}

func Abs(x Float) Float {
	return math.Abs(x)
}

func Sqrt(x Float) Float {
	return math.Sqrt(x)
}

func Cos(x Float) Float {
	return math.Cos(x)
}

func Sin(x Float) Float {
	return math.Sin(x)
}

func Acos(x Float) Float {
	return math.Acos(x)
}

func Atan2(y, x Float) Float {
	return math.Atan2(y, x)
}
