//go:build math32

package m // import "kiss3d/m"

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the scalar type of every vector, quaternion and angle.
type Float = float32

// Tol is the default tolerance for comparisons and degeneracy checks.
// Looser than the float64 value: float32 carries about 7 digits.
const Tol Float = 1e-5

const MaxFloat = math.MaxFloat32

var Epsilon Float

func init() {
	Epsilon = math.Nextafter32(1, 2) - 1
}

func Abs(x Float) Float {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func Sqrt(x Float) Float {
	return math32.Sqrt(x)
}

func Cos(x Float) Float {
	return math32.Cos(x)
}

func Sin(x Float) Float {
	return math32.Sin(x)
}

func Acos(x Float) Float {
	return math32.Acos(x)
}

func Atan2(y, x Float) Float {
	return math32.Atan2(y, x)
}
