package math

import (
	"time"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// RangeConvertFloat32 remaps value from one range onto another.
func RangeConvertFloat32(value, oldMin, oldMax, newMin, newMax float32) float32 {
	return ((value-oldMin)*(newMax-newMin))/(oldMax-oldMin) + newMin
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length < K_FLOAT_EPSILON {
		return Vec3{}
	}
	return v.Scale(1.0 / length)
}

var randSeeded bool = false

// RandomFloat32 returns a random value in [0, 1).
func RandomFloat32() float32 {
	if !randSeeded {
		rand.Seed(uint64(time.Now().UnixNano()))
		randSeeded = true
	}
	return rand.Float32()
}

// RandomInRange returns a random value in [min, max).
func RandomInRange(min, max float32) float32 {
	return min + RandomFloat32()*(max-min)
}
