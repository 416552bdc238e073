package common

import "github.com/jakecoffman/cp"

// Default logical surface size used before the first Layout call.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Clamp bounds v to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi float64) float64 {
	return cp.Clamp(v, lo, hi)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
