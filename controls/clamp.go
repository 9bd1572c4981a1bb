package controls

import (
	"math"

	"github.com/samber/lo"
)

// Clamp limits value to [low, high]. NaN collapses to low so a non-finite
// ratio never reaches the engine.
func Clamp(value, low, high float64) float64 {
	if math.IsNaN(value) {
		return low
	}
	return lo.Clamp(value, low, high)
}
