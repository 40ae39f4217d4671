package game

import (
	"math"

	"github.com/lguibr/keepinside/utils"
)

// AimFromPointer is the aim angle of a pointer given in arena coordinates.
func AimFromPointer(pointer utils.Vector) float64 {
	return math.Atan2(pointer.Y, pointer.X)
}

// AimFromStick reduces an analog stick sample to an aim angle. Both axes must
// leave the dead zone, otherwise the sample is ignored.
func AimFromStick(x, y, deadZone float64) (float64, bool) {
	if math.Abs(x) <= deadZone || math.Abs(y) <= deadZone {
		return 0, false
	}
	return math.Atan2(y, x), true
}
