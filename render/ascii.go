package render

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/lguibr/keepinside/game"
	"github.com/lguibr/keepinside/utils"
)

func ClearScreen() {
	var cmd *exec.Cmd
	switch os := runtime.GOOS; os {
	case "windows":
		cmd = exec.Command("cmd", "/c", "cls")
	default: // Unix-like system
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}

// Cell glyphs
const (
	glyphEmpty       = " "
	glyphRing        = "."
	glyphOuterPaddle = "@"
	glyphInnerPaddle = "0"
	glyphHitPaddle   = "*"
	glyphBall        = "O"
)

const arenaMargin = 10.0

// hitColor is the flash applied to a paddle that was hit this frame.
var hitColor = [3]int{255, 200, 0}

// rgbToAnsi converts an RGB triple to an ANSI escape code for that color
func rgbToAnsi(rgb [3]int) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", rgb[0], rgb[1], rgb[2])
}

// ScoreText is the big centered number shown during a rally.
func ScoreText(score int) string {
	return fmt.Sprintf("%d", score)
}

// BestText is the smaller label under the score.
func BestText(best int) string {
	return fmt.Sprintf("Best: %d", best)
}

// RenderArena draws a GameState as a resolution x resolution grid of
// characters. Rows grow with y, like screen space. Each cell is written twice
// so the circle keeps its aspect ratio in a terminal.
func RenderArena(state game.GameState, resolution int, color bool) string {
	if resolution <= 0 {
		return ""
	}
	outer := state.Paddles[utils.OuterPaddle]
	extent := outer.RadiusOrigin + outer.HalfHeight + arenaMargin
	cell := 2 * extent / float64(resolution)

	var ascii strings.Builder
	for j := 0; j < resolution; j++ {
		y := -extent + (float64(j)+0.5)*cell
		for i := 0; i < resolution; i++ {
			x := -extent + (float64(i)+0.5)*cell
			glyph, flash := cellGlyph(state, utils.Vector{X: x, Y: y}, cell)
			if color && flash {
				glyph = rgbToAnsi(hitColor) + glyph + "\033[0m" // Reset color after each character
			}
			ascii.WriteString(glyph)
			ascii.WriteString(glyph)
		}
		ascii.WriteString("\n")
	}
	return ascii.String()
}

func cellGlyph(state game.GameState, point utils.Vector, cell float64) (string, bool) {
	if state.Ball != nil && utils.Distance(point, state.Ball.Position) <= math.Max(state.Ball.Radius, cell/2) {
		return glyphBall, false
	}

	dist := utils.Length(point)
	angle := utils.AngleOf(point)
	for _, paddle := range state.Paddles {
		if math.Abs(dist-paddle.RadiusOrigin) > math.Max(paddle.HalfHeight, cell/2) {
			continue
		}
		if utils.AngularDistance(angle, paddle.AngleOrigin) > paddle.HalfSurfaceAngle {
			continue
		}
		if paddle.Hit != nil {
			return glyphHitPaddle, true
		}
		if paddle.Index == utils.OuterPaddle {
			return glyphOuterPaddle, false
		}
		return glyphInnerPaddle, false
	}

	if math.Abs(dist-state.Paddles[utils.OuterPaddle].RadiusOrigin) <= cell/2 {
		return glyphRing, false
	}
	return glyphEmpty, false
}
