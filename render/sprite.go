package render

import (
	"math"

	"github.com/milk9111/fragmentrun/sim"
)

// CellSize is the on-screen size of one sprite pixel.
const CellSize = 4

// runnerFrames are 6x6 bitmaps; '1' cells are drawn.
var runnerFrames = map[sim.AnimState][][]string{
	sim.AnimIdle: {
		{"001100", "011110", "111111", "101101", "111111", "011110"},
		{"001100", "011110", "111111", "101101", "111111", "010010"},
	},
	sim.AnimRun: {
		{"001100", "011110", "111111", "101101", "111111", "110010"},
		{"001100", "011110", "111111", "101101", "111111", "010011"},
	},
	sim.AnimJump: {
		{"001100", "011110", "111111", "101101", "010010", "010010"},
	},
	sim.AnimAttack: {
		{"001100", "011110", "111111", "101101", "111111", "001111"},
	},
}

var heartFrame = []string{"0101", "1111", "1111", "0110"}

// RunnerFrame picks the bitmap for an animation state and phase.
func RunnerFrame(state sim.AnimState, anim float64) []string {
	frames, ok := runnerFrames[state]
	if !ok {
		frames = runnerFrames[sim.AnimIdle]
	}
	i := int(math.Floor(anim)) % len(frames)
	if i < 0 {
		i += len(frames)
	}
	return frames[i]
}

// Cell is one lit sprite pixel in grid coordinates.
type Cell struct {
	X, Y int
}

// Cells lists the lit cells of a bitmap in row-major order.
func Cells(frame []string) []Cell {
	var out []Cell
	for y, row := range frame {
		for x, c := range row {
			if c == '1' {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}
