package sim

import "math"

// CameraSystem centres the view on the player, clamped to the world.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (c *CameraSystem) Update(s *State) {
	if s == nil {
		return
	}
	s.Camera.X = CameraOffset(s.Player.X, s.Viewport.W, s.World.Width)
}

// CameraOffset is clamp(playerX - viewW/2, 0, worldW - viewW). A world
// narrower than the view pins the camera at 0.
func CameraOffset(playerX, viewW, worldW float64) float64 {
	return math.Max(0, math.Min(playerX-viewW/2, worldW-viewW))
}
