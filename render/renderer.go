package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/fragmentrun/input"
	"github.com/milk9111/fragmentrun/input/controls"
	"github.com/milk9111/fragmentrun/sim"
)

// Renderer draws a State. It holds no simulation state of its own.
type Renderer struct {
	// Sprite selects the pixel-grid runner; false draws a flat rectangle.
	Sprite bool

	face ebtext.Face
}

func NewRenderer(sprite bool) *Renderer {
	return &Renderer{
		Sprite: sprite,
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw paints the world, the player and the HUD.
func (r *Renderer) Draw(screen *ebiten.Image, st *sim.State) {
	screen.Fill(BackgroundColor)
	r.drawBackground(screen, st)
	r.drawPlatforms(screen, st)
	r.drawEnemies(screen, st)
	r.drawPlayer(screen, st)
	r.drawHUD(screen, st)
}

func (r *Renderer) drawBackground(screen *ebiten.Image, st *sim.State) {
	for i := 0; i < stripCount; i++ {
		x := StripX(i, st.Camera.X, st.Viewport.W)
		vector.FillRect(screen, float32(x), stripY, stripW, stripH, StripColor, false)
	}
}

func (r *Renderer) drawPlatforms(screen *ebiten.Image, st *sim.State) {
	for _, p := range st.Platforms {
		vector.FillRect(screen, float32(p.X-st.Camera.X), float32(p.Y), float32(p.W), float32(p.H), PlatformColor, false)
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, st *sim.State) {
	for _, e := range st.Enemies {
		vector.FillRect(screen, float32(e.X-st.Camera.X), float32(e.Y), float32(e.W), float32(e.H), EnemyColor(e.Anim), false)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, st *sim.State) {
	p := &st.Player
	if !PlayerVisible(p.Invulnerable) {
		return
	}
	x := p.X - st.Camera.X
	if r.Sprite {
		for _, c := range Cells(RunnerFrame(p.State, p.Anim)) {
			vector.FillRect(screen, float32(x+float64(c.X*CellSize)), float32(p.Y+float64(c.Y*CellSize)), CellSize, CellSize, RunnerColor, false)
		}
	} else {
		vector.FillRect(screen, float32(x), float32(p.Y), float32(p.W), float32(p.H), RunnerColor, false)
	}

	if p.State == sim.AnimAttack {
		vector.FillRect(screen, float32(x+SlashOffset(p.Facing, p.W)), float32(p.Y+12), 12, 4, SlashColor, false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, st *sim.State) {
	r.drawText(screen, st.CurrentStage().Name, 12, 10)

	if st.Profile.HUD == sim.HUDHearts {
		for i := 0; i < st.Player.Health; i++ {
			ox := 12 + float64(i)*22
			for _, c := range Cells(heartFrame) {
				vector.FillRect(screen, float32(ox+float64(c.X*CellSize)), float32(30+c.Y*CellSize), CellSize, CellSize, HeartColor, false)
			}
		}
		return
	}
	r.drawText(screen, fmt.Sprintf("Fragments: %d", st.Fragments), 12, 30)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(HUDTextColor)
	ebtext.Draw(screen, s, r.face, op)
}

// DrawControls paints the touch joystick and the action buttons.
func (r *Renderer) DrawControls(screen *ebiten.Image, j *input.Joystick, buttons []controls.Button) {
	if j != nil {
		cx, cy := float32(j.CenterX), float32(j.CenterY)
		vector.FillCircle(screen, cx, cy, float32(j.Radius), ControlColor, true)
		vector.StrokeCircle(screen, cx, cy, float32(j.Radius), 2, ControlEdge, true)
		vector.FillCircle(screen, cx+float32(j.KnobOffset()), cy, float32(j.Radius)/2.5, ControlEdge, true)
	}

	for _, b := range buttons {
		vector.FillCircle(screen, float32(b.X), float32(b.Y), float32(b.R), ControlColor, true)
		vector.StrokeCircle(screen, float32(b.X), float32(b.Y), float32(b.R), 2, ControlEdge, true)
		label := b.Action.String()
		w, h := ebtext.Measure(label, r.face, 0)
		r.drawText(screen, label, b.X-w/2, b.Y-h/2)
	}
}
