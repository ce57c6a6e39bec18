package tui

import (
	"fmt"

	"github.com/RainerBlessing/fuel-drift/internal/core"
	"github.com/RainerBlessing/fuel-drift/internal/sim"
)

// Visual characters for rendering
const (
	WallChar      = '█'
	WallEdgeTop   = '▀'
	WallEdgeBot   = '▄'
	PlayerChar    = '▶'
	PickupChar    = '◆'
	BeamChar      = '·'
	GaugeFull     = '█'
	GaugeEmpty    = '─'
	GaugeSegments = 20
)

// hudRows is the number of screen rows reserved for the HUD at the top.
const hudRows = 1

// Renderer projects the simulation's world coordinates onto a character
// screen. The world's visible band scales to whatever terminal size the
// screen currently has; the simulation itself never sees screen
// coordinates.
type Renderer struct {
	world *sim.World
}

// NewRenderer creates a renderer for the given world.
func NewRenderer(world *sim.World) *Renderer {
	return &Renderer{world: world}
}

// scale holds per-frame projection factors.
type scale struct {
	sx, sy  float64
	cameraX float64
	rows    int // playfield rows below the HUD
}

func (r *Renderer) scaleFor(dst *core.Screen) scale {
	cfg := r.world.Config()
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return scale{
		sx:      float64(dst.Width()) / cfg.World.Width,
		sy:      float64(rows) / cfg.World.Height,
		cameraX: r.world.CameraX(),
		rows:    rows,
	}
}

func (sc scale) toScreenX(worldX float64) int {
	return int((worldX - sc.cameraX) * sc.sx)
}

func (sc scale) toScreenY(worldY float64) int {
	return hudRows + int(worldY*sc.sy)
}

// Draw renders the full frame: playfield, HUD and any phase overlay.
func (r *Renderer) Draw(dst *core.Screen) {
	dst.Clear()

	switch r.world.Phase() {
	case sim.PhaseMenu:
		r.drawMenu(dst)
		return
	case sim.PhasePlaying, sim.PhasePaused, sim.PhaseGameOver:
		r.drawPlayfield(dst)
		r.drawHUD(dst)
	}

	switch r.world.Phase() {
	case sim.PhasePaused:
		r.drawCenteredMessage(dst, "PAUSED", "P to resume  |  B for menu")
	case sim.PhaseGameOver:
		r.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Distance: %s  |  Enter to retry, B for menu",
				r.world.Distance().Formatted()))
	}
}

// drawPlayfield renders the cave walls, pickups, beam and player.
func (r *Renderer) drawPlayfield(dst *core.Screen) {
	sc := r.scaleFor(dst)
	cfg := r.world.Config()

	wallColor := core.ColorGray
	if r.world.FlashTimer() > 0 {
		wallColor = core.ColorRed
	}

	viewEnd := sc.cameraX + cfg.World.Width
	for _, seg := range r.world.Cave().SegmentsInView(sc.cameraX, viewEnd, segSpawnDistance(r.world)) {
		r.drawSegment(dst, sc, seg, wallColor)
	}

	r.drawPickups(dst, sc)
	r.drawBeam(dst, sc)
	r.drawPlayer(dst, sc)
}

// segSpawnDistance resolves the active level's pickup spawn distance for
// lazy generation triggered by rendering.
func segSpawnDistance(w *sim.World) float64 {
	lvl, err := w.Levels().Current()
	if err != nil {
		return w.Config().Pickups.DefaultSpawnDistance
	}
	return lvl.FuelSpawnDistance
}

// drawSegment fills the ceiling and floor columns of one segment.
func (r *Renderer) drawSegment(dst *core.Screen, sc scale, seg sim.Segment, color core.Color) {
	xStart := sc.toScreenX(seg.XStart)
	xEnd := sc.toScreenX(seg.XEnd())
	if xEnd <= xStart {
		xEnd = xStart + 1
	}

	ceilRows := sc.toScreenY(seg.Ceiling) - hudRows
	floorTop := sc.toScreenY(seg.Floor)

	for x := xStart; x < xEnd; x++ {
		if x < 0 || x >= dst.Width() {
			continue
		}
		// Ceiling block with a textured bottom edge
		for y := 0; y < ceilRows; y++ {
			dst.SetColored(x, hudRows+y, WallChar, color)
		}
		if ceilRows > 0 {
			dst.SetColored(x, hudRows+ceilRows-1, WallEdgeTop, color)
		}

		// Floor block with a textured top edge
		for y := floorTop; y < dst.Height(); y++ {
			dst.SetColored(x, y, WallChar, color)
		}
		if floorTop < dst.Height() {
			dst.SetColored(x, floorTop, WallEdgeBot, color)
		}
	}
}

func (r *Renderer) drawPickups(dst *core.Screen, sc scale) {
	cfg := r.world.Config()
	pickups := r.world.Cave().Pickups()
	half := pickups.Size() / 2

	viewEnd := sc.cameraX + cfg.World.Width
	for _, p := range pickups.PickupsInRange(sc.cameraX-pickups.Size(), viewEnd) {
		x := sc.toScreenX(p.Position.X + half)
		y := sc.toScreenY(p.Position.Y + half)
		color := core.ColorYellow
		if p.BeingAttracted {
			color = core.ColorCyan
		}
		dst.SetColored(x, y, PickupChar, color)
	}
}

// drawBeam renders the active tractor beam as a dotted column between the
// player and the beam's maximum range.
func (r *Renderer) drawBeam(dst *core.Screen, sc scale) {
	beam := r.world.Beam()
	if !beam.IsActive() {
		return
	}

	cfg := r.world.Config()
	player := r.world.Player().Pos
	px := sc.toScreenX(player.X)

	reach := cfg.Beam.MaxRange
	var fromY, toY float64
	if beam.Dir() == sim.BeamUp {
		fromY, toY = player.Y-reach, player.Y
	} else {
		fromY, toY = player.Y, player.Y+reach
	}

	y0 := sc.toScreenY(fromY)
	y1 := sc.toScreenY(toY)
	for y := y0; y <= y1; y++ {
		if y < hudRows || y >= dst.Height() {
			continue
		}
		if dst.Get(px, y) == ' ' {
			dst.SetColored(px, y, BeamChar, core.ColorCyan)
		}
	}
}

func (r *Renderer) drawPlayer(dst *core.Screen, sc scale) {
	player := r.world.Player()
	x := sc.toScreenX(player.Pos.X)
	y := sc.toScreenY(player.Pos.Y)

	color := core.ColorOrange
	if r.world.FlashTimer() > 0 {
		color = core.ColorRed
	}
	dst.SetColored(x, y, PlayerChar, color)
}

// drawHUD renders the fuel gauge, distance, level and beam countdown on
// the reserved top row.
func (r *Renderer) drawHUD(dst *core.Screen) {
	fuel := r.world.Fuel()
	filled := int(fuel.Ratio() * GaugeSegments)

	gauge := make([]rune, GaugeSegments)
	for i := range gauge {
		if i < filled {
			gauge[i] = GaugeFull
		} else {
			gauge[i] = GaugeEmpty
		}
	}

	gaugeColor := core.ColorGreen
	switch {
	case fuel.Ratio() < 0.25:
		gaugeColor = core.ColorRed
	case fuel.Ratio() < 0.5:
		gaugeColor = core.ColorYellow
	}

	dst.DrawText(1, 0, "Fuel [")
	dst.DrawTextColored(7, 0, string(gauge), gaugeColor)
	dst.DrawText(7+GaugeSegments, 0, "]")

	info := fmt.Sprintf("Level %d  %s", r.world.Levels().CurrentNumber(),
		r.world.Distance().Formatted())
	dst.DrawText(dst.Width()-len(info)-1, 0, info)

	if beam := r.world.Beam(); beam.IsActive() {
		timer := fmt.Sprintf("Beam %.1fs", beam.RemainingTime())
		dst.DrawTextColored((dst.Width()-len(timer))/2, 0, timer, core.ColorCyan)
	}
}

// drawMenu renders the title screen.
func (r *Renderer) drawMenu(dst *core.Screen) {
	h := dst.Height()

	dst.DrawTextCentered(h/2-3, "F U E L   D R I F T")
	dst.DrawTextCentered(h/2-1, "Navigate the cave. Watch your fuel.")
	dst.DrawTextCentered(h/2+1, "Arrows: thrust   W/S: tractor beam   Esc: pause")
	dst.DrawTextCentered(h/2+3, "Press Enter to start")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (r *Renderer) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawFilledRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
