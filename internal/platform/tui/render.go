package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
)

// Palette
var (
	skyBlue   = lipgloss.Color("#87CEEB")
	pipeGreen = lipgloss.Color("#009600")
	capGreen  = lipgloss.Color("#006400")
	soilBrown = lipgloss.Color("#654321")
	grass     = lipgloss.Color("#4C9900")
	gold      = lipgloss.Color("#FFD700")
)

// colorStyles maps core.Color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSky:     lipgloss.NewStyle().Background(skyBlue),
	core.ColorCloud:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(skyBlue),
	core.ColorPipe:    lipgloss.NewStyle().Foreground(pipeGreen).Background(skyBlue),
	core.ColorPipeCap: lipgloss.NewStyle().Foreground(capGreen).Background(skyBlue),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5A3C1E")).Background(soilBrown),
	core.ColorGrass:   lipgloss.NewStyle().Foreground(grass).Background(soilBrown),
	core.ColorFlyer:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")).Background(skyBlue),
	core.ColorBeak:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Background(skyBlue).Bold(true),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(skyBlue),
	core.ColorTitle:   lipgloss.NewStyle().Foreground(gold).Background(skyBlue).Bold(true),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Background(skyBlue).Bold(true),
	core.ColorScore:   lipgloss.NewStyle().Foreground(gold).Background(skyBlue).Bold(true),
}

// World-unit decorations.
const (
	capHeight   = 20.0
	capOverhang = 5.0
	cloudW      = 120.0
	cloudH      = 60.0
	scoreInset  = 20.0
)

// Cloud anchors as fractions of the world size.
var cloudAnchors = [][2]float64{
	{0.1, 0.1},
	{0.5, 0.2},
	{0.8, 0.15},
	{0.3, 0.3},
}

// Minimum screen that still fits the overlays.
const (
	minScreenW = 24
	minScreenH = 8
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(s *core.Screen, snap flappy.Snapshot) viewport {
	return viewport{
		sx: float64(s.Width()) / snap.WorldW,
		sy: float64(s.Height()) / snap.WorldH,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// fill paints the world rectangle r, covering at least one cell.
func (v viewport) fill(s *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	s.FillRect(x0, y0, x1-x0, y1-y0, ch, c)
}

// Draw renders a snapshot into the screen buffer.
func Draw(s *core.Screen, snap flappy.Snapshot) {
	if s.Width() < minScreenW || s.Height() < minScreenH || snap.WorldW <= 0 || snap.WorldH <= 0 {
		s.Clear()
		s.DrawTextCentered(s.Height()/2, "Terminal too small", core.ColorAlert)
		return
	}

	v := newViewport(s, snap)

	drawBackground(s, v, snap)
	for _, o := range snap.Obstacles {
		drawObstacle(s, v, snap, o)
	}
	drawGround(s, v, snap)
	if snap.Flyer != nil {
		drawFlyer(s, v, *snap.Flyer)
	}

	switch snap.State {
	case flappy.StateStart:
		drawStartOverlay(s)
	case flappy.StatePlaying:
		s.DrawText(max(v.col(scoreInset), 1), v.row(scoreInset), fmt.Sprintf("Score: %d", snap.Score), core.ColorText)
	case flappy.StateGameOver:
		drawGameOverOverlay(s, snap.Score)
	}
}

func drawBackground(s *core.Screen, v viewport, snap flappy.Snapshot) {
	s.Fill(' ', core.ColorSky)
	for _, a := range cloudAnchors {
		r := core.NewRect(a[0]*snap.WorldW, a[1]*snap.WorldH, cloudW, cloudH)
		v.fill(s, r, '░', core.ColorCloud)
	}
}

func drawObstacle(s *core.Screen, v viewport, snap flappy.Snapshot, o flappy.ObstacleView) {
	top := o.GapCenter - o.GapHeight/2
	bottom := o.GapCenter + o.GapHeight/2

	v.fill(s, core.NewRect(o.X, 0, o.Width, top), '█', core.ColorPipe)
	v.fill(s, core.NewRect(o.X, bottom, o.Width, snap.FloorY-bottom), '█', core.ColorPipe)

	capW := o.Width + 2*capOverhang
	v.fill(s, core.NewRect(o.X-capOverhang, top-capHeight, capW, capHeight), '▀', core.ColorPipeCap)
	v.fill(s, core.NewRect(o.X-capOverhang, bottom, capW, capHeight), '▄', core.ColorPipeCap)
}

func drawGround(s *core.Screen, v viewport, snap flappy.Snapshot) {
	y := v.row(snap.FloorY)
	s.DrawHLine(0, y, s.Width(), '▀', core.ColorGrass)
	for yy := y + 1; yy < s.Height(); yy++ {
		for x := 0; x < s.Width(); x++ {
			ch := '░'
			if (x+yy)%4 == 0 {
				ch = '╱'
			}
			s.Set(x, yy, ch, core.ColorGround)
		}
	}
}

func drawFlyer(s *core.Screen, v viewport, f flappy.FlyerView) {
	body := '█'
	if !f.Alive {
		body = '▓'
	}
	r := core.NewRect(f.X, f.Y, f.W, f.H)
	v.fill(s, r, body, core.ColorFlyer)

	x1, y0, y1 := v.col(r.Right()), v.row(r.Y), v.row(r.Bottom())
	if y1 <= y0 {
		y1 = y0 + 1
	}
	s.Set(x1, (y0+y1-1)/2, '>', core.ColorBeak)
}

func drawStartOverlay(s *core.Screen) {
	h := s.Height()
	s.DrawTextCentered(h/3, "FLAPPY BIRD", core.ColorTitle)
	s.DrawTextCentered(h/2, "Press SPACE to start", core.ColorText)
	s.DrawTextCentered(h/2+1, "Press ESC to quit", core.ColorText)
}

func drawGameOverOverlay(s *core.Screen, score int) {
	w, h := s.Width(), s.Height()
	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorAlert},
		{fmt.Sprintf("Score: %d", score), core.ColorScore},
		{"Press ENTER to restart", core.ColorText},
		{"Press ESC to quit", core.ColorText},
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l.text)))
	}
	boxW += 4
	boxH := len(lines) + 2
	x := core.Clamp((w-boxW)/2, 0, w)
	y := core.Clamp(h/3-1, 0, max(h-boxH, 0))

	s.FillRect(x, y, boxW, boxH, ' ', core.ColorText)
	s.DrawBox(x, y, boxW, boxH, core.ColorText)
	for i, l := range lines {
		s.DrawTextCentered(y+1+i, l.text, l.color)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
