// Package viz renders the pendulum in the terminal: a braille-canvas live
// view driven by Bubble Tea, with mouse grab support, themed styling, and an
// angle history chart.
package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pendlab/internal/config"
	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/session"
	"github.com/san-kum/pendlab/internal/trace"
)

const (
	canvasW = 80
	canvasH = 24

	// canvas padding applied by canvasStyle; mouse cells are offset by it
	padTop  = 1
	padLeft = 2

	historyCap = 600
	trailCap   = 120
)

type TickMsg time.Time

// Model is the Bubble Tea model for the live view. It owns the session and
// translates terminal input into the session's pointer/key contract.
type Model struct {
	sess   *session.Session
	cfg    *config.Config
	canvas *Canvas
	theme  Theme

	snap    pendulum.Snapshot
	running bool

	trail   []struct{ x, y int }
	history []float64

	recorder *trace.Recorder

	capturing bool
	frames    []*image.Paletted

	showHelp bool
}

func NewModel(cfg *config.Config, sess *session.Session, rec *trace.Recorder) Model {
	return Model{
		sess:     sess,
		cfg:      cfg,
		canvas:   NewCanvas(canvasW, canvasH),
		theme:    GetTheme(cfg.Theme),
		running:  true,
		trail:    make([]struct{ x, y int }, 0, trailCap),
		history:  make([]float64, 0, historyCap),
		recorder: rec,
		snap:     sess.Pendulum().Snapshot(),
	}
}

// Run starts the live terminal view and blocks until quit.
func Run(cfg *config.Config, sess *session.Session, rec *trace.Recorder) error {
	p := tea.NewProgram(NewModel(cfg, sess, rec), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.Window.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "up", "k":
			m.sess.OnKey(session.ActionGravityUp)
		case "down", "j":
			m.sess.OnKey(session.ActionGravityDown)
		case "left", "h":
			m.sess.OnKey(session.ActionMassDown)
		case "right", "l":
			m.sess.OnKey(session.ActionMassUp)
		case "r":
			m.sess.OnKey(session.ActionReset)
		case "R":
			m.sess.OnKey(session.ActionFullReset)
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "s":
			m.saveSVG()
		case "g":
			if m.capturing {
				m.saveGIF()
				m.capturing = false
				m.frames = nil
			} else {
				m.capturing = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}

	case tea.MouseMsg:
		x, y := m.cellToSim(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionMotion:
			m.sess.OnPointerMove(x, y)
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.sess.OnPointerMove(x, y)
				m.sess.OnPointerDown()
			}
		case tea.MouseActionRelease:
			m.sess.OnPointerMove(x, y)
			m.sess.OnPointerUp()
		}

	case TickMsg:
		if m.running {
			m.snap = m.sess.OnFrame()
			if m.recorder != nil {
				m.recorder.Observe(m.snap)
			}
			m.history = append(m.history, m.snap.Readouts.Angle)
			if len(m.history) > historyCap {
				m.history = m.history[1:]
			}
		}
		m.draw()
		if m.capturing {
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

// cellToSim maps a terminal cell to simulation coordinates. Cells are mapped
// through the canvas dot grid onto the configured window space, so the hit
// radius stays 28 simulation units regardless of terminal size.
func (m Model) cellToSim(cellX, cellY int) (float64, float64) {
	pw, ph := m.canvas.PixelSize()
	px := float64((cellX-padLeft)*2 + 1)
	py := float64((cellY-padTop)*4 + 2)
	return px * float64(m.cfg.Window.Width) / float64(pw),
		py * float64(m.cfg.Window.Height) / float64(ph)
}

// simToPixel maps simulation coordinates onto the canvas dot grid.
func (m Model) simToPixel(x, y float64) (int, int) {
	pw, ph := m.canvas.PixelSize()
	return int(x * float64(pw) / float64(m.cfg.Window.Width)),
		int(y * float64(ph) / float64(m.cfg.Window.Height))
}

func (m *Model) draw() {
	m.canvas.Clear()

	ox, oy := m.simToPixel(m.snap.Origin.X, m.snap.Origin.Y)
	bx, by := m.simToPixel(m.snap.Bob.X, m.snap.Bob.Y)

	m.trail = append(m.trail, struct{ x, y int }{bx, by})
	if len(m.trail) > trailCap {
		m.trail = m.trail[1:]
	}
	for _, pt := range m.trail {
		m.canvas.Set(pt.x, pt.y)
	}

	m.canvas.Set(ox, oy)
	m.canvas.Line(ox, oy, bx, by)

	// bob disc, hit radius scaled to the dot grid
	pw, _ := m.canvas.PixelSize()
	r := int(pendulum.BobRadius * float64(pw) / float64(m.cfg.Window.Width))
	if r < 2 {
		r = 2
	}
	m.canvas.FillCircle(bx, by, r)
}

func (m Model) View() string {
	canvasStyle := lipgloss.NewStyle().Padding(padTop, padLeft).Foreground(m.theme.Bob)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(1, 2).
		Width(40)
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1)

	var s strings.Builder
	s.WriteString(headerStyle.Render("PENDULUM") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.snap.Grabbed {
		status = "GRABBED"
	}
	if m.capturing {
		status += " ● REC"
	}
	s.WriteString(labelStyle.Render(status) + "\n\n")

	for _, line := range session.FormatReadouts(m.snap.Readouts) {
		label, value, _ := strings.Cut(line, " ")
		s.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(28),
			asciigraph.Caption("angle"),
		)
		s.WriteString("\n" + chart + "\n")
	}

	s.WriteString(helpStyle.Render("↑↓ gravity  ←→ mass  r reset\nsp pause  t theme  g rec  q quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		panelStyle.Render(s.String()),
	)

	if m.showHelp {
		return helpOverlay + "\n" + main
	}
	return main
}

const helpOverlay = `  drag the bob with the mouse; release to let it swing
  ↑/k ↓/j   gravity +/- 0.1
  →/l ←/h   mass +/- 1.0
  r         reset arm and angle
  R         full reset
  space     pause
  t         cycle theme
  s         dump the canvas as pendulum.svg
  g         toggle GIF capture (writes pendulum.gif)
  ?         toggle this help
  q         quit`

// captureFrame rasterizes the braille canvas into a paletted image for GIF
// capture, one lit block per dot.
func (m *Model) captureFrame() {
	const charW, charH = 2, 4
	imgW, imgH := m.canvas.Width*charW, m.canvas.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})

	for row := 0; row < m.canvas.Height; row++ {
		for col := 0; col < m.canvas.Width; col++ {
			pattern := m.canvas.Grid[row][col] - 0x2800
			if pattern <= 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] != 0 {
						img.SetColorIndex(col*charW+dx, row*charH+dy, 1)
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveSVG() {
	os.WriteFile("pendulum.svg", []byte(m.canvas.SVG(4)), 0644)
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 100/m.cfg.Window.FPS)
	}
	f, err := os.Create("pendulum.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
