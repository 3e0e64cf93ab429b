package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/pendlab/internal/config"
	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/session"
	"github.com/san-kum/pendlab/internal/trace"
)

// ReplayModel plays a recorded run back in the terminal at its original frame
// rate. It drives no simulation; every frame comes straight from the trace.
type ReplayModel struct {
	cfg    *config.Config
	meta   trace.RunMetadata
	frames []trace.FrameRecord
	canvas *Canvas
	theme  Theme

	idx     int
	playing bool

	trail []struct{ x, y int }
}

func NewReplayModel(cfg *config.Config, meta trace.RunMetadata, frames []trace.FrameRecord) ReplayModel {
	return ReplayModel{
		cfg:     cfg,
		meta:    meta,
		frames:  frames,
		canvas:  NewCanvas(canvasW, canvasH),
		theme:   GetTheme(cfg.Theme),
		playing: true,
		trail:   make([]struct{ x, y int }, 0, trailCap),
	}
}

// Replay plays the run back and blocks until quit.
func Replay(cfg *config.Config, meta trace.RunMetadata, frames []trace.FrameRecord) error {
	p := tea.NewProgram(NewReplayModel(cfg, meta, frames), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m ReplayModel) Init() tea.Cmd {
	return m.tick()
}

func (m ReplayModel) tick() tea.Cmd {
	fps := m.meta.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "left", "h":
			m.playing = false
			m.idx = m.seek(m.idx - 1)
			m.draw()
		case "right", "l":
			m.playing = false
			m.idx = m.seek(m.idx + 1)
			m.draw()
		case "0":
			m.idx = 0
			m.trail = m.trail[:0]
			m.draw()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		}

	case TickMsg:
		if m.playing {
			if m.idx < len(m.frames)-1 {
				m.idx++
			} else {
				m.playing = false // hold the last frame
			}
			m.draw()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m ReplayModel) seek(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx >= len(m.frames) {
		return len(m.frames) - 1
	}
	return idx
}

func (m ReplayModel) simToPixel(x, y float64) (int, int) {
	pw, ph := m.canvas.PixelSize()
	return int(x * float64(pw) / float64(m.cfg.Window.Width)),
		int(y * float64(ph) / float64(m.cfg.Window.Height))
}

func (m *ReplayModel) draw() {
	m.canvas.Clear()

	f := m.frames[m.idx]
	ox, oy := m.simToPixel(m.cfg.Pendulum.OriginX, m.cfg.Pendulum.OriginY)
	bx, by := m.simToPixel(f.BobX, f.BobY)

	m.trail = append(m.trail, struct{ x, y int }{bx, by})
	if len(m.trail) > trailCap {
		m.trail = m.trail[1:]
	}
	for _, pt := range m.trail {
		m.canvas.Set(pt.x, pt.y)
	}

	m.canvas.Set(ox, oy)
	m.canvas.Line(ox, oy, bx, by)

	pw, _ := m.canvas.PixelSize()
	r := int(pendulum.BobRadius * float64(pw) / float64(m.cfg.Window.Width))
	if r < 2 {
		r = 2
	}
	m.canvas.FillCircle(bx, by, r)
}

func (m ReplayModel) View() string {
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

	f := m.frames[m.idx]

	var s strings.Builder
	s.WriteString(headerStyle.Render("REPLAY "+m.meta.ID) + "\n")

	status := "PLAYING"
	if !m.playing {
		status = "PAUSED"
	}
	s.WriteString(labelStyle.Render(fmt.Sprintf("%s  frame %d/%d  t=%.2fs",
		status, m.idx+1, len(m.frames), f.Time)) + "\n\n")

	readouts := pendulum.Readouts{
		Gravity:      f.G,
		Angle:        f.Angle,
		Acceleration: f.Acceleration,
		Velocity:     f.Velocity,
		Mass:         f.M,
	}
	for _, line := range session.FormatReadouts(readouts) {
		label, value, _ := strings.Cut(line, " ")
		s.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value) + "\n")
	}

	s.WriteString(helpStyle.Render("←→ step  0 restart  sp pause\nt theme  q quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		panelStyle.Render(s.String()),
	)
}
