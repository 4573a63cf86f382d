package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/smartkeys"
	"github.com/iw2rmb/smartkeys/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	keys *smartkeys.Dispatcher
	log  *zap.Logger

	focused bool

	viewport viewport.Model

	lastBufVersion uint64
	lastCursor     int
}

// New builds a Model. It fails when cfg.SmartKeys is invalid.
func New(cfg Config) (Model, error) {
	cfg = normalizeConfig(cfg)
	keys, err := smartkeys.Build(cfg.SmartKeys, smartkeys.WithLogger(cfg.Logger))
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		keys:     keys,
		log:      cfg.Logger,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m, nil
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// SmartKeys returns the resolved pairing and wrapping configuration.
func (m Model) SmartKeys() smartkeys.Config { return m.keys.Config() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncFromBuffer()
		return m, cmd
	default:
		// Hosts may mutate the buffer directly between messages.
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders after the buffer changed and notifies OnChange.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	row := m.buf.PosFromOffset(m.buf.Cursor()).Row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
