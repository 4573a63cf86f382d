package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iw2rmb/smartkeys"
	"github.com/iw2rmb/smartkeys/editor"
)

type eventState struct {
	count int
	last  editor.ChangeEvent
}

func (s *eventState) handleChange(ev editor.ChangeEvent) {
	s.count++
	s.last = ev
}

type model struct {
	editor editor.Model
	events *eventState
	status lipgloss.Style
}

func newModel(cfg demoConfig, log *zap.Logger) (model, error) {
	state := &eventState{}
	ed, err := editor.New(editor.Config{
		Text: strings.Join([]string{
			"smartkeys demo",
			"",
			"Type ( [ { or \" to insert a pair around the cursor.",
			"Select with shift+arrows, then type a wrap key to surround the selection.",
			"Ctrl+Q quits.",
		}, "\n"),
		ShowLineNums: cfg.Editor.LineNumbers,
		TabWidth:     cfg.Editor.TabWidth,
		Style:        editor.DefaultStyle(),
		SmartKeys:    cfg.SmartKeys,
		Logger:       log,
		OnChange:     state.handleChange,
	})
	if err != nil {
		return model{}, err
	}
	return model{
		editor: ed,
		events: state,
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	last := m.events.last
	selection := "none"
	if last.Selection.Active {
		selection = fmt.Sprintf("[%d, %d)", last.Selection.Range.Start, last.Selection.Range.End)
	}
	keys := m.editor.SmartKeys()
	status := strings.Join([]string{
		fmt.Sprintf("events: %d  version: %d  cursor: %d:%d  selection: %s",
			m.events.count, last.Version, last.Cursor.Row+1, last.Cursor.Col+1, selection),
		fmt.Sprintf("pair: %s  wrap: %s  fallback: %v",
			strings.Join(keys.PairableKeys(), " "), strings.Join(keys.WrappableKeys(), " "), keys.FallbackMode()),
	}, "\n")
	return m.editor.View() + "\n" + m.status.Render(status)
}

func editorHeight(total int) int {
	h := total - 3
	if h < 0 {
		return 0
	}
	return h
}

// newLogger writes JSON logs to path. An empty path discards them.
func newLogger(path, level string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}

func main() {
	var (
		configPath  = flag.String("config", "", "TOML configuration file")
		logPath     = flag.String("log", "", "Write logs to this file (overrides the config)")
		printConfig = flag.Bool("print-config", false, "Print a sample configuration and exit")
		version     = flag.Bool("version", false, "Print the version and exit")
	)
	flag.Parse()

	switch {
	case *version:
		fmt.Println(smartkeys.VersionTag())
		return
	case *printConfig:
		fmt.Print(sampleConfig)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fail(err)
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}

	log, err := newLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fail(err)
	}
	defer func() { _ = log.Sync() }()

	m, err := newModel(cfg, log)
	if err != nil {
		fail(err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}
