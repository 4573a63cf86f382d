package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iw2rmb/smartkeys"
	"github.com/iw2rmb/smartkeys/buffer"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func typeRunes(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, t tea.KeyType, n int) Model {
	for i := 0; i < n; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: t})
	}
	return m
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := newModel(t, Config{Text: "ab", Style: Style{}})

	m = press(m, tea.KeyRight, 1)
	m = typeRunes(m, "X")
	if got := m.buf.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != 2 {
		t.Fatalf("cursor after insert: got %d, want %d", got, 2)
	}

	m = press(m, tea.KeyBackspace, 1)
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.buf.Cursor(); got != 1 {
		t.Fatalf("cursor after backspace: got %d, want %d", got, 1)
	}
}

func TestUpdate_SmartPairOnCursor(t *testing.T) {
	for _, fallback := range []bool{false, true} {
		m := newModel(t, Config{Text: "ab", SmartKeys: smartkeys.Options{FallbackMode: fallback}})

		m = press(m, tea.KeyRight, 1)
		m = typeRunes(m, "(")

		if got := m.buf.Text(); got != "a()b" {
			t.Fatalf("fallback=%v: text: got %q, want %q", fallback, got, "a()b")
		}
		if got := m.buf.Cursor(); got != 2 {
			t.Fatalf("fallback=%v: cursor: got %d, want %d", fallback, got, 2)
		}
		if _, ok := m.buf.Selection(); ok {
			t.Fatalf("fallback=%v: selection must stay collapsed", fallback)
		}
	}
}

func TestUpdate_SmartWrapSelection(t *testing.T) {
	m := newModel(t, Config{Text: "hello world"})

	m = press(m, tea.KeyShiftRight, 5)
	m = typeRunes(m, `"`)

	if got := m.buf.Text(); got != `"hello" world` {
		t.Fatalf("text: got %q, want %q", got, `"hello" world`)
	}
	r, ok := m.buf.Selection()
	if !ok || r != (buffer.Range{Start: 1, End: 6}) {
		t.Fatalf("selection: got %v/%v, want [1,6)", r, ok)
	}

	// Wrapping again nests around the same text.
	m = typeRunes(m, "(")
	if got := m.buf.Text(); got != `"(hello)" world` {
		t.Fatalf("text after second wrap: got %q", got)
	}
}

func TestUpdate_UnhandledCharactersInsertLiterally(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		msg  tea.KeyMsg
		want string
	}{
		{
			name: "unconfigured key",
			cfg:  Config{Text: "ab"},
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")},
			want: "xab",
		},
		{
			name: "pairing disabled",
			cfg:  Config{Text: "ab", SmartKeys: smartkeys.Options{Pair: []string{}}},
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("(")},
			want: "(ab",
		},
		{
			name: "wrap-only key on cursor",
			cfg:  Config{Text: "ab"},
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("~")},
			want: "~ab",
		},
		{
			name: "paste",
			cfg:  Config{Text: "ab"},
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("("), Paste: true},
			want: "(ab",
		},
		{
			name: "burst of characters",
			cfg:  Config{Text: "ab"},
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("((")},
			want: "((ab",
		},
	}
	for _, tc := range cases {
		m := newModel(t, tc.cfg)
		m, _ = m.Update(tc.msg)
		if got := m.buf.Text(); got != tc.want {
			t.Fatalf("%s: text: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := newModel(t, Config{Text: "ab", ReadOnly: true})

	m = press(m, tea.KeyRight, 1)
	if got := m.buf.Cursor(); got != 1 {
		t.Fatalf("cursor after move: got %d, want %d", got, 1)
	}

	m = typeRunes(m, "(")
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after smart key in read-only: got %q, want %q", got, "ab")
	}

	m = press(m, tea.KeyBackspace, 1)
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace in read-only: got %q, want %q", got, "ab")
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := newModel(t, Config{Text: "ab"})
	m = m.Blur()
	m = typeRunes(m, "(")
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text while blurred: got %q, want %q", got, "ab")
	}
}

func TestUpdate_CopyCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := newModel(t, Config{Text: "hello", Clipboard: cb})

	m = press(m, tea.KeyShiftRight, 2)
	m = press(m, tea.KeyCtrlC, 1)
	if cb.s != "he" {
		t.Fatalf("clipboard after copy: got %q, want %q", cb.s, "he")
	}

	m = press(m, tea.KeyCtrlX, 1)
	if got := m.buf.Text(); got != "llo" {
		t.Fatalf("text after cut: got %q, want %q", got, "llo")
	}

	cb.s = "A\r\nB"
	m = press(m, tea.KeyEnd, 1)
	m = press(m, tea.KeyCtrlV, 1)
	if got := m.buf.Text(); got != "lloA\nB" {
		t.Fatalf("text after paste: got %q, want %q", got, "lloA\nB")
	}
}

func TestUpdate_SmartKeysLogThroughConfiguredLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newModel(t, Config{Text: "", Logger: zap.New(core)})

	m = typeRunes(m, "[")
	if got := m.buf.Text(); got != "[]" {
		t.Fatalf("text: got %q, want %q", got, "[]")
	}

	entries := logs.FilterMessage("smartkeys matched").All()
	if len(entries) != 1 {
		t.Fatalf("matched entries: got %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["pipeline"]; got != "linear-pair" {
		t.Fatalf("pipeline: got %v, want linear-pair", got)
	}
}

func TestUpdate_SpaceInserts(t *testing.T) {
	m := newModel(t, Config{Text: "ab"})
	m = press(m, tea.KeyRight, 1)
	m = press(m, tea.KeySpace, 1)
	if got := m.buf.Text(); got != "a b" {
		t.Fatalf("text after space: got %q, want %q", got, "a b")
	}
}
