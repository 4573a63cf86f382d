package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/smartkeys"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	got, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), got); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_SampleParses(t *testing.T) {
	got, err := loadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !got.Editor.LineNumbers || got.Editor.TabWidth != 4 {
		t.Fatalf("editor section: got %+v", got.Editor)
	}
	if got.SmartKeys.Wrap != nil || got.SmartKeys.Pair != nil {
		t.Fatalf("commented lists must stay nil: %+v", got.SmartKeys)
	}
}

func TestLoadConfig_SmartKeysSection(t *testing.T) {
	path := writeConfig(t, `
[smartkeys]
fallback_mode = true
pair = []

[smartkeys.wrappable]
"*" = { open = "*", close = "*" }
"<" = { open = "<b>", close = "</b>" }
`)
	got, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	want := smartkeys.Options{
		FallbackMode: true,
		Pair:         []string{},
		Wrappable: smartkeys.CharSet{
			"*": {Open: "*", Close: "*"},
			"<": {Open: "<b>", Close: "</b>"},
		},
	}
	if diff := cmp.Diff(want, got.SmartKeys); diff != "" {
		t.Fatalf("smartkeys options (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "[editor]\nline_numbrs = true\n"))
	if err == nil || !strings.Contains(err.Error(), "editor.line_numbrs") {
		t.Fatalf("err=%v, want unknown key error", err)
	}
}

func TestLoadConfig_RejectsInvalidCharSet(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "[smartkeys.pairable]\n\"ab\" = { open = \"a\", close = \"b\" }\n"))
	if !errors.Is(err, smartkeys.ErrInvalidCharSet) {
		t.Fatalf("err=%v, want ErrInvalidCharSet", err)
	}
}
