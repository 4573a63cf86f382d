package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestFirstAndLastRunes(t *testing.T) {
	if got, want := FirstRunes("e\u0301x"), 2; got != want {
		t.Fatalf("first=%d, want %d", got, want)
	}
	if got, want := LastRunes("x"+family), 7; got != want {
		t.Fatalf("last=%d, want %d", got, want)
	}
	if FirstRunes("") != 0 || LastRunes("") != 0 {
		t.Fatalf("empty text must report 0")
	}
}
