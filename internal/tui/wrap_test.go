package tui

import (
	"strings"
	"testing"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != typedStyle.Render("a") {
		t.Fatalf("expected typed style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected cursor on second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	runes := buildStyledRunes([]rune("a"), 1)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != typedStyle.Render("a") {
		t.Fatalf("expected typed style for completed rune")
	}
}

func TestBuildStyledRunesCursorOnSpace(t *testing.T) {
	runes := buildStyledRunes([]rune("a b"), 1)
	if runes[1].s != pendingStyle.Underline(true).Render(" ") {
		t.Fatalf("expected cursor on pending space")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected space to be marked")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	runes := buildStyledRunes([]rune("one two"), 1)
	if runes[0].s != typedStyle.Render("o") {
		t.Fatalf("expected typed style for typed rune")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
	if runes[6].s != pendingStyle.Render("o") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	runes := buildStyledRunes([]rune("ab cd ef"), 0)
	lines := strings.Split(wrapStyledRunes(runes, 5), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
}

func TestWrapStyledRunesHardBreaksLongWord(t *testing.T) {
	runes := buildStyledRunes([]rune("abcdef"), 0)
	lines := strings.Split(wrapStyledRunes(runes, 4), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
}
