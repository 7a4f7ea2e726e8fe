package model

import (
	"strings"
	"testing"
)

func TestPreviewShortText(t *testing.T) {
	entry := &Entry{TextContent: "A short ride today."}
	if got := entry.Preview(); got != "A short ride today." {
		t.Errorf("Preview() = %q", got)
	}
}

func TestPreviewEmptyText(t *testing.T) {
	entry := &Entry{}
	if got := entry.Preview(); got != "(No text content)" {
		t.Errorf("Preview() = %q, want the placeholder", got)
	}
}

func TestPreviewTruncates(t *testing.T) {
	entry := &Entry{TextContent: strings.Repeat("a", 350)}

	got := entry.Preview()
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Preview() missing ellipsis: %q", got[len(got)-10:])
	}
	if len([]rune(got)) != 303 {
		t.Errorf("Preview() length = %d runes, want 303", len([]rune(got)))
	}
}

func TestPreviewExactBoundary(t *testing.T) {
	text := strings.Repeat("b", 300)
	entry := &Entry{TextContent: text}

	if got := entry.Preview(); got != text {
		t.Errorf("Preview() at exactly 300 chars should not be truncated")
	}
}

func TestPreviewMultibyte(t *testing.T) {
	entry := &Entry{TextContent: strings.Repeat("ö", 301)}

	got := entry.Preview()
	if !strings.HasSuffix(got, "...") {
		t.Error("Preview() of 301 runes should be truncated")
	}
	if n := len([]rune(got)); n != 303 {
		t.Errorf("Preview() length = %d runes, want 303", n)
	}
}
