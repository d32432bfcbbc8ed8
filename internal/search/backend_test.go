package search

import (
	"strings"
	"testing"
)

func TestFormatResults(t *testing.T) {
	results := []Result{
		{Title: "Go", URL: "https://go.dev", Content: "The Go programming language"},
		{Title: "Go wiki", URL: "https://go.dev/wiki", Content: "Community wiki"},
	}

	got := FormatResults("golang", results)

	if !strings.Contains(got, `Search results for "golang":`) {
		t.Errorf("missing header in %q", got)
	}
	if !strings.Contains(got, "1. Go\n   URL: https://go.dev\n   The Go programming language") {
		t.Errorf("missing first result block in %q", got)
	}
	if !strings.Contains(got, "2. Go wiki") {
		t.Errorf("missing second result block in %q", got)
	}
}

func TestFormatResultsEmpty(t *testing.T) {
	got := FormatResults("nothing here", nil)
	want := `No search results found for "nothing here".`
	if got != want {
		t.Errorf("FormatResults() = %q, want %q", got, want)
	}
}
