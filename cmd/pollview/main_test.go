package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"nuclight.org/pollview/internal/i18n"
	"nuclight.org/pollview/internal/poll"
	"nuclight.org/pollview/internal/pollview"
	"nuclight.org/pollview/internal/richtext"
)

func newTestClassifier(t *testing.T) *pollview.Classifier {
	t.Helper()
	f, err := i18n.NewFormatter(language.English)
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}
	style := richtext.Style{Color: "#8D97A5", TextSize: 12}
	return pollview.NewClassifier(f, richtext.NewEditedAnnotator(f.EditedMarker()), pollview.Settings{MarkerStyle: style}, nil)
}

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poll.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

func TestLoadSnapshot_Ended(t *testing.T) {
	snap, err := loadSnapshot("testdata/ended.toml")
	if err != nil {
		t.Fatalf("loadSnapshot failed: %v", err)
	}
	in, err := snap.input()
	if err != nil {
		t.Fatalf("input failed: %v", err)
	}

	if in.Status != poll.StatusSynced {
		t.Errorf("Status = %q, want %q", in.Status, poll.StatusSynced)
	}
	// erin voted after the poll ended, carol changed her mind.
	if in.Aggregate.TotalVotes != 4 {
		t.Errorf("TotalVotes = %d, want 4", in.Aggregate.TotalVotes)
	}
	if got := in.Aggregate.Summary("bar").Count; got != 2 {
		t.Errorf("bar count = %d, want 2", got)
	}
	if got := in.Aggregate.Summary("office").Count; got != 0 {
		t.Errorf("office count = %d, want 0", got)
	}

	state, err := newTestClassifier(t).Classify(in.Definition, in.Status, in.Aggregate, in.Edited)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	text, err := renderText(state)
	if err != nil {
		t.Fatalf("renderText failed: %v", err)
	}
	for _, want := range []string{
		"Where do we meet on Friday? (edited)",
		"[★] JOIN BAR  2 (50.0%)",
		"[★] Park  2 (50.0%)",
		"[ ] Office  0 (0.0%)",
		"Final result based on 4 votes",
		"voting closed",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestSnapshot_GeneratesOptionIDs(t *testing.T) {
	path := writeSnapshot(t, `
question = "Lunch?"

[[options]]
text = "Pizza"

[[options]]
text = "Sushi"
`)
	snap, err := loadSnapshot(path)
	if err != nil {
		t.Fatalf("loadSnapshot failed: %v", err)
	}
	in, err := snap.input()
	if err != nil {
		t.Fatalf("input failed: %v", err)
	}
	if in.Status != poll.StatusSent {
		t.Errorf("Status = %q, want default %q", in.Status, poll.StatusSent)
	}
	for _, o := range in.Definition.Options {
		if o.ID == "" {
			t.Errorf("option %q has no id", o.Text)
		}
	}

	state, err := newTestClassifier(t).Classify(in.Definition, in.Status, in.Aggregate, in.Edited)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if state.Kind() != pollview.KindReady {
		t.Errorf("Kind() = %s, want %s", state.Kind(), pollview.KindReady)
	}
	if state.StateInfo().TotalVotes != "No votes cast" {
		t.Errorf("TotalVotes = %q, want %q", state.StateInfo().TotalVotes, "No votes cast")
	}
}

func TestSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown status", "question = \"Q\"\nstatus = \"lost\"\n[[options]]\nid = \"a\"\ntext = \"A\"\n[[options]]\nid = \"b\"\ntext = \"B\"\n", poll.ErrUnknownStatus},
		{"unknown disclosure", "question = \"Q\"\ndisclosure = \"secret\"\n", poll.ErrUnknownDisclosure},
		{"duplicate ids", "question = \"Q\"\n[[options]]\nid = \"a\"\ntext = \"A\"\n[[options]]\nid = \"a\"\ntext = \"B\"\n", poll.ErrDuplicateOptionID},
		{"single option", "question = \"Q\"\n[[options]]\ntext = \"A\"\n", poll.ErrTooFewOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := loadSnapshot(writeSnapshot(t, tt.content))
			if err != nil {
				t.Fatalf("loadSnapshot failed: %v", err)
			}
			if _, err := snap.input(); !errors.Is(err, tt.want) {
				t.Errorf("input() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadSnapshot_UnknownKey(t *testing.T) {
	if _, err := loadSnapshot(writeSnapshot(t, "question = \"Q\"\nanswers = 3\n")); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestRenderJSON(t *testing.T) {
	snap, err := loadSnapshot("testdata/ended.toml")
	if err != nil {
		t.Fatalf("loadSnapshot failed: %v", err)
	}
	in, err := snap.input()
	if err != nil {
		t.Fatalf("input failed: %v", err)
	}
	state, err := newTestClassifier(t).Classify(in.Definition, in.Status, in.Aggregate, false)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	out, err := renderJSON(state)
	if err != nil {
		t.Fatalf("renderJSON failed: %v", err)
	}
	var decoded struct {
		Kind  string `json:"kind"`
		State struct {
			Options []struct {
				ID       string
				IsWinner bool
			}
		} `json:"state"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.Kind != "ended" {
		t.Errorf("kind = %q, want %q", decoded.Kind, "ended")
	}
	if len(decoded.State.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(decoded.State.Options))
	}
	if !decoded.State.Options[0].IsWinner || decoded.State.Options[2].IsWinner {
		t.Errorf("unexpected winners: %+v", decoded.State.Options)
	}
}
