package pollview

import (
	"errors"

	"nuclight.org/pollview/internal/richtext"
)

// ErrNoFormatter is returned when a classifier was built without a formatter
// and a state needs a vote-total text.
var ErrNoFormatter = errors.New("no vote total formatter configured")

// Template selects the localized vote-total text.
type Template int

const (
	TemplateNoVotesCast Template = iota
	TemplateTotalAfterEnded
	TemplateTotalVoted
	TemplateTotalNotVoted
)

var templateNames = []string{
	"no_votes_cast",
	"total_after_ended",
	"total_before_ended_voted",
	"total_before_ended_not_voted",
}

func (t Template) String() string {
	if t < 0 || int(t) >= len(templateNames) {
		return "unknown"
	}
	return templateNames[t]
}

// Formatter turns a template and a vote count into localized text.
// Implementations must be safe for concurrent use.
type Formatter interface {
	Format(t Template, count int) (string, error)
}

// Annotator decorates the question of an edited poll.
// Implementations must be safe for concurrent use.
type Annotator interface {
	Annotate(text string, style richtext.Style, cb richtext.Callback) (richtext.RichText, error)
}

// missingFormatter stands in for a nil Formatter.
type missingFormatter struct{}

func (missingFormatter) Format(Template, int) (string, error) {
	return "", ErrNoFormatter
}

// plainAnnotator stands in for a nil Annotator and leaves the question undecorated.
type plainAnnotator struct{}

func (plainAnnotator) Annotate(text string, _ richtext.Style, _ richtext.Callback) (richtext.RichText, error) {
	return richtext.Plain(text), nil
}
