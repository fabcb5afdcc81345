package richtext

import (
	"errors"
	"regexp"
)

var ErrInvalidStyle = errors.New("invalid marker style")

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Style describes how a decorated span is presented.
type Style struct {
	Color    string // #RRGGBB
	TextSize int    // in scaled pixels
}

func (s Style) Validate() error {
	if !colorPattern.MatchString(s.Color) {
		return ErrInvalidStyle
	}
	if s.TextSize <= 0 {
		return ErrInvalidStyle
	}
	return nil
}

// Callback receives clicks on a decorated span.
type Callback interface {
	OnEditedMarkerClicked()
}

// Span decorates Text[Start:End]. Offsets are in bytes.
type Span struct {
	Start    int
	End      int
	Style    Style
	Callback Callback
}

type RichText struct {
	Text  string
	Spans []Span
}

// Plain wraps text without any decoration.
func Plain(text string) RichText {
	return RichText{Text: text}
}

func (r RichText) String() string {
	return r.Text
}

func (r RichText) IsDecorated() bool {
	return len(r.Spans) > 0
}
