package richtext

import "fmt"

// DefaultMarker is appended to edited text when no localized marker is set.
const DefaultMarker = "(edited)"

// EditedAnnotator appends a styled marker to text that has been edited.
type EditedAnnotator struct {
	marker string
}

func NewEditedAnnotator(marker string) *EditedAnnotator {
	if marker == "" {
		marker = DefaultMarker
	}
	return &EditedAnnotator{marker: marker}
}

// Annotate returns text followed by a space and the marker. The marker span
// carries style and cb; cb may be nil.
func (a *EditedAnnotator) Annotate(text string, style Style, cb Callback) (RichText, error) {
	if err := style.Validate(); err != nil {
		return RichText{}, fmt.Errorf("annotate %q: %w", a.marker, err)
	}

	start := len(text) + 1
	return RichText{
		Text: text + " " + a.marker,
		Spans: []Span{{
			Start:    start,
			End:      start + len(a.marker),
			Style:    style,
			Callback: cb,
		}},
	}, nil
}
