package poll

import (
	"strings"

	"github.com/google/uuid"
)

// MinOptions and MaxOptions bound the number of answers a poll may offer.
const (
	MinOptions = 2
	MaxOptions = 20
)

type Disclosure string

const (
	DisclosureDisclosed   Disclosure = "disclosed"
	DisclosureUndisclosed Disclosure = "undisclosed"
)

type Option struct {
	ID   string
	Text string
}

// Definition is the static content of a poll message. It is authored once
// and never changes afterwards.
type Definition struct {
	Question   string
	Options    []Option
	Disclosure Disclosure
}

// NewDefinition authors a poll with freshly generated option ids.
// Question and answers are trimmed before validation.
func NewDefinition(question string, disclosure Disclosure, answers ...string) (*Definition, error) {
	d := &Definition{
		Question:   strings.TrimSpace(question),
		Disclosure: disclosure,
		Options:    make([]Option, 0, len(answers)),
	}
	for _, a := range answers {
		d.Options = append(d.Options, Option{
			ID:   uuid.NewString(),
			Text: strings.TrimSpace(a),
		})
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the authoring rules of a poll definition.
func (d *Definition) Validate() error {
	if d.Question == "" {
		return ErrEmptyQuestion
	}
	if len(d.Options) < MinOptions {
		return ErrTooFewOptions
	}
	if len(d.Options) > MaxOptions {
		return ErrTooManyOptions
	}
	seen := make(map[string]struct{}, len(d.Options))
	for _, o := range d.Options {
		if o.Text == "" {
			return ErrEmptyAnswer
		}
		if _, ok := seen[o.ID]; ok {
			return ErrDuplicateOptionID
		}
		seen[o.ID] = struct{}{}
	}
	return nil
}

func (d *Definition) IsUndisclosed() bool {
	return d.Disclosure == DisclosureUndisclosed
}

// HasOption reports whether id names one of the poll's answers.
func (d *Definition) HasOption(id string) bool {
	if d == nil {
		return false
	}
	for _, o := range d.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// ParseDisclosure maps a disclosure name to its Disclosure. An empty name
// means disclosed.
func ParseDisclosure(s string) (Disclosure, error) {
	switch Disclosure(s) {
	case "", DisclosureDisclosed:
		return DisclosureDisclosed, nil
	case DisclosureUndisclosed:
		return DisclosureUndisclosed, nil
	}
	return "", ErrUnknownDisclosure
}
