package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"nuclight.org/pollview/internal/pollview"
)

var ErrUnknownTemplate = errors.New("unknown vote total template")

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

var templateKeys = map[pollview.Template]string{
	pollview.TemplateNoVotesCast:     "poll.no_votes_cast",
	pollview.TemplateTotalAfterEnded: "poll.total_after_ended",
	pollview.TemplateTotalVoted:      "poll.total_voted",
	pollview.TemplateTotalNotVoted:   "poll.total_not_voted",
}

const editedMarkerKey = "poll.edited_marker"

// Formatter renders vote totals from a message catalog with English and
// Russian translations.
type Formatter struct {
	tag     language.Tag
	catalog catalog.Catalog
}

// NewFormatter returns a formatter for the supported language closest to tag.
func NewFormatter(tag language.Tag) (*Formatter, error) {
	cat, err := newCatalog()
	if err != nil {
		return nil, err
	}
	return &Formatter{tag: Match(tag), catalog: cat}, nil
}

// Match returns the supported language closest to tag.
func Match(tag language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

func (f *Formatter) Language() language.Tag {
	return f.tag
}

// Format implements pollview.Formatter.
func (f *Formatter) Format(t pollview.Template, count int) (string, error) {
	key, ok := templateKeys[t]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownTemplate, int(t))
	}
	// Printers are not safe for concurrent use.
	p := message.NewPrinter(f.tag, message.Catalog(f.catalog))
	if t == pollview.TemplateNoVotesCast {
		return p.Sprintf(key), nil
	}
	return p.Sprintf(key, count), nil
}

// EditedMarker returns the localized marker appended to edited questions.
func (f *Formatter) EditedMarker() string {
	return message.NewPrinter(f.tag, message.Catalog(f.catalog)).Sprintf(editedMarkerKey)
}

func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	entries := []struct {
		tag language.Tag
		key string
		msg catalog.Message
	}{
		{language.English, "poll.no_votes_cast", catalog.String("No votes cast")},
		{language.English, "poll.total_after_ended", plural.Selectf(1, "%d",
			"one", "Final result based on %d vote",
			"other", "Final result based on %d votes")},
		{language.English, "poll.total_voted", plural.Selectf(1, "%d",
			"one", "Based on %d vote",
			"other", "Based on %d votes")},
		{language.English, "poll.total_not_voted", plural.Selectf(1, "%d",
			"one", "%d vote cast. Vote to see the results",
			"other", "%d votes cast. Vote to see the results")},
		{language.English, editedMarkerKey, catalog.String("(edited)")},

		{language.Russian, "poll.no_votes_cast", catalog.String("Голосов нет")},
		{language.Russian, "poll.total_after_ended", plural.Selectf(1, "%d",
			"one", "Итоговый результат: %d голос",
			"few", "Итоговый результат: %d голоса",
			"other", "Итоговый результат: %d голосов")},
		{language.Russian, "poll.total_voted", plural.Selectf(1, "%d",
			"one", "Проголосовал %d участник",
			"few", "Проголосовали %d участника",
			"other", "Проголосовали %d участников")},
		{language.Russian, "poll.total_not_voted", plural.Selectf(1, "%d",
			"one", "Подан %d голос. Проголосуйте, чтобы увидеть результаты",
			"few", "Подано %d голоса. Проголосуйте, чтобы увидеть результаты",
			"other", "Подано %d голосов. Проголосуйте, чтобы увидеть результаты")},
		{language.Russian, editedMarkerKey, catalog.String("(изменено)")},
	}

	for _, e := range entries {
		if err := b.Set(e.tag, e.key, e.msg); err != nil {
			return nil, fmt.Errorf("set %s message %q: %w", e.tag, e.key, err)
		}
	}
	return b, nil
}
