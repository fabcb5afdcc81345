package pollview

import (
	"log/slog"

	"nuclight.org/pollview/internal/poll"
	"nuclight.org/pollview/internal/richtext"
)

// DefaultWorkers bounds ClassifyAll when Settings.Workers is not set.
const DefaultWorkers = 4

// Settings holds presentation metadata passed to the annotator.
type Settings struct {
	MarkerStyle richtext.Style
	Callback    richtext.Callback
	Workers     int
}

// Classifier derives poll display states. It keeps no state between calls.
type Classifier struct {
	formatter Formatter
	annotator Annotator
	settings  Settings
	logger    *slog.Logger
}

// NewClassifier creates a classifier. A nil logger discards output. A nil
// annotator leaves edited questions plain and a nil formatter makes every
// state with a vote total fail with ErrNoFormatter.
func NewClassifier(formatter Formatter, annotator Annotator, settings Settings, logger *slog.Logger) *Classifier {
	if formatter == nil {
		formatter = missingFormatter{}
	}
	if annotator == nil {
		annotator = plainAnnotator{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if settings.Workers <= 0 {
		settings.Workers = DefaultWorkers
	}
	return &Classifier{
		formatter: formatter,
		annotator: annotator,
		settings:  settings,
		logger:    logger,
	}
}

// Classify picks the display state of a poll. Checks run in order and the
// first match wins:
//
//  1. the message is not sent yet: Sending
//  2. the poll is closed: Ended
//  3. the poll hides tallies: Undisclosed
//  4. the user has voted: Voted
//  5. otherwise: Ready
//
// Inputs are not validated. Formatter and annotator errors are returned
// unchanged.
func (c *Classifier) Classify(def *poll.Definition, status poll.DeliveryStatus, agg *poll.Aggregate, edited bool) (State, error) {
	if def == nil {
		def = &poll.Definition{}
	}
	if agg == nil {
		agg = &poll.Aggregate{}
	}

	question, err := c.question(def.Question, edited)
	if err != nil {
		return nil, err
	}

	var state State
	switch {
	case !status.IsSent():
		state, err = c.sending(question, def)
	case agg.IsClosed:
		state, err = c.ended(question, def, agg)
	case def.IsUndisclosed():
		state = c.undisclosed(question, def, agg)
	case agg.HasVoted():
		state, err = c.voted(question, def, agg)
	default:
		state, err = c.ready(question, def, agg)
	}
	if err != nil {
		return nil, err
	}

	c.logger.Debug("poll state classified",
		"kind", state.Kind().String(),
		"options", state.OptionCount(),
		"total_votes", agg.TotalVotes,
		"edited", edited,
	)
	return state, nil
}

func (c *Classifier) question(text string, edited bool) (richtext.RichText, error) {
	if !edited {
		return richtext.Plain(text), nil
	}
	return c.annotator.Annotate(text, c.settings.MarkerStyle, c.settings.Callback)
}

func (c *Classifier) totalVotes(t Template, count int) (string, error) {
	return c.formatter.Format(t, count)
}

func (c *Classifier) sending(question richtext.RichText, def *poll.Definition) (State, error) {
	total, err := c.totalVotes(TemplateNoVotesCast, 0)
	if err != nil {
		return nil, err
	}
	options := make([]SendingOption, 0, len(def.Options))
	for _, o := range def.Options {
		options = append(options, SendingOption{ID: o.ID, Answer: o.Text})
	}
	return Sending{
		Info:    Info{Question: question, TotalVotes: total, CanVote: false},
		Options: options,
	}, nil
}

func (c *Classifier) ended(question richtext.RichText, def *poll.Definition, agg *poll.Aggregate) (State, error) {
	total, err := c.totalVotes(TemplateTotalAfterEnded, agg.TotalVotes)
	if err != nil {
		return nil, err
	}
	options := make([]EndedOption, 0, len(def.Options))
	for _, o := range def.Options {
		s := agg.Summary(o.ID)
		options = append(options, EndedOption{
			ID:             o.ID,
			Answer:         o.Text,
			VoteCount:      s.Count,
			VotePercentage: s.Percentage,
			// An all-zero poll has no winner.
			IsWinner: agg.WinnerVoteCount != 0 && s.Count == agg.WinnerVoteCount,
		})
	}
	return Ended{
		Info:    Info{Question: question, TotalVotes: total, CanVote: false},
		Options: options,
	}, nil
}

func (c *Classifier) undisclosed(question richtext.RichText, def *poll.Definition, agg *poll.Aggregate) State {
	options := make([]UndisclosedOption, 0, len(def.Options))
	for _, o := range def.Options {
		options = append(options, UndisclosedOption{
			ID:         o.ID,
			Answer:     o.Text,
			IsSelected: agg.HasVoted() && o.ID == agg.MyVoteOptionID,
		})
	}
	return Undisclosed{
		Info:    Info{Question: question, TotalVotes: "", CanVote: true},
		Options: options,
	}
}

func (c *Classifier) voted(question richtext.RichText, def *poll.Definition, agg *poll.Aggregate) (State, error) {
	total, err := c.totalVotes(TemplateTotalVoted, agg.TotalVotes)
	if err != nil {
		return nil, err
	}
	options := make([]VotedOption, 0, len(def.Options))
	for _, o := range def.Options {
		s := agg.Summary(o.ID)
		options = append(options, VotedOption{
			ID:             o.ID,
			Answer:         o.Text,
			VoteCount:      s.Count,
			VotePercentage: s.Percentage,
			IsSelected:     o.ID == agg.MyVoteOptionID,
		})
	}
	return Voted{
		Info:    Info{Question: question, TotalVotes: total, CanVote: true},
		Options: options,
	}, nil
}

func (c *Classifier) ready(question richtext.RichText, def *poll.Definition, agg *poll.Aggregate) (State, error) {
	var (
		total string
		err   error
	)
	if agg.TotalVotes == 0 {
		total, err = c.totalVotes(TemplateNoVotesCast, 0)
	} else {
		total, err = c.totalVotes(TemplateTotalNotVoted, agg.TotalVotes)
	}
	if err != nil {
		return nil, err
	}
	options := make([]ReadyOption, 0, len(def.Options))
	for _, o := range def.Options {
		options = append(options, ReadyOption{ID: o.ID, Answer: o.Text})
	}
	return Ready{
		Info:    Info{Question: question, TotalVotes: total, CanVote: true},
		Options: options,
	}, nil
}
