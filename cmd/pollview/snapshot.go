package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"nuclight.org/pollview/internal/poll"
	"nuclight.org/pollview/internal/pollview"
)

// snapshot is a poll message as seen by one user at one point in time.
type snapshot struct {
	Question   string     `toml:"question"`
	Disclosure string     `toml:"disclosure"`
	Status     string     `toml:"status"`
	Edited     bool       `toml:"edited"`
	Me         string     `toml:"me"`
	EndedAt    *time.Time `toml:"ended_at"`
	Options    []struct {
		ID   string `toml:"id"`
		Text string `toml:"text"`
	} `toml:"options"`
	Responses []struct {
		Voter  string    `toml:"voter"`
		Option string    `toml:"option"`
		At     time.Time `toml:"at"`
	} `toml:"responses"`
}

func loadSnapshot(path string) (*snapshot, error) {
	var s snapshot
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode %s: unknown key %q", path, undecoded[0].String())
	}
	return &s, nil
}

// definition builds the poll definition. Options without ids get
// generated ones.
func (s *snapshot) definition() (*poll.Definition, error) {
	disclosure, err := poll.ParseDisclosure(s.Disclosure)
	if err != nil {
		return nil, err
	}

	generate := false
	texts := make([]string, 0, len(s.Options))
	options := make([]poll.Option, 0, len(s.Options))
	for _, o := range s.Options {
		if o.ID == "" {
			generate = true
		}
		texts = append(texts, o.Text)
		options = append(options, poll.Option{ID: o.ID, Text: o.Text})
	}
	if generate {
		return poll.NewDefinition(s.Question, disclosure, texts...)
	}

	def := &poll.Definition{Question: s.Question, Options: options, Disclosure: disclosure}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// input tallies the responses and assembles the classifier input.
func (s *snapshot) input() (pollview.Input, error) {
	def, err := s.definition()
	if err != nil {
		return pollview.Input{}, err
	}
	status := poll.StatusSent
	if s.Status != "" {
		if status, err = poll.ParseDeliveryStatus(s.Status); err != nil {
			return pollview.Input{}, err
		}
	}

	responses := make([]poll.Response, 0, len(s.Responses))
	for _, r := range s.Responses {
		responses = append(responses, poll.Response{VoterID: r.Voter, OptionID: r.Option, VotedAt: r.At})
	}

	return pollview.Input{
		Definition: def,
		Status:     status,
		Aggregate:  poll.Tally(def, responses, s.Me, s.EndedAt),
		Edited:     s.Edited,
	}, nil
}
