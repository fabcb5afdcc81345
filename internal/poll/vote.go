package poll

import (
	"sort"
	"time"
)

// Response is a single vote event. An empty OptionID retracts the voter's
// previous answer.
type Response struct {
	VoterID  string
	OptionID string
	VotedAt  time.Time
}

func (r Response) IsRetracted() bool {
	return r.OptionID == ""
}

type VoteSummary struct {
	Count      int
	Percentage float64
}

// Aggregate is the tally of a poll at one point in time.
type Aggregate struct {
	IsClosed   bool
	TotalVotes int
	// WinnerVoteCount is the highest per-option count. Zero means there is
	// no winner.
	WinnerVoteCount int
	// MyVoteOptionID is the option the current user voted for, or "".
	MyVoteOptionID string
	// Summaries holds only options with at least one vote.
	Summaries map[string]VoteSummary
}

// Summary returns the tally for an option. Options without an entry read
// as zero votes and zero percent.
func (a *Aggregate) Summary(optionID string) VoteSummary {
	if a == nil {
		return VoteSummary{}
	}
	return a.Summaries[optionID]
}

// HasVoted reports whether the current user has a counted vote.
func (a *Aggregate) HasVoted() bool {
	return a != nil && a.MyVoteOptionID != ""
}

// Tally aggregates responses for def. Only the latest response of each
// voter counts; retracted and spoiled answers count for nothing. A non-nil
// end closes the poll and drops responses sent after it. me identifies the
// current user; an empty me never owns a vote. A nil def has no options.
func Tally(def *Definition, responses []Response, me string, end *time.Time) *Aggregate {
	if def == nil {
		def = &Definition{}
	}
	ordered := make([]Response, len(responses))
	copy(ordered, responses)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].VotedAt.Before(ordered[j].VotedAt)
	})

	latest := make(map[string]Response)
	for _, r := range ordered {
		if end != nil && r.VotedAt.After(*end) {
			continue
		}
		latest[r.VoterID] = r
	}

	agg := &Aggregate{
		IsClosed:  end != nil,
		Summaries: make(map[string]VoteSummary),
	}
	for voter, r := range latest {
		if r.IsRetracted() || !def.HasOption(r.OptionID) {
			continue
		}
		s := agg.Summaries[r.OptionID]
		s.Count++
		agg.Summaries[r.OptionID] = s
		agg.TotalVotes++
		if me != "" && voter == me {
			agg.MyVoteOptionID = r.OptionID
		}
	}

	for id, s := range agg.Summaries {
		s.Percentage = float64(s.Count) * 100 / float64(agg.TotalVotes)
		agg.Summaries[id] = s
		if s.Count > agg.WinnerVoteCount {
			agg.WinnerVoteCount = s.Count
		}
	}
	return agg
}
