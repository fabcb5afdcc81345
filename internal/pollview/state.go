package pollview

import "nuclight.org/pollview/internal/richtext"

type Kind int

const (
	KindSending Kind = iota
	KindEnded
	KindUndisclosed
	KindVoted
	KindReady
)

var kindNames = []string{
	"sending",
	"ended",
	"undisclosed",
	"voted",
	"ready",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Info holds what every variant renders regardless of its options.
type Info struct {
	Question   richtext.RichText
	TotalVotes string
	CanVote    bool
}

func (i Info) StateInfo() Info {
	return i
}

// State is the display state of a poll message. It is one of Sending,
// Ended, Undisclosed, Voted or Ready.
type State interface {
	Kind() Kind
	StateInfo() Info
	OptionCount() int
	sealed()
}

// Sending is shown while the poll message itself is still being sent.
type Sending struct {
	Info
	Options []SendingOption
}

type SendingOption struct {
	ID     string
	Answer string
}

// Ended shows final results of a closed poll.
type Ended struct {
	Info
	Options []EndedOption
}

type EndedOption struct {
	ID             string
	Answer         string
	VoteCount      int
	VotePercentage float64
	IsWinner       bool
}

// Undisclosed hides tallies of an open poll and only marks the user's choice.
type Undisclosed struct {
	Info
	Options []UndisclosedOption
}

type UndisclosedOption struct {
	ID         string
	Answer     string
	IsSelected bool
}

// Voted shows live results once the user has voted.
type Voted struct {
	Info
	Options []VotedOption
}

type VotedOption struct {
	ID             string
	Answer         string
	VoteCount      int
	VotePercentage float64
	IsSelected     bool
}

// Ready is an open poll the user has not voted in yet.
type Ready struct {
	Info
	Options []ReadyOption
}

type ReadyOption struct {
	ID     string
	Answer string
}

func (Sending) Kind() Kind     { return KindSending }
func (Ended) Kind() Kind       { return KindEnded }
func (Undisclosed) Kind() Kind { return KindUndisclosed }
func (Voted) Kind() Kind       { return KindVoted }
func (Ready) Kind() Kind       { return KindReady }

func (s Sending) OptionCount() int     { return len(s.Options) }
func (s Ended) OptionCount() int       { return len(s.Options) }
func (s Undisclosed) OptionCount() int { return len(s.Options) }
func (s Voted) OptionCount() int       { return len(s.Options) }
func (s Ready) OptionCount() int       { return len(s.Options) }

func (Sending) sealed()     {}
func (Ended) sealed()       {}
func (Undisclosed) sealed() {}
func (Voted) sealed()       {}
func (Ready) sealed()       {}
