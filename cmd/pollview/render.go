package main

import (
	"bytes"
	"embed"
	"encoding/json"
	"text/template"

	"nuclight.org/pollview/internal/pollview"
)

//go:embed templates/state.tmpl
var templates embed.FS

var stateTmpl = template.Must(template.ParseFS(templates, "templates/state.tmpl"))

type optionLine struct {
	Marker     string
	Answer     string
	ShowTally  bool
	Count      int
	Percentage float64
}

type stateView struct {
	Question   string
	TotalVotes string
	CanVote    bool
	Options    []optionLine
}

func newStateView(s pollview.State) stateView {
	info := s.StateInfo()
	v := stateView{
		Question:   info.Question.String(),
		TotalVotes: info.TotalVotes,
		CanVote:    info.CanVote,
	}

	switch s := s.(type) {
	case pollview.Sending:
		for _, o := range s.Options {
			v.Options = append(v.Options, optionLine{Marker: "…", Answer: o.Answer})
		}
	case pollview.Ended:
		for _, o := range s.Options {
			v.Options = append(v.Options, optionLine{
				Marker:     checkbox(o.IsWinner, "★"),
				Answer:     o.Answer,
				ShowTally:  true,
				Count:      o.VoteCount,
				Percentage: o.VotePercentage,
			})
		}
	case pollview.Undisclosed:
		for _, o := range s.Options {
			v.Options = append(v.Options, optionLine{Marker: checkbox(o.IsSelected, "x"), Answer: o.Answer})
		}
	case pollview.Voted:
		for _, o := range s.Options {
			v.Options = append(v.Options, optionLine{
				Marker:     checkbox(o.IsSelected, "x"),
				Answer:     o.Answer,
				ShowTally:  true,
				Count:      o.VoteCount,
				Percentage: o.VotePercentage,
			})
		}
	case pollview.Ready:
		for _, o := range s.Options {
			v.Options = append(v.Options, optionLine{Marker: checkbox(false, ""), Answer: o.Answer})
		}
	}
	return v
}

func checkbox(marked bool, mark string) string {
	if marked {
		return "[" + mark + "]"
	}
	return "[ ]"
}

func renderText(s pollview.State) (string, error) {
	var buf bytes.Buffer
	if err := stateTmpl.Execute(&buf, newStateView(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderJSON(s pollview.State) ([]byte, error) {
	return json.MarshalIndent(struct {
		Kind  string         `json:"kind"`
		State pollview.State `json:"state"`
	}{s.Kind().String(), s}, "", "  ")
}
