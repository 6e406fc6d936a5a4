// Package note is the pure core of leaguenote: composing a round note
// from a RoundSpec and ranking the Results section of arbitrary markdown.
// Nothing in here touches the filesystem or the terminal; the CLI shell
// injects paths, clocks, and writers.
package note

import "time"

// RoundSpec is an immutable description of one league round.
// Construct it with NewRoundSpec so defaulting happens in one place.
type RoundSpec struct {
	League       string
	Round        int
	Participants []string
}

// ResultRow is a single parsed line of a Results section.
type ResultRow struct {
	Name      string  `json:"name"`
	ReturnPct float64 `json:"return_pct"`
}

// Ranking is a ResultRow with its final position, rank starting at 1.
type Ranking struct {
	Rank      int     `json:"rank"`
	Name      string  `json:"name"`
	ReturnPct float64 `json:"return_pct"`
}

// Standings is an ordered ranking, best return first.
type Standings []Ranking

// RoundMeta is the front matter of a round note.
type RoundMeta struct {
	League  string    `yaml:"league" json:"league"`
	Round   int       `yaml:"round" json:"round"`
	Created time.Time `yaml:"created" json:"created"`
}
