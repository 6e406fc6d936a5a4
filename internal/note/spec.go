package note

import (
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const DefaultLeague = "Trading Agent League"

// DefaultRoster is substituted when no participants are given.
func DefaultRoster() []string {
	return []string{"Alpha", "Beta", "Gamma"}
}

// NewRoundSpec builds a RoundSpec from raw user input, applying the
// defaulting rules in one place:
//   - blank league falls back to DefaultLeague
//   - round is parsed as a decimal and floored; anything unparseable,
//     non-finite, or below 1 becomes 1
//   - participants are comma-split and trimmed; an empty roster falls
//     back to DefaultRoster
func NewRoundSpec(leagueRaw, roundRaw, participantsRaw string) RoundSpec {
	league := strings.TrimSpace(leagueRaw)
	if league == "" {
		league = DefaultLeague
	}
	return RoundSpec{
		League:       league,
		Round:        parseRound(roundRaw),
		Participants: splitParticipants(participantsRaw),
	}
}

func parseRound(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		return 1
	}
	return int(math.Floor(f))
}

func splitParticipants(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return DefaultRoster()
	}
	return out
}

// Validate checks the invariants NewRoundSpec guarantees. It exists for
// specs assembled directly, e.g. from config or tests.
func (s RoundSpec) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.League, validation.Required),
		validation.Field(&s.Round, validation.Required, validation.Min(1)),
		validation.Field(&s.Participants, validation.Required, validation.Each(validation.Required)),
	)
}
