package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoundSpecDefaults(t *testing.T) {
	spec := NewRoundSpec("", "", "")
	assert.Equal(t, DefaultLeague, spec.League)
	assert.Equal(t, 1, spec.Round)
	assert.Equal(t, DefaultRoster(), spec.Participants)
	assert.NoError(t, spec.Validate())
}

func TestNewRoundSpecRoundParsing(t *testing.T) {
	cases := map[string]int{
		"":     1,
		"0":    1,
		"-3":   1,
		"abc":  1,
		"NaN":  1,
		"+Inf": 1,
		"2":    2,
		"2.9":  2,
		" 7 ":  7,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NewRoundSpec("L", raw, "A").Round, "raw %q", raw)
	}
}

func TestNewRoundSpecParticipantSplitting(t *testing.T) {
	spec := NewRoundSpec("L", "1", " Alpha , ,Beta,, Gamma ")
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, spec.Participants)

	// Commas and blanks only fall back to the default roster.
	spec = NewRoundSpec("L", "1", " , ,")
	assert.Equal(t, DefaultRoster(), spec.Participants)
}

func TestRoundSpecValidate(t *testing.T) {
	assert.Error(t, RoundSpec{League: "", Round: 1, Participants: []string{"A"}}.Validate())
	assert.Error(t, RoundSpec{League: "L", Round: 0, Participants: []string{"A"}}.Validate())
	assert.Error(t, RoundSpec{League: "L", Round: 1}.Validate())
	assert.Error(t, RoundSpec{League: "L", Round: 1, Participants: []string{"A", ""}}.Validate())
	assert.NoError(t, RoundSpec{League: "L", Round: 1, Participants: []string{"A"}}.Validate())
}
