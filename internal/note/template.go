package note

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ComposeRound renders the markdown document for a new round note.
// The clock is passed in so output is deterministic under test; callers
// hand it time.Now(). Apart from the timestamp this is pure string
// construction and cannot fail.
func ComposeRound(spec RoundSpec, now time.Time) string {
	participants := spec.Participants
	if len(participants) == 0 {
		participants = DefaultRoster()
	}

	meta := RoundMeta{League: spec.League, Round: spec.Round, Created: now.UTC()}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString(renderFrontMatter(meta))
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s Round %d\n\n", spec.League, spec.Round)

	b.WriteString("## Participants\n")
	for _, p := range participants {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString("\n## Results\n")
	for _, p := range participants {
		fmt.Fprintf(&b, "- %s: 0.00%%\n", p)
	}
	b.WriteString("\n## Notes\n")
	b.WriteString("- strategy:\n")
	b.WriteString("- risk events:\n")
	return b.String()
}

func renderFrontMatter(meta RoundMeta) string {
	// yaml.v3 keeps struct field order, so the block reads
	// league / round / created top to bottom. Created goes through as
	// time.Time so it is emitted as a bare RFC3339 timestamp and reads
	// back as one.
	out, err := yaml.Marshal(struct {
		League  string    `yaml:"league"`
		Round   int       `yaml:"round"`
		Created time.Time `yaml:"created"`
	}{
		League:  meta.League,
		Round:   meta.Round,
		Created: meta.Created,
	})
	if err != nil {
		// Marshal of a flat string/int struct cannot fail.
		panic(err)
	}
	return string(out)
}
