package note

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrNoResults signals that a document has no rankable data: either no
// "## Results" heading at all, or a heading with zero parseable rows.
// The two cases are deliberately the same signal; the caller's remedy
// (tell the user nothing was found) is identical either way.
var ErrNoResults = errors.New("no results found")

// resultLine is the grammar of one results bullet: "- name: number%".
// The name is non-greedy so it stops at the last colon that still
// leaves a valid number; the trailing percent sign is optional.
var resultLine = regexp.MustCompile(`^-\s*(.+?)\s*:\s*([-+]?\d+(?:\.\d+)?)\s*%?$`)

// ExtractResultsSection returns the text between the first "## Results"
// heading (case-insensitive) and the next "## " heading or end of input.
// The second return is false when no such heading exists.
func ExtractResultsSection(markdown string) (string, bool) {
	lines := strings.Split(markdown, "\n")
	start := -1
	for i, line := range lines {
		if strings.EqualFold(strings.TrimSpace(line), "## Results") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", false
	}
	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n"), true
}

// parseResultLine matches one trimmed line against the results grammar.
// A false return means the line is silently dropped by the caller; this
// is the best-effort policy, not an error.
func parseResultLine(line string) (ResultRow, bool) {
	m := resultLine.FindStringSubmatch(line)
	if m == nil {
		return ResultRow{}, false
	}
	pct, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return ResultRow{}, false
	}
	return ResultRow{Name: m[1], ReturnPct: pct}, true
}

// RankResults extracts the Results section, parses its bullets, and
// ranks them by return descending. The sort is explicitly stable: rows
// with equal returns keep their source order. Returns ErrNoResults when
// there is no section or no row parsed.
func RankResults(markdown string) (Standings, error) {
	section, ok := ExtractResultsSection(markdown)
	if !ok {
		return nil, ErrNoResults
	}

	var rows []ResultRow
	for _, line := range strings.Split(section, "\n") {
		if row, ok := parseResultLine(strings.TrimSpace(line)); ok {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, ErrNoResults
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ReturnPct > rows[j].ReturnPct
	})

	standings := make(Standings, len(rows))
	for i, r := range rows {
		standings[i] = Ranking{Rank: i + 1, Name: r.Name, ReturnPct: r.ReturnPct}
	}
	return standings, nil
}

// RenderStandings renders the markdown ranking table. Returns are fixed
// to two decimals with the sign preserved.
func RenderStandings(s Standings) string {
	var b strings.Builder
	b.WriteString("| Rank | Agent | Return |\n")
	b.WriteString("|---:|---|---:|\n")
	for _, r := range s {
		fmt.Fprintf(&b, "| %d | %s | %.2f%% |\n", r.Rank, r.Name, r.ReturnPct)
	}
	return b.String()
}

// Rank is the one-call form: markdown in, ranking table out.
func Rank(markdown string) (string, error) {
	standings, err := RankResults(markdown)
	if err != nil {
		return "", err
	}
	return RenderStandings(standings), nil
}
