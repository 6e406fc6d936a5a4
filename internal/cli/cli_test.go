package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mithrel/leaguenote/internal/note"
)

// writeTestConfig points the CLI at isolated dirs and a fixed roster.
func writeTestConfig(t *testing.T) (cfgPath, notesDir string) {
	t.Helper()
	tmp := t.TempDir()
	notesDir = filepath.Join(tmp, "notes")
	cfgPath = filepath.Join(tmp, "config.toml")
	content := `notes_dir = "` + strings.ReplaceAll(notesDir, "\\", "\\\\") + `"
league = "Test League"
participants = ["Alpha", "Beta"]
output = "plain"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath, notesDir
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoundNewCreatesNote(t *testing.T) {
	cfg, notesDir := writeTestConfig(t)

	out, _, err := runCLI(t, "", "--config", cfg, "round", "new", "--round", "2")
	if err != nil {
		t.Fatalf("round new: %v", err)
	}
	if !strings.Contains(out, "Created ") {
		t.Fatalf("unexpected output: %q", out)
	}

	path := filepath.Join(notesDir, "Test League Round 2.md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("note not written: %v", err)
	}
	src := string(data)
	for _, want := range []string{
		"league: Test League",
		"# Test League Round 2",
		"- Alpha: 0.00%",
		"- Beta: 0.00%",
		"## Notes",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("note missing %q:\n%s", want, src)
		}
	}
}

func TestRoundNewExistingNote(t *testing.T) {
	cfg, _ := writeTestConfig(t)

	if _, _, err := runCLI(t, "", "--config", cfg, "round", "new"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// Identical invocation differs only in the created timestamp, so
	// the second write is a content collision.
	if _, _, err := runCLI(t, "", "--config", cfg, "round", "new"); err == nil {
		t.Fatal("expected collision error")
	}
}

func TestRoundRankFromFile(t *testing.T) {
	cfg, _ := writeTestConfig(t)
	path := filepath.Join(t.TempDir(), "round.md")
	src := "# Round\n\n## Results\n- Alpha: 3.12%\n- Beta: -0.42%\n- Gamma: 1.07%\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "", "--config", cfg, "round", "rank", path)
	if err != nil {
		t.Fatalf("round rank: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"| Rank | Agent | Return |",
		"|---:|---|---:|",
		"| 1 | Alpha | 3.12% |",
		"| 2 | Gamma | 1.07% |",
		"| 3 | Beta | -0.42% |",
	}
	if len(lines) != len(want) {
		t.Fatalf("unexpected table:\n%s", out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q want %q", i, lines[i], want[i])
		}
	}
}

func TestRoundRankStdinJSON(t *testing.T) {
	cfg, _ := writeTestConfig(t)
	src := "## Results\n- A: 1.00%\n- B: 2.00%\n"

	out, _, err := runCLI(t, src, "--config", cfg, "round", "rank", "--output", "json")
	if err != nil {
		t.Fatalf("round rank: %v", err)
	}
	var standings note.Standings
	if err := json.Unmarshal([]byte(out), &standings); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if len(standings) != 2 || standings[0].Name != "B" {
		t.Fatalf("unexpected standings: %+v", standings)
	}
}

func TestRoundRankNoResults(t *testing.T) {
	cfg, _ := writeTestConfig(t)

	out, errOut, err := runCLI(t, "# nothing here\n", "--config", cfg, "round", "rank")
	if err != nil {
		t.Fatalf("no-results should not be an error: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected empty stdout, got %q", out)
	}
	if !strings.Contains(errOut, "No results found.") {
		t.Fatalf("expected notice on stderr, got %q", errOut)
	}
}

func TestRoundRankAppend(t *testing.T) {
	cfg, _ := writeTestConfig(t)
	path := filepath.Join(t.TempDir(), "round.md")
	src := "## Results\n- A: 1.00%\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, "", "--config", cfg, "round", "rank", "--append", path); err != nil {
		t.Fatalf("append: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.HasPrefix(got, src) {
		t.Fatalf("original content altered:\n%s", got)
	}
	if !strings.Contains(got, "## Standings\n\n| Rank | Agent | Return |") {
		t.Fatalf("table not appended:\n%s", got)
	}
}

func TestRoundRankAppendRefreshesExistingSection(t *testing.T) {
	cfg, _ := writeTestConfig(t)
	path := filepath.Join(t.TempDir(), "round.md")
	src := "## Results\n- A: 1.00%\n- B: 2.00%\n\n## Retro\n- went fine\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if _, _, err := runCLI(t, "", "--config", cfg, "round", "rank", "--append", path); err != nil {
			t.Fatalf("append run %d: %v", i, err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if n := strings.Count(got, "## Standings"); n != 1 {
		t.Fatalf("standings sections = %d, want 1:\n%s", n, got)
	}
	if n := strings.Count(got, "| 1 | B | 2.00% |"); n != 1 {
		t.Fatalf("table rows duplicated:\n%s", got)
	}
	// Other sections survive the rewrite.
	if !strings.Contains(got, "## Retro\n- went fine") {
		t.Fatalf("trailing section lost:\n%s", got)
	}
}

func TestCompletionGeneratePerShell(t *testing.T) {
	cfg, _ := writeTestConfig(t)

	cases := map[string]string{
		"bash": "# bash completion for leaguenote-cli",
		"zsh":  "#compdef",
		"fish": "# fish completion for leaguenote-cli",
	}
	for shell, marker := range cases {
		out, _, err := runCLI(t, "", "--config", cfg, "completion", "generate", shell)
		if err != nil {
			t.Fatalf("completion generate %s: %v", shell, err)
		}
		if !strings.Contains(out, marker) {
			t.Fatalf("%s script missing %q:\n%.200s", shell, marker, out)
		}
	}

	// Each shell gets its own script, not bash's.
	zshOut, _, err := runCLI(t, "", "--config", cfg, "completion", "generate", "zsh")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(zshOut, "complete -o default -F __start_leaguenote-cli") {
		t.Fatalf("zsh request produced a bash script:\n%.200s", zshOut)
	}
}

func TestConfigGenerate(t *testing.T) {
	cfg, _ := writeTestConfig(t)
	out := filepath.Join(t.TempDir(), "generated.toml")

	stdout, _, err := runCLI(t, "", "--config", cfg, "config", "generate", "-o", out)
	if err != nil {
		t.Fatalf("config generate: %v", err)
	}
	if !strings.Contains(stdout, "Wrote ") {
		t.Fatalf("unexpected output: %q", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "league = \"Trading Agent League\"") {
		t.Fatalf("defaults missing:\n%s", data)
	}

	// Second run without --overwrite refuses.
	if _, _, err := runCLI(t, "", "--config", cfg, "config", "generate", "-o", out); err == nil {
		t.Fatal("expected refusal to overwrite")
	}
}
