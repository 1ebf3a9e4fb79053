package changelog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/config"
)

func TestClassify(t *testing.T) {
	cfg := config.Default()

	t.Run("plain type prefix is stripped", func(t *testing.T) {
		entry := Classify("feat: add login", cfg)
		require.Equal(t, "New feature", entry.Label)
		require.Equal(t, "add login", entry.Text)
	})

	t.Run("scoped prefix is stripped including scope", func(t *testing.T) {
		entry := Classify("fix(auth): handle expired tokens", cfg)
		require.Equal(t, "Bug fix", entry.Label)
		require.Equal(t, "handle expired tokens", entry.Text)
	})

	t.Run("type keyword matches case-insensitively", func(t *testing.T) {
		entry := Classify("FEAT: shout-case commit", cfg)
		require.Equal(t, "New feature", entry.Label)
		require.Equal(t, "shout-case commit", entry.Text)
	})

	t.Run("unknown type falls into the catch-all with full text", func(t *testing.T) {
		entry := Classify("wip: still thinking", cfg)
		require.Equal(t, cfg.OtherLabel, entry.Label)
		require.Equal(t, "wip: still thinking", entry.Text)
	})

	t.Run("non-conventional subject falls into the catch-all", func(t *testing.T) {
		entry := Classify("random commit C", cfg)
		require.Equal(t, cfg.OtherLabel, entry.Label)
		require.Equal(t, "random commit C", entry.Text)
	})

	t.Run("colons inside the description are preserved", func(t *testing.T) {
		entry := Classify("docs: explain foo: bar syntax", cfg)
		require.Equal(t, "Documentation", entry.Label)
		require.Equal(t, "explain foo: bar syntax", entry.Text)
	})

	t.Run("multi-word scope is not conventional", func(t *testing.T) {
		entry := Classify("fix(two words): something", cfg)
		require.Equal(t, cfg.OtherLabel, entry.Label)
		require.Equal(t, "fix(two words): something", entry.Text)
	})

	t.Run("nested parentheses in scope are not conventional", func(t *testing.T) {
		entry := Classify("feat((inner)): nope", cfg)
		require.Equal(t, cfg.OtherLabel, entry.Label)
		require.Equal(t, "feat((inner)): nope", entry.Text)
	})
}

func TestRender(t *testing.T) {
	cfg := config.Default()
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

	t.Run("round-trips a synthetic log into grouped sections", func(t *testing.T) {
		doc := Render([]string{"feat: A", "fix: B", "random commit C"}, cfg, now)

		require.Contains(t, doc, "# Changelog")
		require.Contains(t, doc, "Generated: 2024-06-15 09:30")
		require.Contains(t, doc, "## New feature\n\n- A\n")
		require.Contains(t, doc, "## Bug fix\n\n- B\n")
		require.Contains(t, doc, "## Other Changes\n\n- random commit C\n")
	})

	t.Run("empty buckets produce no heading", func(t *testing.T) {
		doc := Render([]string{"feat: A"}, cfg, now)

		require.Contains(t, doc, "## New feature")
		require.NotContains(t, doc, "## Bug fix")
		require.NotContains(t, doc, "## Other Changes")
	})

	t.Run("grouping is a partition of the input", func(t *testing.T) {
		subjects := []string{
			"feat: A",
			"fix(api): B",
			"chore: C",
			"no prefix here",
			"perf: D",
		}
		doc := Render(subjects, cfg, now)

		require.Equal(t, len(subjects), strings.Count(doc, "\n- "),
			"every commit appears exactly once as a bullet")
	})

	t.Run("commit order is preserved within a section", func(t *testing.T) {
		doc := Render([]string{"feat: newest", "feat: older", "feat: oldest"}, cfg, now)

		newest := strings.Index(doc, "- newest")
		older := strings.Index(doc, "- older")
		oldest := strings.Index(doc, "- oldest")
		require.True(t, newest < older && older < oldest)
	})

	t.Run("sections follow the canonical type order", func(t *testing.T) {
		doc := Render([]string{"ci: pipeline", "fix: bug", "feat: thing", "junk"}, cfg, now)

		feat := strings.Index(doc, "## New feature")
		fix := strings.Index(doc, "## Bug fix")
		ci := strings.Index(doc, "## CI/CD")
		other := strings.Index(doc, "## Other Changes")
		require.True(t, feat < fix && fix < ci && ci < other)
	})

	t.Run("blank subjects are ignored", func(t *testing.T) {
		doc := Render([]string{"", "feat: A", ""}, cfg, now)
		require.Equal(t, 1, strings.Count(doc, "\n- "))
	})
}
