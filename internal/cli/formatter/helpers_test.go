package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/courseplan/internal/domain"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 topic", Plural(1, "topic"))
	assert.Equal(t, "0 topics", Plural(0, "topic"))
	assert.Equal(t, "3 quizzes", Plural(3, "quiz"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "2.0 KB", FormatBytes(2048))
	assert.Equal(t, "1.5 MB", FormatBytes(3<<19))
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "[░░░░]   0%"},
		{"half", 0.5, "[██░░]  50%"},
		{"full", 1, "[████] 100%"},
		{"clamps above", 1.7, "[████] 100%"},
		{"clamps below", -1, "[░░░░]   0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 4)))
		})
	}
}

func TestRenderTable(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "LONG"}, [][]string{{"xyz", "1"}, {"q"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"A    LONG",
		"───  ────",
		"xyz  1",
		"q    ",
	}, lines)

	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTree(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "Unit", Detail: "2 topics"},
		{Title: "First", Level: 1},
		{Title: "Second", Level: 1, IsLast: true, Detail: "3 items"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Unit"))
	assert.True(t, strings.HasSuffix(lines[0], "2 topics"))
	assert.Equal(t, "├─ First", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "└─ Second"))

	assert.Empty(t, RenderTree(nil))
}

func TestStatusIndicator(t *testing.T) {
	assert.Contains(t, stripANSI(StatusIndicator(domain.DayCompleted)), "completed")
	assert.Contains(t, stripANSI(StatusIndicator(domain.DayPartial)), "partial")
	assert.Contains(t, stripANSI(StatusIndicator(domain.DayReview)), "review")
}
