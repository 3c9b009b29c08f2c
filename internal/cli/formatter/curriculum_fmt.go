package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/importer"
)

// FormatCurriculum renders the course tree as units and topics with their
// item counts and estimated time.
func FormatCurriculum(f *importer.CourseFile) string {
	c := f.Course
	var b strings.Builder

	b.WriteString(Bold(c.Title) + "\n")
	if c.Description != "" {
		b.WriteString(Dim(Truncate(c.Description, 200)) + "\n")
	}
	fmt.Fprintf(&b, "\n%s, %s, %s\n",
		Plural(len(c.Units), "unit"),
		Plural(c.TopicCount(), "topic"),
		Plural(c.ContentCount(), "item"))
	if c.TotalTimeEstimate != nil {
		fmt.Fprintf(&b, "%s %s\n", Dim("Estimated time:"), importer.FormatDuration(c.TotalTimeEstimate.AverageMinutes))
	}
	if f.Summary != nil && f.Summary.Content.Videos.Total > 0 {
		fmt.Fprintf(&b, "%s %s across %s\n", Dim("Video time:"),
			f.Summary.Content.Videos.TotalDurationFormatted, Plural(f.Summary.Content.Videos.Total, "video"))
	}
	b.WriteString("\n")

	var items []TreeItem
	for i, u := range c.Units {
		items = append(items, TreeItem{
			Title:  fmt.Sprintf("%d. %s", i+1, u.Title),
			Detail: estimateDetail(u.TotalTimeEstimate, len(u.Topics), "topic"),
		})
		for j, t := range u.Topics {
			items = append(items, TreeItem{
				Title:  t.Title,
				Level:  1,
				IsLast: j == len(u.Topics)-1,
				Detail: estimateDetail(t.TotalTimeEstimate, len(t.Contents), "item"),
			})
		}
	}
	b.WriteString(RenderTree(items))

	if !f.Metadata.ExtractedAt.IsZero() {
		fmt.Fprintf(&b, "\n%s\n", Dim(fmt.Sprintf("Extracted %s from %s (%s)",
			f.Metadata.ExtractedAt.Format(domain.DateLayout), f.Metadata.Path, f.Metadata.CountryCode)))
	}
	return RenderBox("Curriculum", b.String())
}

func estimateDetail(est *domain.TimeEstimate, n int, noun string) string {
	if est == nil {
		return Plural(n, noun)
	}
	return fmt.Sprintf("%s, %s", Plural(n, noun), importer.FormatDuration(est.AverageMinutes))
}
