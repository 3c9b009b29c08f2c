package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courseplan/internal/service"
)

// FormatCheck renders the state of the course file on disk.
func FormatCheck(r *service.CheckResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Width(10).Render("File"), r.Path)

	if !r.Exists {
		b.WriteString(StyleRed.Render("✖ Missing") + "\n")
		b.WriteString(Dim("Run generate-data to fetch the course.") + "\n")
		return RenderBox("Course data", b.String())
	}

	fmt.Fprintf(&b, "%s %s\n", StyleDim.Width(10).Render("Size"), FormatBytes(r.Size))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Width(10).Render("Modified"), r.ModTime.Format("Jan 2, 2006 15:04"))

	if !r.Valid {
		b.WriteString(StyleRed.Render("✖ Invalid") + "\n")
		if r.Problem != "" {
			b.WriteString(Dim(r.Problem) + "\n")
		}
		b.WriteString(Dim("Run generate-data --force to fetch it again.") + "\n")
		return RenderBox("Course data", b.String())
	}

	fmt.Fprintf(&b, "%s %s\n", StyleDim.Width(10).Render("Course"), Bold(r.CourseTitle))
	fmt.Fprintf(&b, "%s %s, %s\n", StyleDim.Width(10).Render("Contents"),
		Plural(r.UnitCount, "unit"), Plural(r.TopicCount, "topic"))
	if r.Stale {
		b.WriteString(StyleYellow.Render("◐ Valid but stale") + "\n")
	} else {
		b.WriteString(StyleGreen.Render("✔ Valid") + "\n")
	}
	return RenderBox("Course data", b.String())
}

// FormatEnsure renders the outcome of making sure course data is present.
func FormatEnsure(r *service.EnsureResult) string {
	f := r.File
	verb := "Using existing"
	if r.Generated {
		verb = "Generated"
	}
	line := fmt.Sprintf("%s %s: %s (%s, %s)",
		StyleGreen.Render("✔"), verb, Bold(f.Path),
		Plural(len(f.Course.Units), "unit"), Plural(f.Course.TopicCount(), "topic"))
	if r.Stale {
		line += "\n" + Warning("course data is stale, run generate-data --force to refresh")
	}
	return line + "\n"
}
