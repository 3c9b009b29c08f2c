package importer

import (
	"fmt"
	"strings"
)

// ValidateCourseFile checks the structure a planner needs from a course
// file. Returns a slice of all validation errors found.
func ValidateCourseFile(file *CourseFile) []error {
	var errs []error

	if file.Course == nil {
		errs = append(errs, fmt.Errorf("course is required"))
	} else {
		if file.Course.Title == "" {
			errs = append(errs, fmt.Errorf("course.title is required"))
		}
		if file.Course.Units == nil {
			errs = append(errs, fmt.Errorf("course.units is required"))
		}
		for i, u := range file.Course.Units {
			if u.Title == "" {
				errs = append(errs, fmt.Errorf("course.units[%d].title is required", i))
			}
			for j, t := range u.Topics {
				if t.Title == "" {
					errs = append(errs, fmt.Errorf("course.units[%d].topics[%d].title is required", i, j))
				}
			}
		}
	}

	if file.Summary == nil {
		errs = append(errs, fmt.Errorf("summary is required"))
	}

	return errs
}

func formatValidationErrors(errs []error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed (%d errors):", len(errs))
	for _, e := range errs {
		fmt.Fprintf(&b, "\n  - %s", e)
	}
	return b.String()
}
