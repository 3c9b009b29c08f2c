package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
)

var (
	// ErrCourseFileMissing indicates no course file exists at the path.
	ErrCourseFileMissing = errors.New("course file not found")

	// ErrCourseFileInvalid indicates a course file that is not valid JSON
	// or lacks the required structure.
	ErrCourseFileInvalid = errors.New("course file is invalid")
)

// Metadata records where and when a course tree was extracted.
type Metadata struct {
	ExtractedAt time.Time `json:"extractedAt"`
	CommitSha   string    `json:"commitSha"`
	Path        string    `json:"path"`
	CountryCode string    `json:"countryCode"`
}

// CourseFile is the persisted form of a reshaped course.
type CourseFile struct {
	Course   *domain.Course `json:"course"`
	Metadata Metadata       `json:"metadata"`
	Summary  *CourseSummary `json:"summary,omitempty"`
}

// LoadedFile is a CourseFile together with what the filesystem says
// about it.
type LoadedFile struct {
	*CourseFile
	Path    string
	Size    int64
	ModTime time.Time
}

// IsStale reports whether the file was last written more than maxAge
// before now. A non-positive maxAge disables the check.
func (f *LoadedFile) IsStale(maxAge time.Duration, now time.Time) bool {
	if maxAge <= 0 {
		return false
	}
	return f.ModTime.Before(now.Add(-maxAge))
}

// SummaryPath returns the sibling path the standalone summary is written to.
func SummaryPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + "-summary.json"
	}
	return strings.TrimSuffix(path, ext) + "-summary" + ext
}

// LoadCourseFile reads and validates a course file.
func LoadCourseFile(path string) (*LoadedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCourseFileMissing, path)
		}
		return nil, fmt.Errorf("reading course file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course file: %w", err)
	}

	var file CourseFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCourseFileInvalid, path, err)
	}

	if errs := ValidateCourseFile(&file); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", ErrCourseFileInvalid, path, formatValidationErrors(errs))
	}

	return &LoadedFile{
		CourseFile: &file,
		Path:       path,
		Size:       info.Size(),
		ModTime:    info.ModTime(),
	}, nil
}

// SaveCourseFile writes the course file as indented JSON and, when it
// carries a summary, the summary alone to SummaryPath(path).
func SaveCourseFile(path string, file *CourseFile) error {
	if err := writeJSON(path, file); err != nil {
		return fmt.Errorf("writing course file: %w", err)
	}
	if file.Summary != nil {
		if err := writeJSON(SummaryPath(path), file.Summary); err != nil {
			return fmt.Errorf("writing course summary: %w", err)
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
