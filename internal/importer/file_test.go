package importer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFile() *CourseFile {
	course := &domain.Course{
		Title: "Calculus 2",
		Units: []domain.Unit{{
			Title:  "Integrals review",
			Topics: []domain.Topic{{Title: "Riemann sums", Contents: []domain.Content{{ID: "e1", Title: "Practice", ContentKind: "Exercise"}}}},
		}},
	}
	meta := Metadata{ExtractedAt: fixedNow(), Path: "math/calculus-2", CountryCode: "US"}
	return &CourseFile{Course: course, Metadata: meta, Summary: Summarize(course, meta)}
}

func TestSummaryPath(t *testing.T) {
	assert.Equal(t, "math-calculus-2-summary.json", SummaryPath("math-calculus-2.json"))
	assert.Equal(t, filepath.Join("data", "course-summary.json"), SummaryPath(filepath.Join("data", "course.json")))
	assert.Equal(t, "course-summary.json", SummaryPath("course"))
}

func TestSaveAndLoadCourseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "math-calculus-2.json")
	require.NoError(t, SaveCourseFile(path, sampleFile()))

	loaded, err := LoadCourseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Path)
	assert.Positive(t, loaded.Size)
	assert.Equal(t, "Calculus 2", loaded.Course.Title)
	require.Len(t, loaded.Course.Units, 1)
	assert.Equal(t, "Exercise", loaded.Course.Units[0].Topics[0].Contents[0].ContentKind)
	assert.True(t, fixedNow().Equal(loaded.Metadata.ExtractedAt))
	require.NotNil(t, loaded.Summary)
	assert.Equal(t, 1, loaded.Summary.Content.Exercises)

	data, err := os.ReadFile(SummaryPath(path))
	require.NoError(t, err)
	var summary CourseSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, "Calculus 2", summary.Course.Title)
	assert.Equal(t, 1, summary.Course.TotalTopics)
}

func TestSaveCourseFile_NoSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.json")
	file := sampleFile()
	file.Summary = nil
	require.NoError(t, SaveCourseFile(path, file))

	_, err := os.Stat(SummaryPath(path))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadCourseFile_Missing(t *testing.T) {
	_, err := LoadCourseFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrCourseFileMissing)
}

func TestLoadCourseFile_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadCourseFile(path)
	assert.ErrorIs(t, err, ErrCourseFileInvalid)
}

func TestLoadCourseFile_InvalidStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"course":{"title":"X"}}`), 0o644))

	_, err := LoadCourseFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCourseFileInvalid)
	assert.Contains(t, err.Error(), "course.units is required")
	assert.Contains(t, err.Error(), "summary is required")
	assert.Contains(t, err.Error(), "validation failed (2 errors)")
}

func TestLoadedFile_IsStale(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	f := &LoadedFile{ModTime: now.Add(-31 * 24 * time.Hour)}

	assert.True(t, f.IsStale(30*24*time.Hour, now))
	assert.False(t, f.IsStale(45*24*time.Hour, now))
	assert.False(t, f.IsStale(0, now), "zero disables the check")
}
