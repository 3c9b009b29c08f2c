package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/courseplan/internal/domain"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(samplePlan(), &buf))

	var got domain.StudyPlan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Calculus 2", got.CourseTitle)
	require.Len(t, got.DailyBreakdown, 2)
	assert.Equal(t, domain.GoalSingleTopic, got.DailyBreakdown[0].Goal.Kind)
	assert.Contains(t, buf.String(), "\n  \"id\": ")
}

func TestWriteJSON_EmptyPlanKeepsArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(emptyPlan(), &buf))
	assert.Contains(t, buf.String(), `"dailyBreakdown": []`)
	assert.Contains(t, buf.String(), `"backlog": []`)
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "plan.json")
	require.NoError(t, SaveFile(path, samplePlan(), WriteJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
