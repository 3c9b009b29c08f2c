package importer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/khan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	videos map[string]*khan.VideoContent
	fail   map[string]error
	calls  []string
}

func (f *fakeClient) ContentForPath(ctx context.Context, path, region string) (*khan.Response, error) {
	f.calls = append(f.calls, path)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.fail[path]; ok {
		return nil, err
	}
	resp := &khan.Response{}
	resp.Data.ContentRoute.ListedPathData = &khan.ListedPathData{Content: f.videos[path]}
	return resp, nil
}

func courseResponse(c *khan.Course) *khan.Response {
	resp := &khan.Response{}
	resp.Data.Content.Metadata.CommitSha = "sha-1"
	resp.Data.ContentRoute.ListedPathData = &khan.ListedPathData{Course: c}
	return resp
}

func rawVideo(id string) khan.CuratedChild {
	return khan.CuratedChild{
		ID:              id,
		TranslatedTitle: "Video " + id,
		ContentKind:     "Video",
		CanonicalURL:    "https://www.khanacademy.org/math/v/" + id,
	}
}

func rawExercise(id string) khan.CuratedChild {
	return khan.CuratedChild{ID: id, TranslatedTitle: "Exercise " + id, ContentKind: "Exercise"}
}

func sampleCourse() *khan.Course {
	return &khan.Course{
		ID:              "c1",
		TranslatedTitle: "Calculus 2",
		Slug:            "calculus-2",
		RelativeURL:     "/math/calculus-2",
		UnitChildren: []khan.Unit{
			{
				ID:              "u1",
				TranslatedTitle: "Integrals review",
				AllOrderedChildren: []khan.Topic{
					{ID: "t1", TranslatedTitle: "Riemann sums", CuratedChildren: []khan.CuratedChild{rawVideo("v1"), rawExercise("e1")}},
					{ID: "t2", TranslatedTitle: "Topic quiz"},
				},
			},
			{
				ID:              "u2",
				TranslatedTitle: "Series",
				AllOrderedChildren: []khan.Topic{
					{ID: "t3", TranslatedTitle: "Geometric series", CuratedChildren: []khan.CuratedChild{rawVideo("v2"), rawVideo("v3")}},
				},
			},
		},
		CourseChallenge:  &khan.Challenge{ID: "cc", TimeEstimate: &khan.TimeEstimate{LowerBound: 30, UpperBound: 50}},
		MasteryChallenge: &khan.Challenge{ID: "mc"},
	}
}

func sampleVideos() map[string]*khan.VideoContent {
	return map[string]*khan.VideoContent{
		"math/v/v1": {Duration: 600},
		"math/v/v2": {Duration: 300},
		"math/v/v3": {Duration: 90},
	}
}

func fixedNow() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

func TestReshape_BuildsCourseTree(t *testing.T) {
	client := &fakeClient{videos: sampleVideos()}
	file, err := Reshape(context.Background(), courseResponse(sampleCourse()), Options{
		Path: "math/calculus-2", Region: "US", MaxVideos: 50, Now: fixedNow,
	}, client)
	require.NoError(t, err)

	c := file.Course
	assert.Equal(t, "Calculus 2", c.Title)
	assert.Equal(t, "/math/calculus-2", c.URL)
	require.Len(t, c.Units, 2)
	assert.Equal(t, 3, c.TopicCount())
	assert.Equal(t, 4, c.ContentCount())

	assert.Equal(t, "sha-1", file.Metadata.CommitSha)
	assert.Equal(t, "math/calculus-2", file.Metadata.Path)
	assert.Equal(t, "US", file.Metadata.CountryCode)
	assert.Equal(t, fixedNow(), file.Metadata.ExtractedAt)

	assert.Equal(t, []string{"math/v/v1", "math/v/v2", "math/v/v3"}, client.calls)
	v1 := c.Units[0].Topics[0].Contents[0]
	require.NotNil(t, v1.VideoMetadata)
	assert.Equal(t, 10.0, v1.VideoMetadata.DurationMinutes)
	assert.Nil(t, c.Units[0].Topics[0].Contents[1].VideoMetadata)
}

func TestReshape_TimeEstimates(t *testing.T) {
	file, err := Reshape(context.Background(), courseResponse(sampleCourse()), Options{MaxVideos: 50}, &fakeClient{videos: sampleVideos()})
	require.NoError(t, err)
	c := file.Course

	t1 := c.Units[0].Topics[0].TotalTimeEstimate
	require.NotNil(t, t1)
	assert.Equal(t, 10.0, t1.VideoMinutes)
	assert.Equal(t, 10.0, t1.TotalMinutes)
	assert.Zero(t, t1.AverageMinutes)

	assert.Nil(t, c.Units[0].Topics[1].TotalTimeEstimate, "no videos means no estimate")

	u1 := c.Units[0].TotalTimeEstimate
	require.NotNil(t, u1)
	assert.Equal(t, 10.0, u1.VideoMinutes, "unit video minutes are not counted twice")
	assert.Equal(t, 10.0, u1.TotalMinutes)

	u2 := c.Units[1].TotalTimeEstimate
	require.NotNil(t, u2)
	assert.Equal(t, 6.5, u2.VideoMinutes)

	require.NotNil(t, c.CourseChallenge)
	assert.Equal(t, 40.0, c.CourseChallenge.TimeEstimate.AverageMinutes)
	require.NotNil(t, c.MasteryChallenge)
	assert.Zero(t, c.MasteryChallenge.TimeEstimate.AverageMinutes)

	total := c.TotalTimeEstimate
	require.NotNil(t, total)
	assert.Equal(t, 30.0, total.LowerBound)
	assert.Equal(t, 50.0, total.UpperBound)
	assert.Equal(t, 40.0, total.AverageMinutes)
	assert.Equal(t, 16.5, total.VideoMinutes)
	assert.Equal(t, 57.0, total.TotalMinutes)
}

func TestReshape_RespectsMaxVideos(t *testing.T) {
	client := &fakeClient{videos: sampleVideos()}
	file, err := Reshape(context.Background(), courseResponse(sampleCourse()), Options{MaxVideos: 2}, client)
	require.NoError(t, err)

	assert.Len(t, client.calls, 2)
	assert.Nil(t, file.Course.Units[1].Topics[0].Contents[1].VideoMetadata)
}

func TestReshape_VideoFailureIsSkipped(t *testing.T) {
	client := &fakeClient{
		videos: sampleVideos(),
		fail:   map[string]error{"math/v/v2": khan.ErrBadStatus},
	}
	file, err := Reshape(context.Background(), courseResponse(sampleCourse()), Options{MaxVideos: 50}, client)
	require.NoError(t, err)

	assert.Len(t, client.calls, 3, "the failed fetch still counts against the budget and others continue")
	series := file.Course.Units[1].Topics[0]
	assert.Nil(t, series.Contents[0].VideoMetadata)
	require.NotNil(t, series.Contents[1].VideoMetadata)
	assert.Equal(t, 1.5, series.TotalTimeEstimate.VideoMinutes)
}

func TestReshape_CancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Reshape(ctx, courseResponse(sampleCourse()), Options{MaxVideos: 50}, &fakeClient{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReshape_NilClientSkipsVideos(t *testing.T) {
	file, err := Reshape(context.Background(), courseResponse(sampleCourse()), Options{MaxVideos: 50}, nil)
	require.NoError(t, err)
	assert.Nil(t, file.Course.Units[0].TotalTimeEstimate)
	assert.Equal(t, 40.0, file.Course.TotalTimeEstimate.TotalMinutes)
}

func TestReshape_MissingCourse(t *testing.T) {
	_, err := Reshape(context.Background(), &khan.Response{}, Options{Path: "math/x"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "math/x")
}

func TestReshape_EmptyCourseHasUnits(t *testing.T) {
	file, err := Reshape(context.Background(), courseResponse(&khan.Course{TranslatedTitle: "Empty"}), Options{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, file.Course.Units)
	assert.Empty(t, file.Course.Units)
	assert.Nil(t, file.Course.TotalTimeEstimate)
}

func TestVideoMetadata(t *testing.T) {
	vc := &khan.VideoContent{
		Duration:         125,
		DownloadURLs:     `{"m3u8":"https://cdn/a.m3u8","mp4":"https://cdn/a.mp4"}`,
		KeyMoments:       []khan.KeyMoment{{StartOffset: 0, EndOffset: 30, Label: "Intro"}},
		Subtitles:        []khan.Subtitle{{Text: "hello", StartTime: 0, EndTime: 1.5, KAIsValid: true}},
		ThumbnailURLs:    []khan.Thumbnail{{URL: "https://cdn/t.png", Category: "default"}},
		YoutubeID:        "yt1",
		AuthorNames:      []string{"Sal"},
		DateAdded:        "2020-01-01",
		Keywords:         " integrals, series ,, calculus ",
		EducationalLevel: "high school",
	}

	meta := VideoMetadata(vc, nil)
	assert.Equal(t, 125.0, meta.Duration)
	assert.Equal(t, 2.08, meta.DurationMinutes)
	require.NotNil(t, meta.DownloadURLs)
	assert.Equal(t, "https://cdn/a.mp4", meta.DownloadURLs.MP4)
	assert.Equal(t, "https://cdn/a.m3u8", meta.DownloadURLs.M3U8)
	require.Len(t, meta.KeyMoments, 1)
	assert.Equal(t, "Intro", meta.KeyMoments[0].Label)
	require.Len(t, meta.Subtitles, 1)
	assert.True(t, meta.Subtitles[0].IsValid)
	assert.Equal(t, "default", meta.ThumbnailURLs[0].Category)
	assert.Equal(t, "yt1", meta.YoutubeID)
	assert.Equal(t, []string{"Sal"}, meta.AuthorNames)
	assert.Equal(t, []string{"integrals", "series", "calculus"}, meta.Keywords)
	assert.Equal(t, "high school", meta.EducationalLevel)
}

func TestVideoMetadata_BadDownloadURLs(t *testing.T) {
	meta := VideoMetadata(&khan.VideoContent{DownloadURLs: "not json"}, nil)
	assert.Nil(t, meta.DownloadURLs)
	assert.Zero(t, meta.DurationMinutes)
	assert.Empty(t, meta.Keywords)
}
