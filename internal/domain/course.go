package domain

// TimeEstimate is a composite time range in minutes. AverageMinutes is
// always round((LowerBound+UpperBound)/2).
type TimeEstimate struct {
	LowerBound     float64 `json:"lowerBound"`
	UpperBound     float64 `json:"upperBound"`
	AverageMinutes float64 `json:"averageMinutes"`
	VideoMinutes   float64 `json:"videoMinutes,omitempty"`
	TotalMinutes   float64 `json:"totalMinutes,omitempty"`
}

type KeyMoment struct {
	StartOffset float64 `json:"startOffset"`
	EndOffset   float64 `json:"endOffset"`
	Label       string  `json:"label"`
}

type Subtitle struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	IsValid   bool    `json:"isValid"`
}

type Thumbnail struct {
	URL      string `json:"url"`
	Category string `json:"category"`
}

type DownloadURLs struct {
	M3U8 string `json:"m3u8,omitempty"`
	MP4  string `json:"mp4,omitempty"`
}

// VideoMetadata is the detail fetched separately for video content.
type VideoMetadata struct {
	Duration         float64       `json:"duration,omitempty"`
	DurationMinutes  float64       `json:"durationMinutes,omitempty"`
	DownloadURLs     *DownloadURLs `json:"downloadUrls,omitempty"`
	KeyMoments       []KeyMoment   `json:"keyMoments,omitempty"`
	Subtitles        []Subtitle    `json:"subtitles,omitempty"`
	ThumbnailURLs    []Thumbnail   `json:"thumbnailUrls,omitempty"`
	YoutubeID        string        `json:"youtubeId,omitempty"`
	AuthorNames      []string      `json:"authorNames,omitempty"`
	DateAdded        string        `json:"dateAdded,omitempty"`
	Keywords         []string      `json:"keywords,omitempty"`
	EducationalLevel string        `json:"educationalLevel,omitempty"`
}

// Content is one leaf of the normalized course tree.
type Content struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ContentKind   string         `json:"contentKind"`
	Slug          string         `json:"slug"`
	URL           string         `json:"url"`
	TimeEstimate  *TimeEstimate  `json:"timeEstimate,omitempty"`
	VideoMetadata *VideoMetadata `json:"videoMetadata,omitempty"`
}

// Kind returns the normalized content kind.
func (c Content) Kind() ContentKind {
	return ParseContentKind(c.ContentKind)
}

// VideoDurationMinutes returns the fetched video duration, or 0 when unknown.
func (c Content) VideoDurationMinutes() float64 {
	if c.VideoMetadata == nil {
		return 0
	}
	return c.VideoMetadata.DurationMinutes
}

type Topic struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Slug              string        `json:"slug"`
	URL               string        `json:"url"`
	Contents          []Content     `json:"contents"`
	TotalTimeEstimate *TimeEstimate `json:"totalTimeEstimate,omitempty"`
}

type Unit struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Slug              string        `json:"slug"`
	URL               string        `json:"url"`
	Topics            []Topic       `json:"topics"`
	TotalTimeEstimate *TimeEstimate `json:"totalTimeEstimate,omitempty"`
}

// Challenge is a course-level assessment with its own time range.
type Challenge struct {
	ID           string       `json:"id"`
	TimeEstimate TimeEstimate `json:"timeEstimate"`
}

// Course is the root of the normalized course tree. A nil Units slice
// means the tree is structurally invalid; an empty one is a course with
// no units.
type Course struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Slug              string        `json:"slug"`
	URL               string        `json:"url"`
	IconPath          string        `json:"iconPath"`
	MasteryEnabled    bool          `json:"masteryEnabled"`
	Units             []Unit        `json:"units"`
	CourseChallenge   *Challenge    `json:"courseChallenge,omitempty"`
	MasteryChallenge  *Challenge    `json:"masteryChallenge,omitempty"`
	TotalTimeEstimate *TimeEstimate `json:"totalTimeEstimate,omitempty"`
}

// TopicCount returns the number of topics across all units.
func (c *Course) TopicCount() int {
	n := 0
	for _, u := range c.Units {
		n += len(u.Topics)
	}
	return n
}

// ContentCount returns the number of content items across all topics.
func (c *Course) ContentCount() int {
	n := 0
	for _, u := range c.Units {
		for _, t := range u.Topics {
			n += len(t.Contents)
		}
	}
	return n
}
