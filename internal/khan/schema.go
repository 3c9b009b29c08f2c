package khan

// Response is the subset of the ContentForPath payload the importer reads.
type Response struct {
	Data struct {
		Content struct {
			Metadata struct {
				CommitSha string `json:"commitSha"`
			} `json:"metadata"`
		} `json:"content"`
		ContentRoute struct {
			ListedPathData *ListedPathData `json:"listedPathData"`
			ResolvedPath   string          `json:"resolvedPath"`
		} `json:"contentRoute"`
	} `json:"data"`
}

type ListedPathData struct {
	Content *VideoContent `json:"content"`
	Course  *Course       `json:"course"`
}

// Course returns the course node, if the path resolved to a course.
func (r *Response) Course() *Course {
	if r == nil || r.Data.ContentRoute.ListedPathData == nil {
		return nil
	}
	return r.Data.ContentRoute.ListedPathData.Course
}

// Video returns the content node, if the path resolved to a video page.
func (r *Response) Video() *VideoContent {
	if r == nil || r.Data.ContentRoute.ListedPathData == nil {
		return nil
	}
	return r.Data.ContentRoute.ListedPathData.Content
}

// CommitSha is the content snapshot the response was served from.
func (r *Response) CommitSha() string {
	if r == nil {
		return ""
	}
	return r.Data.Content.Metadata.CommitSha
}

type TimeEstimate struct {
	LowerBound float64 `json:"lowerBound"`
	UpperBound float64 `json:"upperBound"`
}

type Challenge struct {
	ID           string        `json:"id"`
	TimeEstimate *TimeEstimate `json:"timeEstimate"`
}

type Course struct {
	ID                    string     `json:"id"`
	TranslatedTitle       string     `json:"translatedTitle"`
	TranslatedDescription string     `json:"translatedDescription"`
	Slug                  string     `json:"slug"`
	RelativeURL           string     `json:"relativeUrl"`
	IconPath              string     `json:"iconPath"`
	MasteryEnabled        bool       `json:"masteryEnabled"`
	UnitChildren          []Unit     `json:"unitChildren"`
	CourseChallenge       *Challenge `json:"courseChallenge"`
	MasteryChallenge      *Challenge `json:"masteryChallenge"`
}

type Unit struct {
	ID                    string  `json:"id"`
	TranslatedTitle       string  `json:"translatedTitle"`
	TranslatedDescription string  `json:"translatedDescription"`
	Slug                  string  `json:"slug"`
	RelativeURL           string  `json:"relativeUrl"`
	AllOrderedChildren    []Topic `json:"allOrderedChildren"`
}

type Topic struct {
	ID                    string         `json:"id"`
	TranslatedTitle       string         `json:"translatedTitle"`
	TranslatedDescription string         `json:"translatedDescription"`
	Slug                  string         `json:"slug"`
	RelativeURL           string         `json:"relativeUrl"`
	CuratedChildren       []CuratedChild `json:"curatedChildren"`
}

type CuratedChild struct {
	ID                    string `json:"id"`
	TranslatedTitle       string `json:"translatedTitle"`
	TranslatedDescription string `json:"translatedDescription"`
	ContentKind           string `json:"contentKind"`
	Slug                  string `json:"slug"`
	CanonicalURL          string `json:"canonicalUrl"`
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
	KAIsValid bool    `json:"kaIsValid"`
}

type Thumbnail struct {
	URL      string `json:"url"`
	Category string `json:"category"`
}

// VideoContent is the detail page of a single video. DownloadURLs is a
// JSON object serialized as a string; Keywords is comma separated.
type VideoContent struct {
	ID               string      `json:"id"`
	Duration         float64     `json:"duration"`
	DownloadURLs     string      `json:"downloadUrls"`
	KeyMoments       []KeyMoment `json:"keyMoments"`
	Subtitles        []Subtitle  `json:"subtitles"`
	ThumbnailURLs    []Thumbnail `json:"thumbnailUrls"`
	YoutubeID        string      `json:"youtubeId"`
	AuthorNames      []string    `json:"authorNames"`
	DateAdded        string      `json:"dateAdded"`
	Keywords         string      `json:"keywords"`
	EducationalLevel string      `json:"educationalLevel"`
}
