package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/khan"
	"github.com/alexanderramin/courseplan/internal/logger"
	"github.com/alexanderramin/courseplan/internal/scheduler"
)

const siteRoot = "https://www.khanacademy.org/"

// Options controls a reshape run.
type Options struct {
	Path      string
	Region    string
	MaxVideos int
	Log       *logger.Logger
	Now       func() time.Time
}

// Reshape converts a raw course response into a normalized course tree.
// Video metadata for the first MaxVideos videos is fetched through client;
// a failed video fetch is logged and the video kept without metadata.
func Reshape(ctx context.Context, resp *khan.Response, opts Options, client khan.Client) (*CourseFile, error) {
	raw := resp.Course()
	if raw == nil {
		return nil, fmt.Errorf("%w: response for %q has no course", domain.ErrInvalidInput, opts.Path)
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	r := &reshaper{ctx: ctx, opts: opts, client: client, log: log}

	units := make([]domain.Unit, 0, len(raw.UnitChildren))
	for i, ru := range raw.UnitChildren {
		log.Debug("reshaping unit", "index", i+1, "of", len(raw.UnitChildren), "title", ru.TranslatedTitle)
		u, err := r.unit(ru)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	course := &domain.Course{
		ID:             raw.ID,
		Title:          raw.TranslatedTitle,
		Description:    raw.TranslatedDescription,
		Slug:           raw.Slug,
		URL:            raw.RelativeURL,
		IconPath:       raw.IconPath,
		MasteryEnabled: raw.MasteryEnabled,
		Units:          units,
	}

	var estimates []domain.TimeEstimate
	if raw.CourseChallenge != nil {
		course.CourseChallenge = challenge(raw.CourseChallenge)
		estimates = append(estimates, course.CourseChallenge.TimeEstimate)
	}
	if raw.MasteryChallenge != nil {
		course.MasteryChallenge = challenge(raw.MasteryChallenge)
		estimates = append(estimates, course.MasteryChallenge.TimeEstimate)
	}
	for _, u := range units {
		if u.TotalTimeEstimate != nil {
			estimates = append(estimates, *u.TotalTimeEstimate)
		}
	}
	course.TotalTimeEstimate = scheduler.Combine(estimates, 0)

	log.Info("course reshaped",
		"path", opts.Path,
		"units", len(units),
		"topics", course.TopicCount(),
		"contents", course.ContentCount(),
		"videos_fetched", r.videosFetched,
	)

	return &CourseFile{
		Course: course,
		Metadata: Metadata{
			ExtractedAt: now().UTC(),
			CommitSha:   resp.CommitSha(),
			Path:        opts.Path,
			CountryCode: opts.Region,
		},
	}, nil
}

type reshaper struct {
	ctx    context.Context
	opts   Options
	client khan.Client
	log    *logger.Logger

	videosFetched int
}

func (r *reshaper) unit(ru khan.Unit) (domain.Unit, error) {
	topics := make([]domain.Topic, 0, len(ru.AllOrderedChildren))
	var estimates []domain.TimeEstimate
	for _, rt := range ru.AllOrderedChildren {
		t, err := r.topic(rt)
		if err != nil {
			return domain.Unit{}, err
		}
		if t.TotalTimeEstimate != nil {
			estimates = append(estimates, *t.TotalTimeEstimate)
		}
		topics = append(topics, t)
	}

	// Topic estimates already carry their video minutes.
	return domain.Unit{
		ID:                ru.ID,
		Title:             ru.TranslatedTitle,
		Description:       ru.TranslatedDescription,
		Slug:              ru.Slug,
		URL:               ru.RelativeURL,
		Topics:            topics,
		TotalTimeEstimate: scheduler.Combine(estimates, 0),
	}, nil
}

func (r *reshaper) topic(rt khan.Topic) (domain.Topic, error) {
	contents := make([]domain.Content, 0, len(rt.CuratedChildren))
	for _, rc := range rt.CuratedChildren {
		c := domain.Content{
			ID:          rc.ID,
			Title:       rc.TranslatedTitle,
			Description: rc.TranslatedDescription,
			ContentKind: rc.ContentKind,
			Slug:        rc.Slug,
			URL:         rc.CanonicalURL,
		}
		if c.Kind() == domain.KindVideo {
			meta, err := r.video(rc)
			if err != nil {
				return domain.Topic{}, err
			}
			c.VideoMetadata = meta
		}
		contents = append(contents, c)
	}

	return domain.Topic{
		ID:                rt.ID,
		Title:             rt.TranslatedTitle,
		Description:       rt.TranslatedDescription,
		Slug:              rt.Slug,
		URL:               rt.RelativeURL,
		Contents:          contents,
		TotalTimeEstimate: scheduler.VideoOnly(scheduler.VideoMinutes(contents)),
	}, nil
}

// video fetches metadata for one video while the budget lasts. Only a
// cancelled context is returned as an error.
func (r *reshaper) video(rc khan.CuratedChild) (*domain.VideoMetadata, error) {
	if r.client == nil || r.videosFetched >= r.opts.MaxVideos {
		r.log.Debug("skipping video metadata", "title", rc.TranslatedTitle, "limit", r.opts.MaxVideos)
		return nil, nil
	}
	r.videosFetched++

	path := strings.TrimPrefix(rc.CanonicalURL, siteRoot)
	if path == "" {
		r.log.Warn("video has no canonical url", "id", rc.ID, "title", rc.TranslatedTitle)
		return nil, nil
	}

	resp, err := r.client.ContentForPath(r.ctx, path, r.opts.Region)
	if err != nil {
		if r.ctx.Err() != nil {
			return nil, fmt.Errorf("fetching video %s: %w", path, r.ctx.Err())
		}
		r.log.Warn("failed to fetch video metadata", "path", path, "error", err)
		return nil, nil
	}

	vc := resp.Video()
	if vc == nil {
		return nil, nil
	}
	meta := VideoMetadata(vc, r.log)
	r.log.Debug("video metadata", "title", rc.TranslatedTitle, "minutes", meta.DurationMinutes)
	return meta, nil
}

func challenge(rc *khan.Challenge) *domain.Challenge {
	c := &domain.Challenge{ID: rc.ID}
	if rc.TimeEstimate != nil {
		c.TimeEstimate = scheduler.FromBounds(rc.TimeEstimate.LowerBound, rc.TimeEstimate.UpperBound)
	}
	return c
}

// VideoMetadata converts a raw video page into its normalized metadata.
// Malformed download URLs are logged and dropped.
func VideoMetadata(vc *khan.VideoContent, log *logger.Logger) *domain.VideoMetadata {
	meta := &domain.VideoMetadata{
		YoutubeID:        vc.YoutubeID,
		DateAdded:        vc.DateAdded,
		EducationalLevel: vc.EducationalLevel,
	}

	if vc.Duration > 0 {
		meta.Duration = vc.Duration
		meta.DurationMinutes = domain.Round(vc.Duration/60, 2)
	}

	if vc.DownloadURLs != "" {
		var urls domain.DownloadURLs
		if err := json.Unmarshal([]byte(vc.DownloadURLs), &urls); err != nil {
			if log != nil {
				log.Warn("failed to parse download urls", "error", err)
			}
		} else {
			meta.DownloadURLs = &urls
		}
	}

	for _, km := range vc.KeyMoments {
		meta.KeyMoments = append(meta.KeyMoments, domain.KeyMoment{
			StartOffset: km.StartOffset,
			EndOffset:   km.EndOffset,
			Label:       km.Label,
		})
	}
	for _, s := range vc.Subtitles {
		meta.Subtitles = append(meta.Subtitles, domain.Subtitle{
			Text:      s.Text,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			IsValid:   s.KAIsValid,
		})
	}
	for _, th := range vc.ThumbnailURLs {
		meta.ThumbnailURLs = append(meta.ThumbnailURLs, domain.Thumbnail{URL: th.URL, Category: th.Category})
	}
	if len(vc.AuthorNames) > 0 {
		meta.AuthorNames = append([]string(nil), vc.AuthorNames...)
	}
	for _, k := range strings.Split(vc.Keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			meta.Keywords = append(meta.Keywords, k)
		}
	}

	return meta
}
