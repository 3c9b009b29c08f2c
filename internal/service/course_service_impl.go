package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/courseplan/internal/importer"
	"github.com/alexanderramin/courseplan/internal/khan"
	"github.com/alexanderramin/courseplan/internal/logger"
)

// CourseSettings names the course to fetch and where it lives on disk.
type CourseSettings struct {
	Path       string
	Region     string
	DataFile   string
	MaxVideos  int
	StaleAfter time.Duration
}

type courseService struct {
	client   khan.Client
	settings CourseSettings
	log      *logger.Logger
	observer UseCaseObserver
	now      func() time.Time
}

func NewCourseService(client khan.Client, settings CourseSettings, log *logger.Logger, observers ...UseCaseObserver) CourseService {
	if log == nil {
		log = logger.Nop()
	}
	return &courseService{
		client:   client,
		settings: settings,
		log:      log,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *courseService) Ensure(ctx context.Context, force bool) (result *EnsureResult, err error) {
	fields := map[string]any{"file": s.settings.DataFile, "force": force}
	defer observe(ctx, s.observer, "ensure-course", time.Now().UTC(), fields, &err)

	if !force {
		var loaded *importer.LoadedFile
		loaded, err = importer.LoadCourseFile(s.settings.DataFile)
		switch {
		case err == nil:
			stale := loaded.IsStale(s.settings.StaleAfter, s.now())
			if stale {
				s.log.Warn("course file may need refreshing",
					"file", loaded.Path,
					"modified", loaded.ModTime.Format(time.DateOnly),
				)
			}
			fields["generated"] = false
			return &EnsureResult{File: loaded, Stale: stale}, nil
		case errors.Is(err, importer.ErrCourseFileMissing):
			s.log.Info("course file missing, generating", "file", s.settings.DataFile)
		case errors.Is(err, importer.ErrCourseFileInvalid):
			s.log.Warn("course file invalid, regenerating", "file", s.settings.DataFile, "error", err)
		default:
			return nil, err
		}
	}

	var loaded *importer.LoadedFile
	loaded, err = s.generate(ctx)
	if err != nil {
		return nil, err
	}
	fields["generated"] = true
	fields["units"] = len(loaded.Course.Units)
	return &EnsureResult{File: loaded, Generated: true}, nil
}

func (s *courseService) generate(ctx context.Context) (*importer.LoadedFile, error) {
	resp, err := s.client.ContentForPath(ctx, s.settings.Path, s.settings.Region)
	if err != nil {
		return nil, fmt.Errorf("fetching course %s: %w", s.settings.Path, err)
	}

	file, err := importer.Reshape(ctx, resp, importer.Options{
		Path:      s.settings.Path,
		Region:    s.settings.Region,
		MaxVideos: s.settings.MaxVideos,
		Log:       s.log,
		Now:       s.now,
	}, s.client)
	if err != nil {
		return nil, fmt.Errorf("reshaping course %s: %w", s.settings.Path, err)
	}
	file.Summary = importer.Summarize(file.Course, file.Metadata)

	if err := importer.SaveCourseFile(s.settings.DataFile, file); err != nil {
		return nil, err
	}
	s.log.Info("course file saved",
		"file", s.settings.DataFile,
		"summary", importer.SummaryPath(s.settings.DataFile),
	)

	loaded, err := importer.LoadCourseFile(s.settings.DataFile)
	if err != nil {
		return nil, fmt.Errorf("reloading course file: %w", err)
	}
	return loaded, nil
}

func (s *courseService) Check(ctx context.Context) (result *CheckResult, err error) {
	fields := map[string]any{"file": s.settings.DataFile}
	defer observe(ctx, s.observer, "check-course", time.Now().UTC(), fields, &err)

	result = &CheckResult{Path: s.settings.DataFile}

	info, statErr := os.Stat(s.settings.DataFile)
	if statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			fields["exists"] = false
			return result, nil
		}
		return nil, fmt.Errorf("checking course file: %w", statErr)
	}
	result.Exists = true
	result.Size = info.Size()
	result.ModTime = info.ModTime()

	loaded, loadErr := importer.LoadCourseFile(s.settings.DataFile)
	if loadErr != nil {
		if errors.Is(loadErr, importer.ErrCourseFileInvalid) {
			result.Problem = loadErr.Error()
			fields["valid"] = false
			return result, nil
		}
		return nil, loadErr
	}

	result.Valid = true
	result.Stale = loaded.IsStale(s.settings.StaleAfter, s.now())
	result.CourseTitle = loaded.Course.Title
	result.UnitCount = len(loaded.Course.Units)
	result.TopicCount = loaded.Course.TopicCount()
	fields["valid"] = true
	return result, nil
}
