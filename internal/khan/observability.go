package khan

import (
	"github.com/alexanderramin/courseplan/internal/logger"
)

// CallEvent records metadata about a single content API request.
type CallEvent struct {
	Path      string
	Region    string
	Status    int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about content API calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a structured logger.
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver creates an Observer that logs events through log.
func NewLogObserver(log *logger.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		o.log.Debug("content_api_call",
			"path", event.Path,
			"region", event.Region,
			"status", event.Status,
			"latency_ms", event.LatencyMs,
		)
		return
	}
	o.log.Warn("content_api_call",
		"path", event.Path,
		"region", event.Region,
		"status", event.Status,
		"latency_ms", event.LatencyMs,
		"error_code", event.ErrorCode,
	)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
