package config

import (
	"os"
	"strconv"
)

func applyEnv(cfg *Config) {
	if v := os.Getenv("COURSEPLAN_DATA_FILE"); v != "" {
		cfg.Course.DataFile = v
	}
	if v := os.Getenv("COURSEPLAN_COURSE_PATH"); v != "" {
		cfg.Course.Path = v
	}
	if v := os.Getenv("COURSEPLAN_REGION"); v != "" {
		cfg.Course.Region = v
	}
	if v := os.Getenv("COURSEPLAN_MAX_VIDEOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Course.MaxVideos = n
		}
	}
	if v := os.Getenv("COURSEPLAN_API_ENDPOINT"); v != "" {
		cfg.API.Endpoint = v
	}
	if v := os.Getenv("COURSEPLAN_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.API.TimeoutMs = n
		}
	}
	if v := os.Getenv("COURSEPLAN_REQUEST_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.API.RequestDelayMs = n
		}
	}
	if v := os.Getenv("COURSEPLAN_HOURS_PER_DAY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Study.HoursPerDay = f
		}
	}
	if v := os.Getenv("COURSEPLAN_PACE"); v != "" {
		cfg.Study.Pace = v
	}
	if v := os.Getenv("COURSEPLAN_LOG_MODE"); v != "" {
		cfg.Log.Mode = v
	}
	if v := os.Getenv("COURSEPLAN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("COURSEPLAN_LOG_USE_CASES"); v != "" {
		cfg.Log.UseCases, _ = strconv.ParseBool(v)
	}
}
