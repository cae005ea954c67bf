package config

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.SessionTTL != 3600*time.Second {
		t.Errorf("SessionTTL = %v, expected 1h", cfg.SessionTTL)
	}
	if cfg.WeakAreaThreshold != 0.7 {
		t.Errorf("WeakAreaThreshold = %v, expected 0.7", cfg.WeakAreaThreshold)
	}
	if cfg.DefaultQuizSize != 5 {
		t.Errorf("DefaultQuizSize = %d, expected 5", cfg.DefaultQuizSize)
	}
	if cfg.MergeRetries != 3 {
		t.Errorf("MergeRetries = %d, expected 3", cfg.MergeRetries)
	}
}

func TestNewMalformedNumericValues(t *testing.T) {
	// A malformed TTL must not collapse to zero, which would store quiz
	// sessions without any expiry.
	t.Setenv("QUIZ_SESSION_TTL_SECONDS", "one hour")
	t.Setenv("WEAK_AREA_THRESHOLD", "high")
	t.Setenv("DEFAULT_QUIZ_SIZE", "")
	t.Setenv("PROGRESS_MERGE_RETRIES", "3.5")

	cfg := New()
	if cfg.SessionTTL != 3600*time.Second {
		t.Errorf("SessionTTL = %v, expected the 1h default", cfg.SessionTTL)
	}
	if cfg.WeakAreaThreshold != 0.7 {
		t.Errorf("WeakAreaThreshold = %v, expected the 0.7 default", cfg.WeakAreaThreshold)
	}
	if cfg.DefaultQuizSize != 5 {
		t.Errorf("DefaultQuizSize = %d, expected the default 5", cfg.DefaultQuizSize)
	}
	if cfg.MergeRetries != 3 {
		t.Errorf("MergeRetries = %d, expected the default 3", cfg.MergeRetries)
	}
}

func TestNewReadsOverrides(t *testing.T) {
	t.Setenv("QUIZ_SESSION_TTL_SECONDS", "60")
	t.Setenv("DEFAULT_QUIZ_SIZE", "10")

	cfg := New()
	if cfg.SessionTTL != 60*time.Second {
		t.Errorf("SessionTTL = %v, expected 60s", cfg.SessionTTL)
	}
	if cfg.DefaultQuizSize != 10 {
		t.Errorf("DefaultQuizSize = %d, expected 10", cfg.DefaultQuizSize)
	}
}
