package logging_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/tagtree/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			if logger.GetLevel() != testCase.expected {
				t.Errorf("level %q: expected %v, got %v",
					testCase.level, testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestFromContext_Default(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) == nil {
		t.Error("expected default logger for bare context")
	}
	//nolint:staticcheck // nil context is the case under test
	if logging.FromContext(nil) == nil {
		t.Error("expected default logger for nil context")
	}
}

func TestWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)

	if logging.FromContext(ctx) != logger {
		t.Error("expected the attached logger back from context")
	}
}
