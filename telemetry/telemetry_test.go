package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fulmenhq/crucible-go/telemetry"
)

func TestNormalizeFillsNoops(t *testing.T) {
	t.Parallel()

	h := telemetry.Normalize(telemetry.Hooks{})
	assert.NotNil(t, h.Logger)
	assert.NotNil(t, h.Metrics)

	assert.NotPanics(t, func() {
		h.Logger.Info("hello", "k", "v")
		h.Metrics.Counter(telemetry.MetricFoundryLookupCount)
		h.Metrics.Histogram(telemetry.MetricPathfinderFindMS, 12.5)
	})
}

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.messages = append(r.messages, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.messages = append(r.messages, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.messages = append(r.messages, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.messages = append(r.messages, "error:"+msg) }

func TestNormalizePreservesProvidedLogger(t *testing.T) {
	t.Parallel()

	rec := &recordingLogger{}
	h := telemetry.Normalize(telemetry.Hooks{Logger: rec})
	h.Logger.Info("hi")

	assert.Equal(t, []string{"info:hi"}, rec.messages)
}
