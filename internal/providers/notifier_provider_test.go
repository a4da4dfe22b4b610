package providers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptd/internal/models"
	"ptd/internal/notify"
)

type recordingLogger struct {
	cacheTestLogger
	lines []string
}

func (r *recordingLogger) Infof(_ TypeEnum, format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestLogNotifier_NotifyDrop(t *testing.T) {
	logger := &recordingLogger{}
	n := NewLogNotifier(logger)

	n.NotifyDrop(&notify.PriceDropNotification{
		Product:  models.TrackedProduct{Title: "Widget", Currency: "$"},
		OldPrice: 100,
		NewPrice: 80,
		Savings:  "20.0",
	})

	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], "Widget")
	assert.Contains(t, logger.lines[0], "$100.00 -> $80.00")
	assert.Contains(t, logger.lines[0], "20.0%")
}

func TestLogNotifier_NotifyIncrease(t *testing.T) {
	logger := &recordingLogger{}
	n := NewLogNotifier(logger)

	n.NotifyIncrease(&notify.PriceIncreaseInfo{
		Product:  models.TrackedProduct{Title: "Widget", Currency: "$"},
		OldPrice: 80,
		NewPrice: 100,
	})

	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], "Price increase")
}

func TestLogNotifier_NotifyReminder(t *testing.T) {
	logger := &recordingLogger{}
	n := NewLogNotifier(logger)

	n.NotifyReminder(&notify.ReminderNotification{ProductCount: 3, Message: "check your products"})

	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], "check your products")
}

func TestLogNotifier_TruncatesLongTitles(t *testing.T) {
	logger := &recordingLogger{}
	n := NewLogNotifier(logger)

	long := strings.Repeat("x", 120)
	n.NotifyDrop(&notify.PriceDropNotification{
		Product: models.TrackedProduct{Title: long, Currency: "$"},
	})

	require.Len(t, logger.lines, 1)
	assert.NotContains(t, logger.lines[0], long)
	assert.Contains(t, logger.lines[0], "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "0123456789...", truncate("0123456789abc", 10))
}
