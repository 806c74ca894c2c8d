package eod

import (
	"context"
	"time"

	"equity-desk/internal/interfaces"
	"equity-desk/internal/tradelog"
)

var defaultSummarizer interfaces.EodSummarizer = NewSummarizer("")

func SetDefaultSummarizer(summarizer interfaces.EodSummarizer) {
	defaultSummarizer = summarizer
}

// NewSummarizer reads journals from dir, or tradelog.LogDir() when empty.
func NewSummarizer(dir string) interfaces.EodSummarizer {
	if dir == "" {
		dir = tradelog.LogDir()
	}
	return &eodSummarizer{dir: dir, now: istNow}
}

func SummarizeDay(ctx context.Context, t time.Time) (string, error) {
	return defaultSummarizer.SummarizeDay(ctx, t)
}

func SummarizeToday(ctx context.Context) (string, error) {
	return defaultSummarizer.SummarizeToday(ctx)
}

func ShouldRunNow() (bool, string) {
	return defaultSummarizer.ShouldRunNow()
}
