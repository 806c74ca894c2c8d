package eod

import (
	"path/filepath"
	"time"
)

var ist = time.FixedZone("IST", 19800)

func istNow() time.Time {
	return time.Now().In(ist)
}

func eodCSVPath(dir string, t time.Time) string {
	return filepath.Join(dir, "eod", t.In(ist).Format("2006-01-02")+".csv")
}

// marketCloseCutoff is when the day's summary becomes due.
func marketCloseCutoff(t time.Time) time.Time {
	t = t.In(ist)
	return time.Date(t.Year(), t.Month(), t.Day(), 15, 40, 0, 0, ist)
}
