package tradelog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var mu sync.Mutex

var ist = time.FixedZone("IST", 19800)

type Entry struct {
	Time, Symbol, Side, OrderID, Reason string
	Qty                                 int
	Price                               decimal.Decimal
	Extra                               map[string]any `json:"extra,omitempty"`
}

// LogDir is TRADER_LOG_DIR or "logs".
func LogDir() string {
	if v := os.Getenv("TRADER_LOG_DIR"); v != "" {
		return v
	}
	return "logs"
}

// DailyFilepath is the journal file holding fills for the IST day of t.
func DailyFilepath(dir string, t time.Time) string {
	d := t.In(ist).Format("2006-01-02")
	return filepath.Join(dir, d+".txt")
}

// FileJournal appends one JSON object per fill to a daily file.
type FileJournal struct {
	dir string
	now func() time.Time
}

// NewFileJournal writes under dir, or LogDir() when dir is empty.
func NewFileJournal(dir string) *FileJournal {
	if dir == "" {
		dir = LogDir()
	}
	return &FileJournal{dir: dir, now: time.Now}
}

func (j *FileJournal) Dir() string { return j.dir }

func (j *FileJournal) Record(_ context.Context, e Entry) error {
	mu.Lock()
	defer mu.Unlock()
	now := j.now().In(ist)
	e.Time = now.Format("2006-01-02 15:04:05")
	p := DailyFilepath(j.dir, now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f, string(b))
	return err
}

type recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Multi fans a fill out to several journals and joins their errors.
type Multi []recorder

func (m Multi) Record(ctx context.Context, e Entry) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CompressOlder gzips journal files under dir older than retentionDays.
func CompressOlder(dir string, retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(p) != ".txt" {
			return nil
		}
		info, er := d.Info()
		if er != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		gz := p + ".gz"
		// already compressed on an earlier run
		if _, e2 := os.Stat(gz); e2 == nil {
			_ = os.Remove(p)
			return nil
		}
		if err := gzipFile(p, gz); err == nil {
			_ = os.Remove(p)
		}
		return nil
	})
}

func gzipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	gw := gzip.NewWriter(out)
	_, copyErr := io.Copy(gw, in)
	closeErr := gw.Close()
	fileErr := out.Close()
	if err := errors.Join(copyErr, closeErr, fileErr); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}
