// Package archive writes committed events to hourly zstd-compressed JSONL
// files.
package archive

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
	"github.com/klauspost/compress/zstd"
)

const (
	filePrefix = "events"
	fileSuffix = ".jsonl.zst"
	hourLayout = "2006-01-02-15"
)

// Record is the archived form of an event.
type Record struct {
	ID         string           `json:"id,omitempty"`
	Kind       domain.EventKind `json:"kind"`
	TokenID    domain.TokenID   `json:"token_id,omitempty"`
	AssetID    domain.AssetID   `json:"asset_id"`
	ReplacesID *domain.AssetID  `json:"replaces_id,omitempty"`
	Priorities []domain.AssetID `json:"priorities,omitempty"`
	At         domain.Timestamp `json:"at"`
}

func recordFor(event domain.Event) Record {
	return Record{
		ID:         event.ID,
		Kind:       event.Kind,
		TokenID:    event.TokenID,
		AssetID:    event.AssetID,
		ReplacesID: event.ReplacesID,
		Priorities: event.Priorities,
		At:         event.At,
	}
}

type Writer struct {
	baseDir string
	clock   ports.Clock
	logger  *slog.Logger

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

var _ ports.Notifier = (*Writer)(nil)

func NewWriter(baseDir string, clock ports.Clock) *Writer {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Writer{
		baseDir: baseDir,
		clock:   clock,
		logger:  slog.New(slog.DiscardHandler),
	}
}

func (w *Writer) WithLogger(logger *slog.Logger) *Writer {
	if logger != nil {
		w.logger = logger
	}
	return w
}

// Notify archives the event. Failures are logged and do not reach the
// caller.
func (w *Writer) Notify(ctx context.Context, event domain.Event) {
	if err := w.Write(recordFor(event)); err != nil {
		w.logger.ErrorContext(ctx, "archive event",
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)
	}
}

func (w *Writer) Write(record Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	hour := w.clock.Now().UTC().Format(hourLayout)
	if hour != w.curHour {
		if err := w.rotateLocked(hour); err != nil {
			return err
		}
	}

	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode archive record: %w", err)
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	if err := w.w.Flush(); err != nil {
		return err
	}
	return w.enc.Flush()
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *Writer) rotateLocked(hour string) error {
	if err := w.closeLocked(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.baseDir, 0o700); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}
	f, err := os.OpenFile(w.pathForHour(hour), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open archive file: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("create archive encoder: %w", err)
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 32*1024)
	w.curHour = hour
	return nil
}

func (w *Writer) closeLocked() error {
	var errs []error
	if w.w != nil {
		errs = append(errs, w.w.Flush())
	}
	if w.enc != nil {
		errs = append(errs, w.enc.Close())
		w.enc = nil
	}
	if w.f != nil {
		errs = append(errs, w.f.Close())
		w.f = nil
	}
	w.w = nil
	w.curHour = ""
	return errors.Join(errs...)
}

func (w *Writer) pathForHour(hour string) string {
	return filepath.Join(w.baseDir, fmt.Sprintf("%s-%s%s", filePrefix, hour, fileSuffix))
}

// Files lists archive files under dir, oldest first.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list archive directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix+"-") || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

// ReadFile decodes every record in one archive file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive file: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("create archive decoder: %w", err)
	}
	defer dec.Close()

	return decode(dec)
}

func decode(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("decode archive record: %w", err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read archive file: %w", err)
	}
	return records, nil
}
