package domain

import "time"

// Timestamp is milliseconds since the Unix epoch. Zero means never.
type Timestamp uint64

func TimestampFrom(t time.Time) Timestamp {
	if t.IsZero() {
		return 0
	}
	ms := t.UnixMilli()
	if ms <= 0 {
		return 0
	}
	return Timestamp(ms)
}

func (ts Timestamp) IsZero() bool {
	return ts == 0
}

func (ts Timestamp) Time() time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(ts)).UTC()
}

// Since returns the milliseconds elapsed from ts to now, or zero when now
// precedes ts.
func (ts Timestamp) Since(now Timestamp) uint64 {
	if now <= ts {
		return 0
	}
	return uint64(now - ts)
}

const (
	FiveMinutesSeconds uint64 = 5 * 60
	OneDaySeconds      uint64 = 24 * 60 * 60
)

// TimeGate is a cooldown keyed on the last time an action ran.
type TimeGate struct {
	ThresholdSeconds uint64
}

var (
	FiveMinuteGate = TimeGate{ThresholdSeconds: FiveMinutesSeconds}
	OneDayGate     = TimeGate{ThresholdSeconds: OneDaySeconds}
)

// HasElapsed reports whether strictly more than thresholdSeconds have
// passed between last and now.
func HasElapsed(thresholdSeconds uint64, last, now Timestamp) bool {
	return last.Since(now) > thresholdSeconds*1000
}

func (g TimeGate) Open(last, now Timestamp) bool {
	return HasElapsed(g.ThresholdSeconds, last, now)
}

// ReadyAt is the first timestamp at which the gate opens after last.
func (g TimeGate) ReadyAt(last Timestamp) Timestamp {
	return last + Timestamp(g.ThresholdSeconds*1000) + 1
}
