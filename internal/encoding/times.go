package encoding

import (
	"math"
	"time"
)

// Timestamps are stored as integer milliseconds relative to the epoch,
// 2016-01-01T00:00:00Z, with one opcode per sign of the delta.
var epochMillis = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

func timestampDelta(t time.Time) int64 {
	return t.UnixMilli() - epochMillis
}

func timestampFromDelta(delta int64) time.Time {
	return time.UnixMilli(epochMillis + delta).UTC()
}

// maxTimestampDelta bounds positive deltas so the millisecond count
// stays within int64.
var maxTimestampDelta = uint64(math.MaxInt64 - epochMillis)
