package snowbench

import (
	"fmt"
	"strconv"
	"time"
)

// Epoch is the millisecond Unix timestamp the snowflake timestamp field
// counts from (2015-01-01T00:00:00Z).
const Epoch = 1420070400000

// Snowflake is a 64-bit chat-platform object ID: milliseconds since Epoch
// in the high 42 bits, then 5 bits of worker ID, 5 bits of process ID and
// a 12-bit per-process increment. The wire form is a decimal string, since
// JSON numbers cannot carry the full 64-bit range.
type Snowflake uint64

// ParseSnowflake converts the decimal string form of an ID. The string
// must be non-empty, digits only, and fit in 64 bits.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing snowflake %q: %w", s, err)
	}
	return Snowflake(v), nil
}

// String returns the decimal wire form of the ID.
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Time returns the creation time encoded in the ID.
func (s Snowflake) Time() time.Time {
	return time.UnixMilli(int64(s>>22) + Epoch).UTC()
}

// WorkerID returns the worker field (0-31).
func (s Snowflake) WorkerID() uint8 {
	return uint8(s >> 17 & 0x1f)
}

// ProcessID returns the process field (0-31).
func (s Snowflake) ProcessID() uint8 {
	return uint8(s >> 12 & 0x1f)
}

// Increment returns the per-process sequence field (0-4095).
func (s Snowflake) Increment() uint16 {
	return uint16(s & 0xfff)
}

// IsValid reports whether the ID is non-zero.
func (s Snowflake) IsValid() bool {
	return s != 0
}
