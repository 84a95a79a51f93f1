package dashclient

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
)

// KeySeparator delimits serialized key segments.
const KeySeparator = "::"

// maxSegmentLen caps a serialized segment before it is replaced by its
// xxhash digest, keeping keys bounded for filter-heavy segments.
const maxSegmentLen = 64

// Key identifies a cacheable resource as an ordered sequence of segments,
// e.g. K("/api/students") or K("/api/students", 5). Keys compare
// structurally, segment by segment.
type Key []any

// K builds a Key from its segments.
func K(segments ...any) Key {
	return Key(segments)
}

// String serializes the key deterministically.
func (k Key) String() string {
	parts := make([]string, len(k))
	for i, seg := range k {
		parts[i] = serializeSegment(seg)
	}
	return strings.Join(parts, KeySeparator)
}

// Equal reports structural equality.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if serializeSegment(k[i]) != serializeSegment(other[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix matches the leading segments of k.
// K("/api/batches", 5) has prefix K("/api/batches"); K("/api/students")
// does not.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if serializeSegment(prefix[i]) != serializeSegment(k[i]) {
			return false
		}
	}
	return true
}

func serializeSegment(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		s = "nil"
	case string:
		s = t
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		s = fmt.Sprintf("%v", t)
	case fmt.Stringer:
		s = t.String()
	default:
		data, err := sonic.Marshal(v)
		if err != nil {
			s = fmt.Sprintf("%v", v)
		} else {
			s = "json:" + string(data)
		}
	}
	if len(s) > maxSegmentLen {
		return fmt.Sprintf("x:%016x", xxhash.Sum64String(s))
	}
	return s
}
