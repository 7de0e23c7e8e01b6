// Package datekey canonicalizes points in time to calendar-day keys. All of
// the history indexing and statistics windows are keyed by these values.
package datekey

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Key is a calendar day in the host's local timezone, formatted YYYY-MM-DD.
// Two times on the same local calendar day always map to the same Key, no
// matter their time-of-day component.
type Key string

// For returns the Key for the local calendar day containing t.
func For(t time.Time) Key {
	return Key(t.Local().Format(layoutISO))
}

// Today returns the Key for the current local calendar day.
func Today() Key {
	return For(time.Now())
}

// Parse validates a YYYY-MM-DD string and returns it as a Key.
func Parse(s string) (Key, error) {
	t, err := time.ParseInLocation(layoutISO, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("datekey: parse %q: %w", s, err)
	}
	return For(t), nil
}

// Time returns midnight local time for the key. Zero time for invalid keys.
func (k Key) Time() time.Time {
	t, err := time.ParseInLocation(layoutISO, string(k), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the key n calendar days after k (n may be negative).
func (k Key) AddDays(n int) Key {
	return For(k.Time().AddDate(0, 0, n))
}

// After reports whether k is a strictly later calendar day than other. The
// keys sort lexically because of the fixed-width layout.
func (k Key) After(other Key) bool {
	return string(k) > string(other)
}

// Before reports whether k is a strictly earlier calendar day than other.
func (k Key) Before(other Key) bool {
	return string(k) < string(other)
}

func (k Key) String() string {
	return string(k)
}

// Window returns n consecutive keys ending with end inclusive, oldest first.
func Window(end Key, n int) []Key {
	if n <= 0 {
		return nil
	}
	keys := make([]Key, n)
	for i := 0; i < n; i++ {
		keys[i] = end.AddDays(i - n + 1)
	}
	return keys
}
