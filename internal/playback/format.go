package playback

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned by ParseTime and Seconds for input that is
// not a time.
var ErrInvalidTime = errors.New("invalid time")

// Largest whole seconds and minutes a Duration can hold.
const (
	maxSeconds = math.MaxInt64 / int64(time.Second)
	maxMinutes = math.MaxInt64 / int64(time.Minute)
)

// Seconds converts a number of seconds to a Duration. Magnitudes beyond
// the Duration range saturate; NaN and infinities are ErrInvalidTime.
func Seconds(f float64) (time.Duration, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, fmt.Errorf("%w: %v", ErrInvalidTime, f)
	case f >= maxSeconds:
		return math.MaxInt64, nil
	case f <= -maxSeconds:
		return -math.MaxInt64, nil
	}
	return time.Duration(f * float64(time.Second)), nil
}

// FormatTime renders d as MM:SS. Fractional seconds are truncated and
// minutes are not wrapped into hours.
func FormatTime(d time.Duration) string {
	secs := max(int64(d/time.Second), 0)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// ParseTime reads "MM:SS" or a plain number of seconds.
func ParseTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidTime
	}

	minutes, seconds, hasColon := strings.Cut(s, ":")
	if !hasColon {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		return Seconds(f)
	}

	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	sec, err := strconv.Atoi(seconds)
	if err != nil || sec < 0 || sec >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	if int64(m) >= maxMinutes {
		return math.MaxInt64, nil
	}
	return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}
