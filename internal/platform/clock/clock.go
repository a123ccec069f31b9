package clock

import "time"

// Clock abstracts time to keep services deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant. Test helper.
type Fixed struct{ T time.Time }

func (f Fixed) Now() time.Time { return f.T }
