package library

import (
	"time"

	"github.com/google/uuid"
)

// IDSource produces unique record identifiers. It is injectable so tests can
// supply deterministic ids; ids must never repeat within a session.
type IDSource interface {
	NewID() string
}

// Clock abstracts time.Now for issue and return timestamps.
type Clock interface {
	Now() time.Time
}

type uuidSource struct{}

func (uuidSource) NewID() string { return uuid.NewString() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
