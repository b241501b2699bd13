package app

import "github.com/google/uuid"

// newMatchID returns a random identifier used to correlate log lines of one match.
func newMatchID() string { return uuid.NewString() }
