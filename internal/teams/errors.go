package teams

import (
	"errors"
	"fmt"
)

// UnknownTeamError signals that a team representation has no entry in the
// canonical registry. This should be rare: it means the upstream contract
// changed, not that a single game is malformed.
type UnknownTeamError struct {
	Name       string
	ExternalID int
}

func (e *UnknownTeamError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown team %q", e.Name)
	}
	return fmt.Sprintf("unknown team external id %d", e.ExternalID)
}

// AsUnknownTeamError attempts to unwrap an error into an UnknownTeamError.
func AsUnknownTeamError(err error) (*UnknownTeamError, bool) {
	var utErr *UnknownTeamError
	if errors.As(err, &utErr) {
		return utErr, true
	}
	return nil, false
}
