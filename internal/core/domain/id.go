package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseID turns a raw identifier taken from a path or a body into the
// identifier type used everywhere past the transport layer.
func ParseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: empty", ErrInvalidID)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
