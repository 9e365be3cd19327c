package models

import (
	"errors"
	"fmt"
)

// ErrUpstreamData marks catalog, profile or geo lookups that failed or timed
// out. The search boundary absorbs it; individual pipeline stages fail open.
var ErrUpstreamData = errors.New("upstream data unavailable")

// ConfigurationError reports a malformed filter value (unknown sort key,
// inverted price range, out-of-range rating). It is never surfaced to callers
// of Search: the boundary logs it and returns an empty, well-formed result.
type ConfigurationError struct {
	Field  string
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid filter %s: %s", e.Field, e.Detail)
}
