package scoring

import "errors"

// ErrInvalidMetrics signals a malformed metrics bundle. This points at a bug
// in an upstream collaborator and must be loud; an empty candidate list, in
// contrast, is a legitimate non-error result.
var ErrInvalidMetrics = errors.New("invalid metrics bundle")
