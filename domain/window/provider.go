package window

import "errors"

// Sentinel errors returned by providers and the topmost enforcer. The
// tracker treats every provider error as a miss for that tick; the
// distinction only feeds logs.
var (
	ErrWindowNotFound  = errors.New("target window not found")
	ErrWindowMinimized = errors.New("target window minimized")
	ErrRectQueryFailed = errors.New("window rect query failed")
	ErrTopmostDenied   = errors.New("topmost enforcement denied")
	ErrUnsupported     = errors.New("window tracking not supported on this platform")
)
