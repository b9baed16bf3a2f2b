//go:build !windows

package debug

import "errors"

var errNoRSS = errors.New("resident set readout not implemented on this platform")

func residentSetSize() (uint64, error) { return 0, errNoRSS }
