//go:build !windows

package window

// ListTitles returns no entries on non-Windows platforms. Manual title
// entry through the configuration file still works.
func ListTitles() ([]string, error) { return nil, nil }
