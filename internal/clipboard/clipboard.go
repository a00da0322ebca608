// Package clipboard is a thin wrapper over the system clipboard. Clipboard
// access is best-effort: on headless systems initialization fails and every
// write reports an error the caller can surface as a status message.
package clipboard

import (
	"errors"

	"golang.design/x/clipboard"
)

// ErrUnavailable is returned when the system clipboard cannot be reached.
var ErrUnavailable = errors.New("clipboard not available")

var initialized bool

// Init initializes the clipboard. Safe to call multiple times.
func Init() error {
	if initialized {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		return ErrUnavailable
	}
	initialized = true
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	if !initialized {
		if err := Init(); err != nil {
			return err
		}
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// Clear overwrites the clipboard with an empty string.
func Clear() error {
	return WriteText("")
}
