package ui

import (
	"errors"
	"fmt"

	"github.com/gsm-tools/gsm-tui/internal/gcp"
)

// Version lifecycle guards. These are checked locally before any network
// call and operate only on the typed state decoded at load time.

// guardValueAccess reports whether a version's payload may be fetched.
// The verb ("access", "copy") only shapes the message.
func guardValueAccess(state gcp.VersionState, verb string) error {
	switch state {
	case gcp.VersionStateDestroyed:
		return fmt.Errorf("cannot %s destroyed version - data is permanently gone", verb)
	case gcp.VersionStateDisabled:
		return errors.New("version is disabled - press 'e' to enable it first")
	default:
		// Enabled and unknown states are allowed; the remote has the
		// final say on unknown.
		return nil
	}
}

// guardEnable reports whether a version may be enabled.
func guardEnable(state gcp.VersionState) error {
	if state != gcp.VersionStateDisabled {
		return errors.New("can only enable disabled versions")
	}
	return nil
}

// guardDisable reports whether a version may be disabled.
func guardDisable(state gcp.VersionState) error {
	if state != gcp.VersionStateEnabled {
		return errors.New("can only disable enabled versions")
	}
	return nil
}
