// Package auth wraps the interactive gcloud login flow used to provision
// Application Default Credentials when the API reports an auth failure.
package auth

import (
	"errors"
	"os/exec"
)

// ErrGcloudNotFound is returned when the gcloud CLI is not installed.
var ErrGcloudNotFound = errors.New("gcloud CLI not found in PATH")

// LoginCommand builds the interactive command that provisions Application
// Default Credentials. The command takes over the terminal until the
// browser-based flow completes; the caller is responsible for suspending
// and restoring the UI around it.
func LoginCommand() (*exec.Cmd, error) {
	path, err := exec.LookPath("gcloud")
	if err != nil {
		return nil, ErrGcloudNotFound
	}
	return exec.Command(path, "auth", "application-default", "login"), nil
}
