// Package audit writes a JSON-lines trail of secret operations. Every
// reveal, copy, and mutation of a secret is recorded with the acting user
// and the outcome, so access to sensitive payloads stays reviewable.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// EventType identifies the kind of operation being recorded.
type EventType string

const (
	EventSessionStart   EventType = "SESSION_START"
	EventSecretList     EventType = "SECRET_LIST"
	EventSecretReveal   EventType = "SECRET_REVEAL"
	EventSecretCopy     EventType = "SECRET_COPY"
	EventSecretCreate   EventType = "SECRET_CREATE"
	EventSecretDelete   EventType = "SECRET_DELETE"
	EventVersionAdd     EventType = "VERSION_ADD"
	EventVersionEnable  EventType = "VERSION_ENABLE"
	EventVersionDisable EventType = "VERSION_DISABLE"
	EventVersionDestroy EventType = "VERSION_DESTROY"
	EventProjectSwitch  EventType = "PROJECT_SWITCH"
)

// EventResult is the outcome of an operation.
type EventResult string

const (
	ResultSuccess EventResult = "SUCCESS"
	ResultFailure EventResult = "FAILURE"
)

// Event is a single audit log entry.
type Event struct {
	Timestamp  string      `json:"timestamp"`
	EventType  EventType   `json:"event_type"`
	Result     EventResult `json:"result"`
	User       string      `json:"user,omitempty"`
	ProjectID  string      `json:"project_id,omitempty"`
	SecretName string      `json:"secret_name,omitempty"`
	Version    string      `json:"version,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Logger appends audit events to a log file. A nil Logger is valid and
// discards everything, so callers never need to guard their log sites.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	user    string
}

// DefaultLogPath returns the audit log location under the OS config dir.
func DefaultLogPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	logDir := filepath.Join(configDir, "gsm-tui", "logs")
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return "", err
	}

	return filepath.Join(logDir, "audit.log"), nil
}

// NewLogger opens (or creates) the audit log at path. An empty path uses
// the default location. A disabled logger is returned when enabled is false.
func NewLogger(enabled bool, path string) (*Logger, error) {
	logger := &Logger{enabled: enabled}
	if !enabled {
		return logger, nil
	}

	if path == "" {
		var err error
		path, err = DefaultLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve audit log path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	logger.file = file

	return logger, nil
}

// SetUser records the authenticated user attributed to later events.
func (l *Logger) SetUser(user string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.user = user
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Log writes a single event. Write failures are swallowed; audit logging
// must never take the UI down.
func (l *Logger) Log(event Event) {
	if l == nil || !l.enabled || l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if event.User == "" {
		event.User = l.user
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	_, _ = l.file.Write(append(data, '\n'))
}

// Op records the outcome of a secret operation in one call.
func (l *Logger) Op(eventType EventType, projectID, secretName, version string, err error) {
	event := Event{
		EventType:  eventType,
		Result:     ResultSuccess,
		ProjectID:  projectID,
		SecretName: secretName,
		Version:    version,
	}
	if err != nil {
		event.Result = ResultFailure
		event.Error = err.Error()
	}
	l.Log(event)
}
