package gcp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"os/user"

	"golang.org/x/oauth2/google"
)

// resolveUserEmail attempts to resolve the email behind the active
// Application Default Credentials, falling back to the local username.
// The result is used only for audit attribution.
func resolveUserEmail(ctx context.Context) string {
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return localUser()
	}

	token, err := creds.TokenSource.Token()
	if err != nil {
		return localUser()
	}

	resp, err := http.Get("https://oauth2.googleapis.com/tokeninfo?access_token=" + token.AccessToken)
	if err != nil {
		return localUser()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return localUser()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return localUser()
	}

	var tokenInfo struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &tokenInfo); err != nil {
		return localUser()
	}
	if tokenInfo.Email != "" {
		return tokenInfo.Email
	}

	return localUser()
}

func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}
