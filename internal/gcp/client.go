package gcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/iterator"
)

const timeFormat = "2006-01-02 15:04:05"

// Pair is a single key/value entry. Labels and annotations are kept as
// ordered slices so display order is stable across reloads.
type Pair struct {
	Key   string
	Value string
}

// Alias maps a version alias to the version number it points at.
type Alias struct {
	Name    string
	Version int64
}

// ReplicationPolicy describes how a secret's payload is replicated.
type ReplicationPolicy struct {
	UserManaged bool
	Locations   []string
}

func (r ReplicationPolicy) String() string {
	if !r.UserManaged {
		return "Automatic"
	}
	if len(r.Locations) == 0 {
		return "User-managed"
	}
	return fmt.Sprintf("User-managed (%s)", strings.Join(r.Locations, ", "))
}

// RotationPolicy describes a secret's rotation schedule, if configured.
type RotationPolicy struct {
	NextRotation string
	Period       string
}

// SecretInfo is a read-only snapshot of a secret's metadata. Snapshots are
// replaced wholesale on reload, never patched.
type SecretInfo struct {
	Name              string // full resource name
	ShortName         string
	CreateTime        string
	Labels            []Pair
	Annotations       []Pair
	Replication       ReplicationPolicy
	Topics            []string
	VersionAliases    []Alias
	Rotation          *RotationPolicy
	VersionDestroyTTL string // empty when not configured
}

// VersionState is the lifecycle state of a secret version, decoded from the
// API response once at load time. All permission checks operate on this typed
// value, never on display text.
type VersionState int

const (
	VersionStateUnknown VersionState = iota
	VersionStateEnabled
	VersionStateDisabled
	VersionStateDestroyed
)

func (s VersionState) String() string {
	switch s {
	case VersionStateEnabled:
		return "enabled"
	case VersionStateDisabled:
		return "disabled"
	case VersionStateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// VersionInfo is a read-only snapshot of a secret version.
type VersionInfo struct {
	Name                 string // full resource name
	Version              string // "1", "2", ... or "latest"
	State                VersionState
	CreateTime           string
	DestroyTime          string // empty unless destroyed
	ScheduledDestroyTime string // empty unless a destroy is scheduled
	HasChecksum          bool
}

// ProjectInfo identifies a GCP project the user can access.
type ProjectInfo struct {
	ProjectID   string
	DisplayName string
}

// Client wraps the Secret Manager API for a single project.
type Client struct {
	client    *secretmanager.Client
	projectID string
	userEmail string
}

// NewClient creates a Secret Manager client for the given project using
// Application Default Credentials. Construction fails when no usable
// credentials are available.
func NewClient(ctx context.Context, projectID string) (*Client, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create secretmanager client: %w", err)
	}

	return &Client{
		client:    client,
		projectID: projectID,
		userEmail: resolveUserEmail(ctx),
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// ProjectID returns the project this client is bound to.
func (c *Client) ProjectID() string {
	return c.projectID
}

// UserEmail returns the authenticated user email, for audit attribution.
func (c *Client) UserEmail() string {
	return c.userEmail
}

func (c *Client) parent() string {
	return fmt.Sprintf("projects/%s", c.projectID)
}

func (c *Client) secretPath(secretName string) string {
	return fmt.Sprintf("projects/%s/secrets/%s", c.projectID, secretName)
}

func (c *Client) versionPath(secretName, version string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", c.projectID, secretName, version)
}

// ListSecrets lists all secrets in the project.
func (c *Client) ListSecrets(ctx context.Context) ([]SecretInfo, error) {
	req := &secretmanagerpb.ListSecretsRequest{
		Parent: c.parent(),
	}

	var secrets []SecretInfo
	it := c.client.ListSecrets(ctx, req)
	for {
		resp, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list secrets: %w", err)
		}
		secrets = append(secrets, secretToInfo(resp))
	}

	return secrets, nil
}

// GetSecret retrieves metadata for a single secret.
func (c *Client) GetSecret(ctx context.Context, secretName string) (*SecretInfo, error) {
	resp, err := c.client.GetSecret(ctx, &secretmanagerpb.GetSecretRequest{
		Name: c.secretPath(secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret: %w", err)
	}

	info := secretToInfo(resp)
	return &info, nil
}

// CreateSecret creates a new secret with automatic replication and no versions.
func (c *Client) CreateSecret(ctx context.Context, secretName string) (*SecretInfo, error) {
	req := &secretmanagerpb.CreateSecretRequest{
		Parent:   c.parent(),
		SecretId: secretName,
		Secret: &secretmanagerpb.Secret{
			Replication: &secretmanagerpb.Replication{
				Replication: &secretmanagerpb.Replication_Automatic_{
					Automatic: &secretmanagerpb.Replication_Automatic{},
				},
			},
		},
	}

	resp, err := c.client.CreateSecret(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret: %w", err)
	}

	info := secretToInfo(resp)
	return &info, nil
}

// DeleteSecret deletes a secret and all of its versions. Irreversible.
func (c *Client) DeleteSecret(ctx context.Context, secretName string) error {
	err := c.client.DeleteSecret(ctx, &secretmanagerpb.DeleteSecretRequest{
		Name: c.secretPath(secretName),
	})
	if err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}
	return nil
}

// ListVersions lists all versions of a secret, newest first per the API.
func (c *Client) ListVersions(ctx context.Context, secretName string) ([]VersionInfo, error) {
	req := &secretmanagerpb.ListSecretVersionsRequest{
		Parent: c.secretPath(secretName),
	}

	var versions []VersionInfo
	it := c.client.ListSecretVersions(ctx, req)
	for {
		resp, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list versions: %w", err)
		}
		versions = append(versions, versionToInfo(resp))
	}

	return versions, nil
}

// AccessVersion retrieves the payload of a secret version.
func (c *Client) AccessVersion(ctx context.Context, secretName, version string) (string, error) {
	resp, err := c.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: c.versionPath(secretName, version),
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret version: %w", err)
	}
	return string(resp.Payload.Data), nil
}

// AddVersion adds a new version with the given payload to an existing secret.
func (c *Client) AddVersion(ctx context.Context, secretName, value string) (*VersionInfo, error) {
	req := &secretmanagerpb.AddSecretVersionRequest{
		Parent: c.secretPath(secretName),
		Payload: &secretmanagerpb.SecretPayload{
			Data: []byte(value),
		},
	}

	resp, err := c.client.AddSecretVersion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add secret version: %w", err)
	}

	info := versionToInfo(resp)
	return &info, nil
}

// EnableVersion enables a disabled secret version.
func (c *Client) EnableVersion(ctx context.Context, secretName, version string) (*VersionInfo, error) {
	resp, err := c.client.EnableSecretVersion(ctx, &secretmanagerpb.EnableSecretVersionRequest{
		Name: c.versionPath(secretName, version),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enable version: %w", err)
	}

	info := versionToInfo(resp)
	return &info, nil
}

// DisableVersion disables an enabled secret version.
func (c *Client) DisableVersion(ctx context.Context, secretName, version string) (*VersionInfo, error) {
	resp, err := c.client.DisableSecretVersion(ctx, &secretmanagerpb.DisableSecretVersionRequest{
		Name: c.versionPath(secretName, version),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to disable version: %w", err)
	}

	info := versionToInfo(resp)
	return &info, nil
}

// DestroyVersion permanently destroys a secret version's payload.
// Irreversible. The remote accepts destroying an already-destroyed version.
func (c *Client) DestroyVersion(ctx context.Context, secretName, version string) (*VersionInfo, error) {
	resp, err := c.client.DestroySecretVersion(ctx, &secretmanagerpb.DestroySecretVersionRequest{
		Name: c.versionPath(secretName, version),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to destroy version: %w", err)
	}

	info := versionToInfo(resp)
	return &info, nil
}

// --- Decoding helpers ---

// shortName extracts the last path segment of a resource name.
func shortName(resource string) string {
	parts := strings.Split(resource, "/")
	return parts[len(parts)-1]
}

// sortedPairs converts a map to a slice ordered by key.
func sortedPairs(m map[string]string) []Pair {
	if len(m) == 0 {
		return nil
	}
	pairs := make([]Pair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

func secretToInfo(s *secretmanagerpb.Secret) SecretInfo {
	info := SecretInfo{
		Name:        s.Name,
		ShortName:   shortName(s.Name),
		Labels:      sortedPairs(s.Labels),
		Annotations: sortedPairs(s.Annotations),
	}

	if s.CreateTime != nil {
		info.CreateTime = s.CreateTime.AsTime().Format(timeFormat)
	}

	if s.Replication.GetUserManaged() != nil {
		info.Replication.UserManaged = true
		for _, replica := range s.Replication.GetUserManaged().Replicas {
			info.Replication.Locations = append(info.Replication.Locations, replica.Location)
		}
	}

	for _, topic := range s.Topics {
		info.Topics = append(info.Topics, shortName(topic.Name))
	}

	if len(s.VersionAliases) > 0 {
		for alias, version := range s.VersionAliases {
			info.VersionAliases = append(info.VersionAliases, Alias{Name: alias, Version: version})
		}
		sort.Slice(info.VersionAliases, func(i, j int) bool {
			return info.VersionAliases[i].Name < info.VersionAliases[j].Name
		})
	}

	if s.Rotation != nil {
		rotation := &RotationPolicy{}
		if s.Rotation.NextRotationTime != nil {
			rotation.NextRotation = s.Rotation.NextRotationTime.AsTime().Format(timeFormat)
		}
		if s.Rotation.RotationPeriod != nil {
			rotation.Period = s.Rotation.RotationPeriod.AsDuration().String()
		}
		info.Rotation = rotation
	}

	if s.VersionDestroyTtl != nil {
		info.VersionDestroyTTL = s.VersionDestroyTtl.AsDuration().String()
	}

	return info
}

// decodeVersionState maps the proto state enum to the typed VersionState.
// Unrecognized states decode as unknown rather than failing the load.
func decodeVersionState(state secretmanagerpb.SecretVersion_State) VersionState {
	switch state {
	case secretmanagerpb.SecretVersion_ENABLED:
		return VersionStateEnabled
	case secretmanagerpb.SecretVersion_DISABLED:
		return VersionStateDisabled
	case secretmanagerpb.SecretVersion_DESTROYED:
		return VersionStateDestroyed
	default:
		return VersionStateUnknown
	}
}

func versionToInfo(v *secretmanagerpb.SecretVersion) VersionInfo {
	info := VersionInfo{
		Name:        v.Name,
		Version:     shortName(v.Name),
		State:       decodeVersionState(v.State),
		HasChecksum: v.ClientSpecifiedPayloadChecksum,
	}

	if v.CreateTime != nil {
		info.CreateTime = v.CreateTime.AsTime().Format(timeFormat)
	}
	if v.DestroyTime != nil {
		info.DestroyTime = v.DestroyTime.AsTime().Format(timeFormat)
	}
	if v.ScheduledDestroyTime != nil {
		info.ScheduledDestroyTime = v.ScheduledDestroyTime.AsTime().Format(timeFormat)
	}

	return info
}
