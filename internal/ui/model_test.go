package ui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsm-tools/gsm-tui/internal/clipboard"
	"github.com/gsm-tools/gsm-tui/internal/config"
	"github.com/gsm-tools/gsm-tui/internal/gcp"
)

// fakeClient records calls and serves canned data.
type fakeClient struct {
	secrets  []gcp.SecretInfo
	versions map[string][]gcp.VersionInfo
	value    string

	listSecretsErr error
	accessErr      error
	createErr      error
	deleteErr      error

	created   []string
	deleted   []string
	added     []string
	enabled   []string
	disabled  []string
	destroyed []string
	closed    bool
}

func (f *fakeClient) ListSecrets(ctx context.Context) ([]gcp.SecretInfo, error) {
	return f.secrets, f.listSecretsErr
}

func (f *fakeClient) CreateSecret(ctx context.Context, secretName string) (*gcp.SecretInfo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, secretName)
	return &gcp.SecretInfo{ShortName: secretName}, nil
}

func (f *fakeClient) DeleteSecret(ctx context.Context, secretName string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, secretName)
	return nil
}

func (f *fakeClient) ListVersions(ctx context.Context, secretName string) ([]gcp.VersionInfo, error) {
	return f.versions[secretName], nil
}

func (f *fakeClient) AccessVersion(ctx context.Context, secretName, version string) (string, error) {
	if f.accessErr != nil {
		return "", f.accessErr
	}
	return f.value, nil
}

func (f *fakeClient) AddVersion(ctx context.Context, secretName, value string) (*gcp.VersionInfo, error) {
	f.added = append(f.added, fmt.Sprintf("%s=%s", secretName, value))
	return &gcp.VersionInfo{Version: "2", State: gcp.VersionStateEnabled}, nil
}

func (f *fakeClient) EnableVersion(ctx context.Context, secretName, version string) (*gcp.VersionInfo, error) {
	f.enabled = append(f.enabled, version)
	return &gcp.VersionInfo{Version: version, State: gcp.VersionStateEnabled}, nil
}

func (f *fakeClient) DisableVersion(ctx context.Context, secretName, version string) (*gcp.VersionInfo, error) {
	f.disabled = append(f.disabled, version)
	return &gcp.VersionInfo{Version: version, State: gcp.VersionStateDisabled}, nil
}

func (f *fakeClient) DestroyVersion(ctx context.Context, secretName, version string) (*gcp.VersionInfo, error) {
	f.destroyed = append(f.destroyed, version)
	return &gcp.VersionInfo{Version: version, State: gcp.VersionStateDestroyed}, nil
}

func (f *fakeClient) UserEmail() string { return "tester@example.com" }

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func newTestModel(t *testing.T, fc *fakeClient) Model {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.DefaultConfig()
	cfg.Audit.Enabled = false

	m := NewModel(cfg, "test-project")
	m.newClient = func(context.Context, string) (SecretClient, error) { return fc, nil }
	m.listProjects = func(context.Context) ([]gcp.ProjectInfo, error) { return nil, nil }
	m.copyToClipboard = func(string) error { return nil }
	m.client = fc
	m.loading = false
	return m
}

func newDetailModel(t *testing.T, fc *fakeClient, versions ...gcp.VersionInfo) Model {
	t.Helper()
	m := newTestModel(t, fc)
	m.view = ViewSecretDetail
	m.currentSecret = &gcp.SecretInfo{ShortName: "db-password"}
	m.versions.SetItems(versions)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// --- Startup ---

func TestNewModelWithProjectStartsOnSecretsList(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.DefaultConfig()
	cfg.Audit.Enabled = false

	m := NewModel(cfg, "my-project")

	assert.Equal(t, ViewSecretsList, m.view)
	assert.True(t, m.loading)
}

func TestNewModelWithoutProjectStartsOnProjectSelector(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.DefaultConfig()
	cfg.Audit.Enabled = false

	m := NewModel(cfg, "")

	assert.Equal(t, ViewProjectSelector, m.view)
}

// --- Loading and escalation ---

func TestSecretsLoadedPopulatesList(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	m, _ = update(t, m, secretsLoadedMsg{secrets: []gcp.SecretInfo{
		{ShortName: "a"}, {ShortName: "b"},
	}})

	assert.False(t, m.loading)
	assert.Equal(t, 2, m.secrets.Len())
	assert.Equal(t, 0, m.secrets.SelectedIndex())
	assert.Equal(t, "Loaded 2 secrets", m.statusMsg)
	assert.False(t, m.statusErr)
}

func TestSecretsLoadFailureEscalatesToAuthRequired(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	m, _ = update(t, m, secretsLoadedMsg{err: errors.New("permission denied")})

	assert.Equal(t, ViewAuthRequired, m.view)
	assert.True(t, m.statusErr)
	assert.Equal(t, "Auth error: permission denied", m.statusMsg)
}

func TestClientInitFailureEscalatesToAuthRequired(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	m, _ = update(t, m, clientReadyMsg{err: errors.New("could not find default credentials")})

	assert.Equal(t, ViewAuthRequired, m.view)
	assert.True(t, m.statusErr)
}

func TestProjectsLoadFailureEscalatesToAuthRequired(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.view = ViewProjectSelector

	m, _ = update(t, m, projectsLoadedMsg{err: errors.New("token expired")})

	assert.Equal(t, ViewAuthRequired, m.view)
}

func TestVersionsLoadFailureOnlySetsStatus(t *testing.T) {
	m := newDetailModel(t, &fakeClient{})

	m, _ = update(t, m, versionsLoadedMsg{err: errors.New("boom")})

	assert.Equal(t, ViewSecretDetail, m.view)
	assert.True(t, m.statusErr)
	assert.Equal(t, "Error loading versions: boom", m.statusMsg)
}

func TestLoadingSwallowsAllKeysExceptQuit(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.setLoading("Loading secrets...")

	next, cmd := update(t, m, runeKey('n'))
	assert.Equal(t, ViewSecretsList, next.view)
	assert.Nil(t, cmd)

	_, cmd = update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

// --- Help overlay ---

func TestHelpTogglesAndSwallowsNextKey(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.secrets.SetItems([]gcp.SecretInfo{{ShortName: "a"}})

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.helpVisible)

	// The next key only closes help; it must not start an input session.
	m, _ = update(t, m, runeKey('n'))
	assert.False(t, m.helpVisible)
	assert.Equal(t, ViewSecretsList, m.view)

	m, _ = update(t, m, runeKey('?'))
	m, _ = update(t, m, runeKey('?'))
	assert.False(t, m.helpVisible)
}

// --- Detail view ---

func TestEnterSecretDetailLoadsVersions(t *testing.T) {
	fc := &fakeClient{versions: map[string][]gcp.VersionInfo{
		"a": {{Version: "1", State: gcp.VersionStateEnabled}},
	}}
	m := newTestModel(t, fc)
	m.secrets.SetItems([]gcp.SecretInfo{{ShortName: "a"}})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewSecretDetail, m.view)
	require.NotNil(t, m.currentSecret)
	assert.Equal(t, "a", m.currentSecret.ShortName)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.versions.Len())
	assert.Equal(t, "Loaded 1 versions", m.statusMsg)
}

func TestEnterOnEmptySecretsListIsNoOp(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewSecretsList, m.view)
	assert.Nil(t, cmd)
}

func TestVersionNavigationClearsRevealedValue(t *testing.T) {
	m := newDetailModel(t, &fakeClient{},
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateEnabled},
		gcp.VersionInfo{Version: "2", State: gcp.VersionStateEnabled},
	)
	m.revealedValue = "hunter2"
	m.revealed = true

	m, _ = update(t, m, runeKey('j'))

	assert.Equal(t, 1, m.versions.SelectedIndex())
	assert.False(t, m.revealed)
	assert.Empty(t, m.revealedValue)
}

func TestDetailBackClearsSecretAndVersions(t *testing.T) {
	m := newDetailModel(t, &fakeClient{},
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateEnabled},
	)
	prev := ViewSecretsList
	m.previousView = &prev
	m.revealed = true

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ViewSecretsList, m.view)
	assert.Nil(t, m.currentSecret)
	assert.Equal(t, 0, m.versions.Len())
	assert.False(t, m.revealed)
}

func TestGoBackDefaultsToSecretsList(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.view = ViewSecretDetail
	m.previousView = nil

	m.goBack()

	assert.Equal(t, ViewSecretsList, m.view)
}

func TestGoBackConsumesPreviousView(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.view = ViewProjectSelector
	prev := ViewSecretDetail
	m.previousView = &prev

	m.goBack()

	assert.Equal(t, ViewSecretDetail, m.view)
	assert.Nil(t, m.previousView)
}

// --- Input sessions ---

func TestNewSecretInputSession(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, fc)

	m, _ = update(t, m, runeKey('n'))
	assert.Equal(t, ViewInput, m.view)
	assert.Equal(t, InputNewSecretName, m.inputMode)
	assert.Equal(t, "", m.editor.Value())

	for _, r := range "my-secret" {
		m, _ = update(t, m, runeKey(r))
	}
	assert.Equal(t, "my-secret", m.editor.Value())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewSecretsList, m.view)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)

	m, cmd = update(t, m, cmd())
	assert.Equal(t, []string{"my-secret"}, fc.created)
	assert.Equal(t, "Created secret: my-secret", m.statusMsg)
	// Success triggers a reload of the list.
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)
}

func TestInputSessionStartsClean(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.editor.Insert('x')
	m.editor.Insert('y')

	m, _ = update(t, m, runeKey('n'))

	assert.Equal(t, "", m.editor.Value())
	assert.Equal(t, 0, m.editor.Cursor())
}

func TestEmptyInputAbortsSession(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, fc)

	m, _ = update(t, m, runeKey('n'))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewSecretsList, m.view)
	assert.Equal(t, "Input cannot be empty", m.statusMsg)
	assert.True(t, m.statusErr)
	assert.Nil(t, cmd)
	assert.Empty(t, fc.created)
}

func TestInvalidSecretNameAbortsBeforeNetwork(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, fc)

	m, _ = update(t, m, runeKey('n'))
	for _, r := range "9bad" {
		m, _ = update(t, m, runeKey(r))
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewSecretsList, m.view)
	assert.True(t, m.statusErr)
	assert.Nil(t, cmd)
	assert.Empty(t, fc.created)
}

func TestInputEscCancelsAndClearsBuffer(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	m, _ = update(t, m, runeKey('n'))
	for _, r := range "abc" {
		m, _ = update(t, m, runeKey(r))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ViewSecretsList, m.view)
	assert.Equal(t, "", m.editor.Value())
}

func TestAddVersionInputSession(t *testing.T) {
	fc := &fakeClient{}
	m := newDetailModel(t, fc,
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateEnabled},
	)

	m, _ = update(t, m, runeKey('a'))
	assert.Equal(t, ViewInput, m.view)
	assert.Equal(t, InputNewVersionValue, m.inputMode)

	for _, r := range "s3cret value" {
		if r == ' ' {
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		} else {
			m, _ = update(t, m, runeKey(r))
		}
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewSecretDetail, m.view)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, []string{"db-password=s3cret value"}, fc.added)
	assert.Equal(t, "Added version: 2", m.statusMsg)
}

// --- Confirmation dialogs ---

func TestDeleteConfirmCapturesTargetAtPromptTime(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, fc)
	m.secrets.SetItems([]gcp.SecretInfo{{ShortName: "a"}, {ShortName: "b"}})

	m, _ = update(t, m, runeKey('d'))
	require.Equal(t, ViewConfirm, m.view)
	require.NotNil(t, m.confirm)
	assert.Equal(t, "a", m.confirm.secretName)

	// Even if the selection moves, the captured target is deleted.
	m.secrets.Select(1)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, []string{"a"}, fc.deleted)
	assert.Equal(t, ViewSecretsList, m.view)
	assert.Nil(t, m.previousView)
}

func TestConfirmQuitKeyCancelsDialog(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, fc)
	m.secrets.SetItems([]gcp.SecretInfo{{ShortName: "a"}})

	m, _ = update(t, m, runeKey('d'))
	m, cmd := update(t, m, runeKey('q'))

	assert.Nil(t, cmd)
	assert.Equal(t, ViewSecretsList, m.view)
	assert.Nil(t, m.confirm)
	assert.Empty(t, fc.deleted)
}

func TestDestroyVersionConfirm(t *testing.T) {
	fc := &fakeClient{versions: map[string][]gcp.VersionInfo{"db-password": {}}}
	m := newDetailModel(t, fc,
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateDestroyed},
	)

	// Destroy has no local precondition, even on a destroyed version.
	m, _ = update(t, m, runeKey('d'))
	require.Equal(t, ViewConfirm, m.view)
	require.NotNil(t, m.confirm)
	assert.Equal(t, confirmDestroyVersion, m.confirm.kind)
	assert.Equal(t, "1", m.confirm.version)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, []string{"1"}, fc.destroyed)
	assert.Equal(t, "Destroyed version: 1", m.statusMsg)
}

// --- Value reveal and copy ---

func TestToggleRevealFetchesValue(t *testing.T) {
	fc := &fakeClient{value: "hunter2"}
	m := newDetailModel(t, fc,
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateEnabled},
	)

	m, cmd := update(t, m, runeKey('s'))
	assert.True(t, m.loading)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.True(t, m.revealed)
	assert.Equal(t, "hunter2", m.revealedValue)
	assert.Equal(t, "Press 's' to hide value", m.statusMsg)

	// Second press hides without a network call.
	m, cmd = update(t, m, runeKey('s'))
	assert.False(t, m.revealed)
	assert.Nil(t, cmd)
}

func TestToggleRevealGuardsDisabledVersion(t *testing.T) {
	m := newDetailModel(t, &fakeClient{},
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateDisabled},
	)

	m, cmd := update(t, m, runeKey('s'))

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.True(t, m.statusErr)
	assert.Equal(t, "version is disabled - press 'e' to enable it first", m.statusMsg)
}

func TestCopyGuardsDestroyedVersion(t *testing.T) {
	m := newDetailModel(t, &fakeClient{},
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateDestroyed},
	)

	m, cmd := update(t, m, runeKey('c'))

	assert.Nil(t, cmd)
	assert.Equal(t, "cannot copy destroyed version - data is permanently gone", m.statusMsg)
}

func TestCopySuccess(t *testing.T) {
	fc := &fakeClient{value: "hunter2"}
	m := newDetailModel(t, fc,
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateEnabled},
	)

	var copied string
	m.copyToClipboard = func(v string) error {
		copied = v
		return nil
	}

	m, cmd := update(t, m, runeKey('c'))
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, "hunter2", copied)
	assert.Equal(t, "Copied to clipboard!", m.statusMsg)
}

func TestCopyClipboardUnavailable(t *testing.T) {
	fc := &fakeClient{value: "hunter2"}
	m := newDetailModel(t, fc,
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateEnabled},
	)
	m.copyToClipboard = func(string) error { return clipboard.ErrUnavailable }

	m, cmd := update(t, m, runeKey('c'))
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.True(t, m.statusErr)
	assert.Equal(t, "Clipboard not available", m.statusMsg)
}

// --- Version lifecycle ---

func TestEnableGuardRejectsEnabledVersion(t *testing.T) {
	fc := &fakeClient{}
	m := newDetailModel(t, fc,
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateEnabled},
	)

	m, cmd := update(t, m, runeKey('e'))

	assert.Nil(t, cmd)
	assert.Equal(t, "can only enable disabled versions", m.statusMsg)
	assert.Empty(t, fc.enabled)
}

func TestEnableDisabledVersion(t *testing.T) {
	fc := &fakeClient{versions: map[string][]gcp.VersionInfo{"db-password": {}}}
	m := newDetailModel(t, fc,
		gcp.VersionInfo{Version: "3", State: gcp.VersionStateDisabled},
	)

	m, cmd := update(t, m, runeKey('e'))
	require.NotNil(t, cmd)

	m, reload := update(t, m, cmd())
	assert.Equal(t, []string{"3"}, fc.enabled)
	assert.Equal(t, "Enabled version: 3", m.statusMsg)
	// Success reloads the version list.
	assert.True(t, m.loading)
	assert.NotNil(t, reload)
}

func TestDisableGuardRejectsDisabledVersion(t *testing.T) {
	fc := &fakeClient{}
	m := newDetailModel(t, fc,
		gcp.VersionInfo{Version: "1", State: gcp.VersionStateDisabled},
	)

	m, cmd := update(t, m, runeKey('x'))

	assert.Nil(t, cmd)
	assert.Equal(t, "can only disable enabled versions", m.statusMsg)
	assert.Empty(t, fc.disabled)
}

// --- Project switching ---

func TestSelectSameProjectIsNoOp(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, fc)
	m.view = ViewProjectSelector
	m.projects.SetItems([]gcp.ProjectInfo{{ProjectID: "test-project"}})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Already on this project", m.statusMsg)
	assert.Equal(t, ViewSecretsList, m.view)
	assert.False(t, fc.closed)
	assert.Equal(t, "test-project", m.projectID)
}

func TestSelectDifferentProjectResetsState(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, fc)
	m.view = ViewProjectSelector
	m.secrets.SetItems([]gcp.SecretInfo{{ShortName: "a"}})
	m.currentSecret = &gcp.SecretInfo{ShortName: "a"}
	m.versions.SetItems([]gcp.VersionInfo{{Version: "1"}})
	m.revealed = true
	m.revealedValue = "hunter2"
	m.projects.SetItems([]gcp.ProjectInfo{{ProjectID: "other-project"}})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, fc.closed)
	assert.Nil(t, m.client)
	assert.Equal(t, "other-project", m.projectID)
	assert.Equal(t, 0, m.secrets.Len())
	assert.Equal(t, 0, m.versions.Len())
	assert.Nil(t, m.currentSecret)
	assert.False(t, m.revealed)
	assert.Equal(t, ViewSecretsList, m.view)
	assert.Equal(t, "Switched to project: other-project", m.statusMsg)
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"other-project"}, m.config.RecentProjects)
}

func TestProjectsLoadedSelectsCurrentProject(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.view = ViewProjectSelector

	m, _ = update(t, m, projectsLoadedMsg{projects: []gcp.ProjectInfo{
		{ProjectID: "alpha"},
		{ProjectID: "beta"},
		{ProjectID: "test-project"},
	}})

	assert.Equal(t, 2, m.projects.SelectedIndex())
	assert.Equal(t, "Found 3 projects", m.statusMsg)
}

// --- Authentication ---

func TestAuthSuccessOpensProjectSelector(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.view = ViewAuthRequired

	m, cmd := update(t, m, authFinishedMsg{})

	assert.Equal(t, "Authentication successful!", m.statusMsg)
	assert.False(t, m.statusErr)
	assert.Equal(t, ViewProjectSelector, m.view)
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)
}

func TestAuthFailureStaysOnAuthView(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.view = ViewAuthRequired

	m, _ = update(t, m, authFinishedMsg{err: errors.New("exit status 1")})

	assert.Equal(t, ViewAuthRequired, m.view)
	assert.True(t, m.statusErr)
	assert.Equal(t, "Authentication was cancelled or failed", m.statusMsg)
}

func TestGcloudMissingSurfacesStatus(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.view = ViewAuthRequired
	m.loginCommand = func() (*exec.Cmd, error) {
		return nil, errors.New("gcloud not found in PATH")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, m.statusErr)
	assert.Equal(t, "Failed to run gcloud: gcloud not found in PATH", m.statusMsg)
}
