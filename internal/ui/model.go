package ui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gsm-tools/gsm-tui/internal/audit"
	"github.com/gsm-tools/gsm-tui/internal/auth"
	"github.com/gsm-tools/gsm-tui/internal/clipboard"
	"github.com/gsm-tools/gsm-tui/internal/config"
	"github.com/gsm-tools/gsm-tui/internal/gcp"
	"github.com/gsm-tools/gsm-tui/internal/validation"
)

// View represents the current screen.
type View int

const (
	ViewAuthRequired View = iota
	ViewSecretsList
	ViewSecretDetail
	ViewInput
	ViewConfirm
	ViewProjectSelector
)

// InputMode identifies what a text input session is collecting.
type InputMode int

const (
	InputNewSecretName InputMode = iota
	InputNewVersionValue
)

type confirmKind int

const (
	confirmDeleteSecret confirmKind = iota
	confirmDestroyVersion
)

// confirmAction is a pending destructive action. Targets are captured
// when the dialog opens so a selection change cannot redirect it.
type confirmAction struct {
	kind       confirmKind
	secretName string
	version    string
}

type mutateOp int

const (
	mutateEnable mutateOp = iota
	mutateDisable
	mutateDestroy
)

// SecretClient is the slice of the Secret Manager client the model uses.
type SecretClient interface {
	ListSecrets(ctx context.Context) ([]gcp.SecretInfo, error)
	CreateSecret(ctx context.Context, secretName string) (*gcp.SecretInfo, error)
	DeleteSecret(ctx context.Context, secretName string) error
	ListVersions(ctx context.Context, secretName string) ([]gcp.VersionInfo, error)
	AccessVersion(ctx context.Context, secretName, version string) (string, error)
	AddVersion(ctx context.Context, secretName, value string) (*gcp.VersionInfo, error)
	EnableVersion(ctx context.Context, secretName, version string) (*gcp.VersionInfo, error)
	DisableVersion(ctx context.Context, secretName, version string) (*gcp.VersionInfo, error)
	DestroyVersion(ctx context.Context, secretName, version string) (*gcp.VersionInfo, error)
	UserEmail() string
	Close() error
}

// Model is the main application model.
type Model struct {
	config    *config.Config
	ctx       context.Context
	projectID string

	// Client is initialized lazily on the first secrets load so that
	// missing credentials surface as an auth prompt, not a startup crash.
	client SecretClient

	// Collaborators, injectable for tests
	newClient       func(ctx context.Context, projectID string) (SecretClient, error)
	listProjects    func(ctx context.Context) ([]gcp.ProjectInfo, error)
	loginCommand    func() (*exec.Cmd, error)
	copyToClipboard func(value string) error

	// UI state
	view         View
	previousView *View
	helpVisible  bool
	width        int
	height       int
	styles       *Styles
	keys         KeyMap
	spin         spinner.Model

	// List view state
	secrets List[gcp.SecretInfo]

	// Detail view state
	currentSecret *gcp.SecretInfo
	versions      List[gcp.VersionInfo]
	revealedValue string
	revealed      bool

	// Input state
	inputMode InputMode
	editor    Editor

	// Confirmation state
	confirm *confirmAction

	// Project selector state
	projects List[gcp.ProjectInfo]

	// Status message
	statusMsg string
	statusErr bool

	// Loading state
	loading    bool
	loadingMsg string

	auditLogger *audit.Logger
}

// Messages
type clientReadyMsg struct {
	client SecretClient
	err    error
}

type secretsLoadedMsg struct {
	secrets []gcp.SecretInfo
	err     error
}

type versionsLoadedMsg struct {
	versions []gcp.VersionInfo
	err      error
}

type projectsLoadedMsg struct {
	projects []gcp.ProjectInfo
	err      error
}

type secretCreatedMsg struct {
	name string
	err  error
}

type secretDeletedMsg struct {
	name string
	err  error
}

type versionAddedMsg struct {
	secretName string
	version    string
	err        error
}

type versionMutatedMsg struct {
	op         mutateOp
	secretName string
	version    string
	err        error
}

type valueRevealedMsg struct {
	secretName string
	version    string
	value      string
	err        error
}

type valueCopiedMsg struct {
	secretName string
	version    string
	accessErr  error
	copyErr    error
}

type authFinishedMsg struct {
	err error
}

// NewModel creates the application model. With a project ID it starts on
// the secrets list; without one it starts on the project selector.
func NewModel(cfg *config.Config, projectID string) Model {
	styles := NewStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	initialView := ViewSecretsList
	loadingMsg := "Loading secrets..."
	if projectID == "" {
		initialView = ViewProjectSelector
		loadingMsg = "Loading projects..."
	}

	auditLogger, _ := audit.NewLogger(cfg.Audit.Enabled, cfg.Audit.FilePath)

	return Model{
		config:          cfg,
		ctx:             context.Background(),
		projectID:       projectID,
		newClient:       defaultNewClient,
		listProjects:    gcp.ListProjects,
		loginCommand:    auth.LoginCommand,
		copyToClipboard: defaultCopyToClipboard,
		view:            initialView,
		styles:          styles,
		keys:            DefaultKeyMap(),
		spin:            sp,
		secrets:         NewList[gcp.SecretInfo](),
		versions:        NewList[gcp.VersionInfo](),
		projects:        NewList[gcp.ProjectInfo](),
		loading:         true,
		loadingMsg:      loadingMsg,
		auditLogger:     auditLogger,
	}
}

func defaultNewClient(ctx context.Context, projectID string) (SecretClient, error) {
	return gcp.NewClient(ctx, projectID)
}

func defaultCopyToClipboard(value string) error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	return clipboard.WriteText(value)
}

// Init starts the spinner and kicks off the initial load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.view == ViewProjectSelector {
		cmds = append(cmds, m.loadProjects())
	} else {
		cmds = append(cmds, m.loadSecrets())
	}
	return tea.Batch(cmds...)
}

// --- Commands ---

func (m Model) connect() tea.Cmd {
	return func() tea.Msg {
		client, err := m.newClient(m.ctx, m.projectID)
		return clientReadyMsg{client: client, err: err}
	}
}

func (m Model) loadSecrets() tea.Cmd {
	if m.client == nil {
		return m.connect()
	}
	return func() tea.Msg {
		secrets, err := m.client.ListSecrets(m.ctx)
		return secretsLoadedMsg{secrets: secrets, err: err}
	}
}

func (m Model) loadVersions(secretName string) tea.Cmd {
	return func() tea.Msg {
		versions, err := m.client.ListVersions(m.ctx, secretName)
		return versionsLoadedMsg{versions: versions, err: err}
	}
}

func (m Model) loadProjects() tea.Cmd {
	return func() tea.Msg {
		projects, err := m.listProjects(m.ctx)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m Model) createSecret(name string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.CreateSecret(m.ctx, name)
		return secretCreatedMsg{name: name, err: err}
	}
}

func (m Model) deleteSecret(name string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.DeleteSecret(m.ctx, name)
		return secretDeletedMsg{name: name, err: err}
	}
}

func (m Model) addVersion(secretName, value string) tea.Cmd {
	return func() tea.Msg {
		v, err := m.client.AddVersion(m.ctx, secretName, value)
		msg := versionAddedMsg{secretName: secretName, err: err}
		if v != nil {
			msg.version = v.Version
		}
		return msg
	}
}

func (m Model) mutateVersion(op mutateOp, secretName, version string) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch op {
		case mutateEnable:
			_, err = m.client.EnableVersion(m.ctx, secretName, version)
		case mutateDisable:
			_, err = m.client.DisableVersion(m.ctx, secretName, version)
		case mutateDestroy:
			_, err = m.client.DestroyVersion(m.ctx, secretName, version)
		}
		return versionMutatedMsg{op: op, secretName: secretName, version: version, err: err}
	}
}

func (m Model) accessValue(secretName, version string) tea.Cmd {
	return func() tea.Msg {
		value, err := m.client.AccessVersion(m.ctx, secretName, version)
		return valueRevealedMsg{secretName: secretName, version: version, value: value, err: err}
	}
}

func (m Model) copyValue(secretName, version string) tea.Cmd {
	return func() tea.Msg {
		value, err := m.client.AccessVersion(m.ctx, secretName, version)
		if err != nil {
			return valueCopiedMsg{secretName: secretName, version: version, accessErr: err}
		}
		return valueCopiedMsg{secretName: secretName, version: version, copyErr: m.copyToClipboard(value)}
	}
}

func (m Model) runGcloudLogin() (Model, tea.Cmd) {
	cmd, err := m.loginCommand()
	if err != nil {
		m.setStatus(fmt.Sprintf("Failed to run gcloud: %v", err), true)
		return m, nil
	}
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return authFinishedMsg{err: err}
	})
}

// --- Update ---

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.Decode(msg, m.view == ViewInput)
		// While an operation is in flight only quitting is honored.
		if m.loading && action.Kind != ActionQuit {
			return m, nil
		}
		return m.handleAction(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case clientReadyMsg:
		if msg.err != nil {
			m.loading = false
			m.setStatus(fmt.Sprintf("Auth error: %v", msg.err), true)
			m.view = ViewAuthRequired
			return m, nil
		}
		m.client = msg.client
		m.auditLogger.SetUser(msg.client.UserEmail())
		m.auditLogger.Op(audit.EventSessionStart, m.projectID, "", "", nil)
		return m, m.loadSecrets()

	case secretsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Auth error: %v", msg.err), true)
			m.view = ViewAuthRequired
			m.auditLogger.Op(audit.EventSecretList, m.projectID, "", "", msg.err)
			return m, nil
		}
		m.secrets.SetItems(msg.secrets)
		m.setStatus(fmt.Sprintf("Loaded %d secrets", m.secrets.Len()), false)
		m.auditLogger.Op(audit.EventSecretList, m.projectID, "", "", nil)
		return m, nil

	case versionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Error loading versions: %v", msg.err), true)
			return m, nil
		}
		m.versions.SetItems(msg.versions)
		m.setStatus(fmt.Sprintf("Loaded %d versions", m.versions.Len()), false)
		return m, nil

	case projectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Auth error: %v", msg.err), true)
			m.view = ViewAuthRequired
			return m, nil
		}
		m.projects.SetItems(msg.projects)
		for i, p := range msg.projects {
			if p.ProjectID == m.projectID {
				m.projects.Select(i)
				break
			}
		}
		m.setStatus(fmt.Sprintf("Found %d projects", m.projects.Len()), false)
		return m, nil

	case secretCreatedMsg:
		m.loading = false
		m.auditLogger.Op(audit.EventSecretCreate, m.projectID, msg.name, "", msg.err)
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Failed to create secret: %v", msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Created secret: %s", msg.name), false)
		m.setLoading("Loading secrets...")
		return m, m.loadSecrets()

	case secretDeletedMsg:
		m.loading = false
		m.auditLogger.Op(audit.EventSecretDelete, m.projectID, msg.name, "", msg.err)
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Failed to delete: %v", msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Deleted secret: %s", msg.name), false)
		m.view = ViewSecretsList
		m.previousView = nil
		m.currentSecret = nil
		m.setLoading("Loading secrets...")
		return m, m.loadSecrets()

	case versionAddedMsg:
		m.loading = false
		m.auditLogger.Op(audit.EventVersionAdd, m.projectID, msg.secretName, msg.version, msg.err)
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Failed to add version: %v", msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Added version: %s", msg.version), false)
		if m.currentSecret != nil {
			m.setLoading("Loading versions...")
			return m, m.loadVersions(m.currentSecret.ShortName)
		}
		return m, nil

	case versionMutatedMsg:
		return m.handleVersionMutated(msg)

	case valueRevealedMsg:
		m.loading = false
		m.auditLogger.Op(audit.EventSecretReveal, m.projectID, msg.secretName, msg.version, msg.err)
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Failed to access: %v", msg.err), true)
			return m, nil
		}
		m.revealedValue = msg.value
		m.revealed = true
		m.setStatus("Press 's' to hide value", false)
		return m, nil

	case valueCopiedMsg:
		m.loading = false
		if msg.accessErr != nil {
			m.auditLogger.Op(audit.EventSecretCopy, m.projectID, msg.secretName, msg.version, msg.accessErr)
			m.setStatus(fmt.Sprintf("Failed to access: %v", msg.accessErr), true)
			return m, nil
		}
		if msg.copyErr != nil {
			m.auditLogger.Op(audit.EventSecretCopy, m.projectID, msg.secretName, msg.version, msg.copyErr)
			if errors.Is(msg.copyErr, clipboard.ErrUnavailable) {
				m.setStatus("Clipboard not available", true)
			} else {
				m.setStatus("Failed to copy to clipboard", true)
			}
			return m, nil
		}
		m.auditLogger.Op(audit.EventSecretCopy, m.projectID, msg.secretName, msg.version, nil)
		m.setStatus("Copied to clipboard!", false)
		return m, nil

	case authFinishedMsg:
		if msg.err != nil {
			m.setStatus("Authentication was cancelled or failed", true)
			return m, nil
		}
		m.setStatus("Authentication successful!", false)
		m.view = ViewProjectSelector
		m.previousView = nil
		m.setLoading("Loading projects...")
		return m, m.loadProjects()
	}

	return m, nil
}

func (m Model) handleVersionMutated(msg versionMutatedMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	var event audit.EventType
	var verb string
	switch msg.op {
	case mutateEnable:
		event, verb = audit.EventVersionEnable, "Enabled"
	case mutateDisable:
		event, verb = audit.EventVersionDisable, "Disabled"
	case mutateDestroy:
		event, verb = audit.EventVersionDestroy, "Destroyed"
	}
	m.auditLogger.Op(event, m.projectID, msg.secretName, msg.version, msg.err)

	if msg.err != nil {
		switch msg.op {
		case mutateEnable:
			m.setStatus(fmt.Sprintf("Failed to enable: %v", msg.err), true)
		case mutateDisable:
			m.setStatus(fmt.Sprintf("Failed to disable: %v", msg.err), true)
		case mutateDestroy:
			m.setStatus(fmt.Sprintf("Failed to destroy: %v", msg.err), true)
		}
		return m, nil
	}

	m.setStatus(fmt.Sprintf("%s version: %s", verb, msg.version), false)
	if m.currentSecret != nil {
		m.setLoading("Loading versions...")
		return m, m.loadVersions(m.currentSecret.ShortName)
	}
	return m, nil
}

// --- Action dispatch ---

// handleAction routes a decoded action. Help is handled first from any
// view, then an open dialog swallows everything, then the current view.
func (m Model) handleAction(action Action) (tea.Model, tea.Cmd) {
	if action.Kind == ActionNone {
		return m, nil
	}

	if action.Kind == ActionHelp {
		m.helpVisible = !m.helpVisible
		return m, nil
	}
	if m.helpVisible {
		m.helpVisible = false
		return m, nil
	}

	if m.view == ViewConfirm {
		return m.handleConfirmAction(action)
	}
	if m.view == ViewInput {
		return m.handleInputAction(action)
	}

	switch m.view {
	case ViewAuthRequired:
		return m.handleAuthRequiredAction(action)
	case ViewSecretsList:
		return m.handleSecretsListAction(action)
	case ViewSecretDetail:
		return m.handleSecretDetailAction(action)
	case ViewProjectSelector:
		return m.handleProjectSelectorAction(action)
	}
	return m, nil
}

func (m Model) handleAuthRequiredAction(action Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case ActionQuit:
		return m, tea.Quit
	case ActionEnter:
		return m.runGcloudLogin()
	}
	return m, nil
}

func (m Model) handleSecretsListAction(action Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case ActionQuit:
		return m, tea.Quit
	case ActionUp:
		m.secrets.Previous()
	case ActionDown:
		m.secrets.Next()
	case ActionTop:
		m.secrets.First()
	case ActionBottom:
		m.secrets.Last()
	case ActionEnter:
		return m.enterSecretDetail()
	case ActionRefresh:
		m.setLoading("Loading secrets...")
		return m, m.loadSecrets()
	case ActionNewSecret:
		m.startInput(InputNewSecretName)
	case ActionDelete:
		if secret, ok := m.secrets.Selected(); ok {
			m.openConfirm(confirmAction{kind: confirmDeleteSecret, secretName: secret.ShortName})
		}
	case ActionOpenProjects:
		return m.openProjectSelector()
	}
	return m, nil
}

func (m Model) handleSecretDetailAction(action Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case ActionQuit:
		return m, tea.Quit
	case ActionBack:
		m.goBack()
		m.currentSecret = nil
		m.versions.Clear()
	case ActionUp:
		if m.versions.Len() > 0 {
			m.versions.Previous()
			m.clearRevealed()
		}
	case ActionDown:
		if m.versions.Len() > 0 {
			m.versions.Next()
			m.clearRevealed()
		}
	case ActionTop:
		if m.versions.Len() > 0 {
			m.versions.First()
			m.clearRevealed()
		}
	case ActionBottom:
		if m.versions.Len() > 0 {
			m.versions.Last()
			m.clearRevealed()
		}
	case ActionRefresh:
		if m.currentSecret != nil {
			m.setLoading("Loading versions...")
			return m, m.loadVersions(m.currentSecret.ShortName)
		}
	case ActionNewVersion:
		m.startInput(InputNewVersionValue)
	case ActionToggleValue:
		return m.toggleSecretValue()
	case ActionCopy:
		return m.copySecretValue()
	case ActionEnable:
		return m.enableSelectedVersion()
	case ActionDisable:
		return m.disableSelectedVersion()
	case ActionDelete:
		if version, ok := m.versions.Selected(); ok && m.currentSecret != nil {
			m.openConfirm(confirmAction{
				kind:       confirmDestroyVersion,
				secretName: m.currentSecret.ShortName,
				version:    version.Version,
			})
		}
	case ActionOpenProjects:
		return m.openProjectSelector()
	}
	return m, nil
}

func (m Model) handleProjectSelectorAction(action Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case ActionQuit:
		return m, tea.Quit
	case ActionBack:
		m.goBack()
	case ActionUp:
		m.projects.Previous()
	case ActionDown:
		m.projects.Next()
	case ActionTop:
		m.projects.First()
	case ActionBottom:
		m.projects.Last()
	case ActionEnter:
		return m.selectProject()
	}
	return m, nil
}

func (m Model) handleInputAction(action Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case ActionQuit:
		return m, tea.Quit
	case ActionBack:
		m.editor.Reset()
		m.goBack()
	case ActionEnter:
		return m.submitInput()
	case ActionChar:
		m.editor.Insert(action.Char)
	case ActionBackspace:
		m.editor.Backspace()
	case ActionCursorLeft:
		m.editor.CursorLeft()
	case ActionCursorRight:
		m.editor.CursorRight()
	}
	return m, nil
}

func (m Model) handleConfirmAction(action Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case ActionEnter:
		if m.confirm == nil {
			m.goBack()
			return m, nil
		}
		confirm := *m.confirm
		m.confirm = nil
		m.goBack()
		switch confirm.kind {
		case confirmDeleteSecret:
			m.setLoading("Deleting secret...")
			return m, m.deleteSecret(confirm.secretName)
		case confirmDestroyVersion:
			m.setLoading("Destroying version...")
			return m, m.mutateVersion(mutateDestroy, confirm.secretName, confirm.version)
		}
	case ActionBack, ActionQuit:
		// Quit cancels the dialog rather than the app.
		m.confirm = nil
		m.goBack()
	}
	return m, nil
}

// --- View transitions ---

func (m *Model) openConfirm(confirm confirmAction) {
	prev := m.view
	m.previousView = &prev
	m.confirm = &confirm
	m.view = ViewConfirm
}

func (m *Model) startInput(mode InputMode) {
	m.editor.Reset()
	prev := m.view
	m.previousView = &prev
	m.inputMode = mode
	m.view = ViewInput
}

func (m Model) enterSecretDetail() (tea.Model, tea.Cmd) {
	secret, ok := m.secrets.Selected()
	if !ok {
		return m, nil
	}
	m.currentSecret = &secret
	prev := ViewSecretsList
	m.previousView = &prev
	m.view = ViewSecretDetail
	m.versions.Clear()
	m.clearRevealed()
	m.setLoading("Loading versions...")
	return m, m.loadVersions(secret.ShortName)
}

func (m Model) openProjectSelector() (tea.Model, tea.Cmd) {
	prev := m.view
	m.previousView = &prev
	m.view = ViewProjectSelector
	m.setLoading("Loading projects...")
	return m, m.loadProjects()
}

func (m Model) selectProject() (tea.Model, tea.Cmd) {
	project, ok := m.projects.Selected()
	if !ok {
		return m, nil
	}
	if project.ProjectID == m.projectID {
		m.setStatus("Already on this project", false)
		m.goBack()
		return m, nil
	}

	if m.client != nil {
		_ = m.client.Close()
		m.client = nil
	}
	m.projectID = project.ProjectID
	m.secrets.Clear()
	m.currentSecret = nil
	m.versions.Clear()
	m.clearRevealed()

	m.config.AddRecentProject(project.ProjectID)
	_ = m.config.Save()
	m.auditLogger.Op(audit.EventProjectSwitch, project.ProjectID, "", "", nil)

	m.setStatus(fmt.Sprintf("Switched to project: %s", project.ProjectID), false)
	m.view = ViewSecretsList
	m.previousView = nil
	m.setLoading("Loading secrets...")
	return m, m.loadSecrets()
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	input := m.editor.Value()
	m.editor.Reset()

	if input == "" {
		m.setStatus("Input cannot be empty", true)
		m.goBack()
		return m, nil
	}

	switch m.inputMode {
	case InputNewSecretName:
		// Validate before touching the network.
		if err := validation.SecretName(input); err != nil {
			m.setStatus(err.Error(), true)
			m.goBack()
			return m, nil
		}
		m.goBack()
		m.setLoading("Creating secret...")
		return m, m.createSecret(input)

	case InputNewVersionValue:
		if m.currentSecret == nil {
			m.goBack()
			return m, nil
		}
		secretName := m.currentSecret.ShortName
		m.goBack()
		m.setLoading("Adding version...")
		return m, m.addVersion(secretName, input)
	}
	return m, nil
}

// --- Secret value operations ---

func (m Model) toggleSecretValue() (tea.Model, tea.Cmd) {
	if m.revealed {
		m.clearRevealed()
		return m, nil
	}

	version, ok := m.versions.Selected()
	if !ok || m.currentSecret == nil {
		return m, nil
	}
	if err := guardValueAccess(version.State, "access"); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.setLoading("Accessing version...")
	return m, m.accessValue(m.currentSecret.ShortName, version.Version)
}

func (m Model) copySecretValue() (tea.Model, tea.Cmd) {
	version, ok := m.versions.Selected()
	if !ok || m.currentSecret == nil {
		return m, nil
	}
	if err := guardValueAccess(version.State, "copy"); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.setLoading("Copying value...")
	return m, m.copyValue(m.currentSecret.ShortName, version.Version)
}

func (m Model) enableSelectedVersion() (tea.Model, tea.Cmd) {
	version, ok := m.versions.Selected()
	if !ok || m.currentSecret == nil {
		return m, nil
	}
	if err := guardEnable(version.State); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.setLoading("Enabling version...")
	return m, m.mutateVersion(mutateEnable, m.currentSecret.ShortName, version.Version)
}

func (m Model) disableSelectedVersion() (tea.Model, tea.Cmd) {
	version, ok := m.versions.Selected()
	if !ok || m.currentSecret == nil {
		return m, nil
	}
	if err := guardDisable(version.State); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.setLoading("Disabling version...")
	return m, m.mutateVersion(mutateDisable, m.currentSecret.ShortName, version.Version)
}

// --- State helpers ---

// goBack returns to the recorded previous view, defaulting to the
// secrets list, and always hides any revealed value.
func (m *Model) goBack() {
	if m.previousView != nil {
		m.view = *m.previousView
		m.previousView = nil
	} else {
		m.view = ViewSecretsList
	}
	m.clearRevealed()
}

func (m *Model) clearRevealed() {
	m.revealedValue = ""
	m.revealed = false
}

func (m *Model) setStatus(text string, isError bool) {
	m.statusMsg = text
	m.statusErr = isError
}

func (m *Model) setLoading(msg string) {
	m.loading = true
	m.loadingMsg = msg
}
