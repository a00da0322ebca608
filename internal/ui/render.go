package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gsm-tools/gsm-tui/internal/gcp"
)

// View renders the current screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.helpVisible {
		b.WriteString(m.renderHelp())
	} else {
		switch m.view {
		case ViewAuthRequired:
			b.WriteString(m.renderAuthRequired())
		case ViewSecretsList:
			b.WriteString(m.renderSecretsList())
		case ViewSecretDetail:
			b.WriteString(m.renderSecretDetail())
		case ViewInput:
			b.WriteString(m.renderInput())
		case ViewConfirm:
			b.WriteString(m.renderConfirm())
		case ViewProjectSelector:
			b.WriteString(m.renderProjectSelector())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	title := "Secret Manager"
	if m.projectID != "" {
		title = fmt.Sprintf("Secret Manager - %s", m.projectID)
	}
	return m.styles.Header.Render(title)
}

func (m Model) renderStatus() string {
	if m.loading {
		return m.styles.Content.Render(m.spin.View() + " " + m.loadingMsg)
	}
	if m.statusMsg == "" {
		return ""
	}
	style := m.styles.StatusInfo
	if m.statusErr {
		style = m.styles.StatusError
	}
	return m.styles.Content.Render(style.Render(m.statusMsg))
}

func (m Model) renderFooter() string {
	var bindings []FooterBinding
	switch m.view {
	case ViewAuthRequired:
		bindings = AuthViewBindings()
	case ViewSecretsList:
		bindings = ListViewBindings()
	case ViewSecretDetail:
		bindings = DetailViewBindings()
	case ViewInput:
		bindings = InputViewBindings()
	case ViewConfirm:
		bindings = ConfirmViewBindings()
	case ViewProjectSelector:
		bindings = ProjectViewBindings()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, m.styles.FooterKey.Render(b.Key)+m.styles.FooterDesc.Render(b.Desc))
	}
	return m.styles.Footer.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m Model) renderAuthRequired() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Authentication Required"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.DetailValue.Render("Google Cloud credentials were not found or have expired."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.DetailValue.Render("Press Enter to run:"))
	b.WriteString("\n")
	b.WriteString(m.styles.SecretValue.Render("gcloud auth application-default login"))
	return m.styles.Content.Render(m.styles.Dialog.Render(b.String()))
}

func (m Model) renderSecretsList() string {
	var b strings.Builder
	b.WriteString(m.styles.ListTitle.Render(fmt.Sprintf("Secrets (%d)", m.secrets.Len())))
	b.WriteString("\n")

	if m.secrets.Len() == 0 {
		b.WriteString(m.styles.ListItem.Render("No secrets found. Press 'n' to create one."))
		return m.styles.Content.Render(b.String())
	}

	for i, secret := range m.secrets.Items() {
		line := secret.ShortName
		if i == m.secrets.SelectedIndex() {
			b.WriteString(m.styles.ListSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return m.styles.Content.Render(b.String())
}

func (m Model) renderSecretDetail() string {
	if m.currentSecret == nil {
		return m.styles.Content.Render(m.styles.ListItem.Render("No secret selected"))
	}
	secret := m.currentSecret

	var b strings.Builder
	b.WriteString(m.styles.DetailTitle.Render(secret.ShortName))
	b.WriteString("\n")

	b.WriteString(m.renderMetadata(secret))
	b.WriteString("\n")

	b.WriteString(m.styles.ListTitle.Render(fmt.Sprintf("Versions (%d)", m.versions.Len())))
	b.WriteString("\n")
	if m.versions.Len() == 0 {
		b.WriteString(m.styles.ListItem.Render("No versions. Press 'a' to add one."))
		b.WriteString("\n")
	}
	for i, version := range m.versions.Items() {
		line := m.renderVersionLine(version)
		if i == m.versions.SelectedIndex() {
			b.WriteString(m.styles.ListSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.revealed {
		b.WriteString("\n")
		b.WriteString(m.styles.DetailLabel.Render("Value:"))
		b.WriteString("\n")
		b.WriteString(m.styles.SecretValue.Render(m.revealedValue))
		b.WriteString("\n")
	}

	return m.styles.Content.Render(b.String())
}

func (m Model) renderMetadata(secret *gcp.SecretInfo) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(m.styles.DetailLabel.Render(label))
		b.WriteString(m.styles.DetailValue.Render(value))
		b.WriteString("\n")
	}

	row("Created:", secret.CreateTime)
	row("Replication:", secret.Replication.String())

	if len(secret.Labels) > 0 {
		row("Labels:", renderPairs(secret.Labels))
	}
	if len(secret.Annotations) > 0 {
		row("Annotations:", renderPairs(secret.Annotations))
	}
	if len(secret.Topics) > 0 {
		row("Topics:", strings.Join(secret.Topics, ", "))
	}
	if len(secret.VersionAliases) > 0 {
		aliases := make([]string, 0, len(secret.VersionAliases))
		for _, a := range secret.VersionAliases {
			aliases = append(aliases, fmt.Sprintf("%s=%d", a.Name, a.Version))
		}
		row("Aliases:", strings.Join(aliases, ", "))
	}
	if secret.Rotation != nil {
		rotation := secret.Rotation.NextRotation
		if secret.Rotation.Period != "" {
			rotation = fmt.Sprintf("%s (every %s)", rotation, secret.Rotation.Period)
		}
		row("Rotation:", rotation)
	}
	if secret.VersionDestroyTTL != "" {
		row("Destroy TTL:", secret.VersionDestroyTTL)
	}

	return b.String()
}

func (m Model) renderVersionLine(version gcp.VersionInfo) string {
	state := m.styles.VersionStateStyle(version.State.String()).Render(version.State.String())
	line := fmt.Sprintf("v%s  [%s]  %s", version.Version, state, version.CreateTime)
	if version.DestroyTime != "" {
		line += fmt.Sprintf("  destroyed %s", version.DestroyTime)
	} else if version.ScheduledDestroyTime != "" {
		line += fmt.Sprintf("  destroy scheduled %s", version.ScheduledDestroyTime)
	}
	if version.HasChecksum {
		line += "  ✓crc32c"
	}
	return line
}

func renderPairs(pairs []gcp.Pair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%s", p.Key, p.Value))
	}
	return strings.Join(parts, ", ")
}

func (m Model) renderInput() string {
	var b strings.Builder

	var title, prompt string
	switch m.inputMode {
	case InputNewSecretName:
		title = "New Secret"
		prompt = "Secret name:"
	case InputNewVersionValue:
		title = "New Version"
		prompt = "Secret value:"
		if m.currentSecret != nil {
			title = fmt.Sprintf("New Version - %s", m.currentSecret.ShortName)
		}
	}

	b.WriteString(m.styles.DialogTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.InputLabel.Render(prompt))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.renderEditorLine()))

	return m.styles.Content.Render(m.styles.Dialog.Render(b.String()))
}

// renderEditorLine draws the buffer with a block cursor at the cursor
// position, including the one-past-the-end slot.
func (m Model) renderEditorLine() string {
	runes := []rune(m.editor.Value())
	cursor := m.editor.Cursor()

	var b strings.Builder
	for i, r := range runes {
		if i == cursor {
			b.WriteString(m.styles.Cursor.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	if cursor >= len(runes) {
		b.WriteString(m.styles.Cursor.Render(" "))
	}
	return b.String()
}

func (m Model) renderConfirm() string {
	if m.confirm == nil {
		return ""
	}

	var b strings.Builder
	switch m.confirm.kind {
	case confirmDeleteSecret:
		b.WriteString(m.styles.DialogDanger.Render("Delete Secret"))
		b.WriteString("\n")
		b.WriteString(m.styles.DetailValue.Render(
			fmt.Sprintf("Delete secret %q and all of its versions?", m.confirm.secretName)))
	case confirmDestroyVersion:
		b.WriteString(m.styles.DialogDanger.Render("Destroy Version"))
		b.WriteString("\n")
		b.WriteString(m.styles.DetailValue.Render(
			fmt.Sprintf("Destroy version %s of %q? The payload is gone forever.", m.confirm.version, m.confirm.secretName)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.DetailValue.Render("Enter to confirm, Esc to cancel"))

	return m.styles.Content.Render(m.styles.Dialog.Render(b.String()))
}

func (m Model) renderProjectSelector() string {
	var b strings.Builder
	b.WriteString(m.styles.ListTitle.Render(fmt.Sprintf("Select Project (%d)", m.projects.Len())))
	b.WriteString("\n")

	if m.projects.Len() == 0 {
		b.WriteString(m.styles.ListItem.Render("No projects available."))
		return m.styles.Content.Render(b.String())
	}

	for i, project := range m.projects.Items() {
		line := project.ProjectID
		if project.DisplayName != "" && project.DisplayName != project.ProjectID {
			line = fmt.Sprintf("%s (%s)", project.ProjectID, project.DisplayName)
		}
		if project.ProjectID == m.projectID {
			line += "  *current*"
		}
		if i == m.projects.SelectedIndex() {
			b.WriteString(m.styles.ListSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return m.styles.Content.Render(b.String())
}

func (m Model) renderHelp() string {
	sections := []struct {
		title    string
		bindings []FooterBinding
	}{
		{"Navigation", []FooterBinding{
			{Key: "↑/k ↓/j", Desc: "move selection"},
			{Key: "g / G", Desc: "first / last"},
			{Key: "Enter", Desc: "open / confirm"},
			{Key: "Esc/b", Desc: "back"},
		}},
		{"Secrets", []FooterBinding{
			{Key: "n", Desc: "create secret"},
			{Key: "d", Desc: "delete secret / destroy version"},
			{Key: "r", Desc: "refresh"},
			{Key: "p", Desc: "switch project"},
		}},
		{"Versions", []FooterBinding{
			{Key: "s", Desc: "show/hide value"},
			{Key: "c", Desc: "copy value to clipboard"},
			{Key: "a", Desc: "add version"},
			{Key: "e / x", Desc: "enable / disable version"},
		}},
		{"Other", []FooterBinding{
			{Key: "?", Desc: "toggle this help"},
			{Key: "q", Desc: "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(m.styles.InputLabel.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			b.WriteString(fmt.Sprintf("  %-12s %s\n", binding.Key, binding.Desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.DetailValue.Render("Press any key to close"))

	return m.styles.Content.Render(m.styles.Help.Render(b.String()))
}
