package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gsm-tools/gsm-tui/internal/config"
	"github.com/gsm-tools/gsm-tui/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by ldflags)
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	// Flags
	projectID string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gsm-tui",
	Short: "A TUI for Google Cloud Secret Manager",
	Long: `gsm-tui is a terminal user interface for browsing and managing
Google Cloud Secret Manager secrets.

Features:
  • Browse secrets and their versions across projects
  • Reveal and copy secret values
  • Create secrets and add versions
  • Enable, disable, and destroy versions
  • Switch projects without restarting
  • Re-authenticate with gcloud from inside the app`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&projectID, "project", "p", "", "GCP Project ID")

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func runTUI() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	model := ui.NewModel(cfg, projectID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
