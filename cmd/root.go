package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/marovole/skillsctl/internal/config"
	"github.com/marovole/skillsctl/internal/content"
	"github.com/marovole/skillsctl/internal/controller"
	"github.com/marovole/skillsctl/internal/registry"
	"github.com/marovole/skillsctl/internal/session"
)

var (
	cfgFile   string
	skillDirs []string
	verbose   bool

	// Package-level version info, set by Execute().
	appVersion string
	appCommit  string
)

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	appVersion = version
	appCommit = commit

	rootCmd := &cobra.Command{
		Use:   "skillsctl",
		Short: "Skill routing controller for MCP clients",
		Long: "skillsctl routes free-text requests to skill bundles via intent and\n" +
			"trigger matching, and serves them over the Model Context Protocol.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default ~/.config/skillsctl/config.yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&skillDirs, "skill-dir", nil, "skill directory (repeatable, overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	// Subcommands
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newPackCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig loads configuration, applying CLI flag overrides.
func initConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if len(skillDirs) > 0 {
		cfg.SkillDirs = skillDirs
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to stderr: stdout belongs to
// the MCP wire when serving.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadRegistry scans the configured skill directories.
func loadRegistry(cfg *config.Config) (*registry.Registry, error) {
	reg, err := registry.Scan(cfg.SkillDirs)
	if err != nil {
		return nil, err
	}
	if reg.Len() == 0 {
		return nil, fmt.Errorf("no skills found in %v; add bundles or pass --skill-dir", cfg.SkillDirs)
	}
	return reg, nil
}

// buildController assembles the routing façade from config.
func buildController(cfg *config.Config, reg *registry.Registry, history controller.Recorder, log *slog.Logger) *controller.Controller {
	return controller.New(
		reg,
		content.NewLoader(reg),
		session.NewStore(),
		controller.Options{
			MaxMessageLen:    cfg.MaxMessageLen,
			DefaultMaxSkills: cfg.DefaultMaxSkills,
			MaxSkillsBound:   cfg.MaxSkillsBound,
		},
		history,
		log,
	)
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("skillsctl %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
