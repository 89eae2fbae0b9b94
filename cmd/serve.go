package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marovole/skillsctl/internal/controller"
	"github.com/marovole/skillsctl/internal/history"
	"github.com/marovole/skillsctl/internal/server"
)

func newServeCmd() *cobra.Command {
	var historyDB string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: "Scans the configured skill directories and serves the routing tools\n" +
			"(analyze_and_route, list_active_skills, ...) to an MCP client on stdio.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig()
			if err != nil {
				return err
			}
			if historyDB != "" {
				cfg.History.Enabled = true
				cfg.History.Path = historyDB
			}

			log := newLogger()
			reg, err := loadRegistry(cfg)
			if err != nil {
				return err
			}
			log.Info("skill registry loaded", "skills", reg.Len(), "dirs", cfg.SkillDirs)

			var recorder controller.Recorder
			if cfg.History.Enabled {
				store, err := history.Open(cfg.History.Path)
				if err != nil {
					// History is an operator convenience, never a reason to
					// refuse service.
					log.Warn("history disabled", "err", err)
				} else {
					defer store.Close()
					recorder = store
					log.Info("routing history enabled", "path", cfg.History.Path)
				}
			}

			ctrl := buildController(cfg, reg, recorder, log)
			return server.New(ctrl, appVersion, log).Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&historyDB, "history-db", "", "record routing decisions to this SQLite file")
	return cmd
}
