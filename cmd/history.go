package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marovole/skillsctl/internal/history"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent routing decisions",
		Long:  "Reads the routing log written by `skillsctl serve` when history is enabled.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history db: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no routing history yet")
				return nil
			}

			for _, e := range entries {
				skills := "-"
				if len(e.Skills) > 0 {
					skills = strings.Join(e.Skills, ",")
				}
				fmt.Printf("%s  %-9s  %-2s  %-22s  %-24s  %s\n",
					e.Time.Format("2006-01-02 15:04:05"),
					e.Status, e.Locale, e.Intent, skills, e.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show")
	return cmd
}
