package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search skills by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig()
			if err != nil {
				return err
			}
			reg, err := loadRegistry(cfg)
			if err != nil {
				return err
			}

			found := reg.Search(args[0])
			if len(found) == 0 {
				fmt.Printf("no skills match %q\n", args[0])
				return nil
			}
			for _, s := range found {
				words := make([]string, 0, len(s.Triggers))
				for _, t := range s.Triggers {
					words = append(words, t.Word)
				}
				fmt.Printf("%-24s [%s] %s\n", s.Name, s.Category, s.Description)
				fmt.Printf("%-24s triggers: %s\n", "", strings.Join(words, ", "))
			}
			return nil
		},
	}
}
