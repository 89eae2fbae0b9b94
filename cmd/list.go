package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var categoryStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all skills grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig()
			if err != nil {
				return err
			}
			reg, err := loadRegistry(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("%d skills\n\n", reg.Len())
			for _, group := range reg.ByCategory() {
				fmt.Println(categoryStyle.Render(fmt.Sprintf("%s (%d)", group.Category, len(group.Skills))))
				for _, s := range group.Skills {
					desc := s.Description
					if desc == "" {
						desc = "(no description)"
					}
					words := make([]string, 0, len(s.Triggers))
					for _, t := range s.Triggers {
						words = append(words, t.Word)
					}
					fmt.Printf("  %-24s %s\n", s.Name, desc)
					fmt.Printf("  %-24s triggers: %s\n", "", strings.Join(words, ", "))
				}
				fmt.Println()
			}
			return nil
		},
	}
}
