package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/marovole/skillsctl/internal/router"
)

var (
	routeHeaderStyle = lipgloss.NewStyle().Bold(true)
	routeDimStyle    = lipgloss.NewStyle().Faint(true)
)

func newRouteCmd() *cobra.Command {
	var (
		maxSkills  int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "route <message>",
		Short: "Route a message offline and show the decision",
		Long:  "Runs the full analyze pipeline (locale, intent, ranking) against the local skill catalog without starting a server. Useful for tuning trigger tables.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig()
			if err != nil {
				return err
			}
			reg, err := loadRegistry(cfg)
			if err != nil {
				return err
			}

			message := strings.Join(args, " ")
			locale := router.DetectLocale(message)
			intent := router.ClassifyIntent(message)
			ranked := router.MatchSkills(message, intent, reg)

			if jsonOutput {
				payload := map[string]any{
					"message": message,
					"locale":  locale,
					"intent":  intent,
					"ranked":  ranked,
				}
				b, _ := json.MarshalIndent(payload, "", "  ")
				fmt.Println(string(b))
				return nil
			}

			fmt.Println(routeHeaderStyle.Render("Routing decision"))
			fmt.Printf("Message: %s\n", message)
			fmt.Printf("Locale:  %s\n", locale)
			fmt.Printf("Intent:  %s\n", intent)
			if len(ranked) == 0 {
				fmt.Println(routeDimStyle.Render("No matching skills."))
				return nil
			}

			limit := len(ranked)
			if maxSkills > 0 && maxSkills < limit {
				limit = maxSkills
			}
			fmt.Printf("Candidates (top %d of %d):\n", limit, len(ranked))
			for i, m := range ranked {
				marker := " "
				if i < limit {
					marker = "*"
				}
				fmt.Printf("%s %2d. %-24s score=%-3d triggers=%s\n",
					marker, i+1, m.SkillName, m.Score, strings.Join(m.MatchedTriggers, ","))
			}
			fmt.Println(routeDimStyle.Render("* = would activate at this max_skills bound"))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxSkills, "max-skills", 1, "activation bound to annotate (1-5)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON output")
	return cmd
}
