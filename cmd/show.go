package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marovole/skillsctl/internal/content"
)

func newShowCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <skill>",
		Short: "Print a skill's markdown body",
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

			body, err := content.NewLoader(reg).Body(args[0])
			if err != nil {
				return err
			}

			// Rendered output only when stdout is a terminal; plain markdown
			// when piped or requested.
			if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Println(body)
				return nil
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				fmt.Println(body)
				return nil
			}
			out, err := r.Render(body)
			if err != nil {
				fmt.Println(body)
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown without rendering")
	return cmd
}
