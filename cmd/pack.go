package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marovole/skillsctl/internal/packager"
)

func newPackCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pack <skill>",
		Short: "Package a skill bundle as a zip archive",
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

			name := args[0]
			desc, ok := reg.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown skill %q", name)
			}

			if output == "" {
				output = name + ".zip"
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := packager.Pack(name, desc.Path, f); err != nil {
				return err
			}
			fmt.Printf("packed %s -> %s\n", name, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output zip path (default <skill>.zip)")
	return cmd
}
