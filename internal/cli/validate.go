package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yorkei04/portfolio/internal/content"
)

func newValidateCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a content file",
		Long: `Validate loads a TOML content file and reports missing fields, malformed
links and showcases that point at unknown projects or sections. Without a
file it checks the built-in content. With --dump it prints the built-in
content as TOML, a starting point for a custom file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if dump {
				b, err := content.Encode(content.Default())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}

			var (
				p   content.Portfolio
				err error
			)
			name := "built-in content"
			if len(args) == 1 {
				name = args[0]
				p, err = content.LoadFile(name)
			} else {
				p = content.Default()
				err = content.Validate(p)
			}
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), failLine(name))
				return err
			}
			logger.Debug("content loaded", "projects", len(p.Projects), "showcases", len(p.Showcases))
			fmt.Fprintln(cmd.OutOrStdout(), okLine(name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the built-in content as TOML")
	return cmd
}
