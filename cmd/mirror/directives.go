package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mirror"
	"mirror/annotation"
	"mirror/internal/logging"
)

var directivesStrict bool

func newDirectivesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directives <patterns...>",
		Short: "List //mirror: directives on method declarations",
		Long: `Load the Go packages matching the patterns and list the //mirror:<name> [value]
comment directives found on their method declarations, followed by diagnostics.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := mirror.LoadConfig(configPath); err != nil {
				return err
			}

			log := logging.Named("directives")
			log.Debug("loading packages", zap.Strings("patterns", args))

			dirs, diags, err := annotation.LoadDirectives(args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range dirs {
				fmt.Fprintf(out, "%s\t%s\n", d.Pos, d)
			}

			for _, d := range diags.All() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", d.Severity, d)
			}

			log.Debug("loaded",
				zap.Int("directives", len(dirs)),
				zap.Int("errors", len(diags.Errors)),
				zap.Int("warnings", len(diags.Warnings)))

			if directivesStrict && (diags.HasErrors() || len(diags.Warnings) > 0) {
				return fmt.Errorf("%d error(s), %d warning(s)", len(diags.Errors), len(diags.Warnings))
			}

			return diags.Error()
		},
	}

	cmd.Flags().BoolVar(&directivesStrict, "strict", false, "Fail on warnings too")

	return cmd
}
