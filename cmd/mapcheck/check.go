package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mapcheck/internal/diagnostic"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		format string
		tests  bool
	)

	cmd := &cobra.Command{
		Use:   "check [patterns...]",
		Short: "Report mapping functions with unassigned target fields",
		Long: `Load the packages matching the patterns (default ./...) and report every
mapping function that leaves target fields unassigned, every exempted name
that is not a field of the target, and every directive whose arguments
cannot be read. Exits with status 1 when any warning or error is reported.
With --verbose, annotated functions that were skipped for lack of a target
and a summary line are printed as info diagnostics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := diagnostic.ParseFormat(format)
			if err != nil {
				return err
			}

			log, err := a.logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg, err := a.config(log)
			if err != nil {
				return err
			}

			reports, err := checkPackages(cmd.Context(), a.v.GetString("dir"), tests, cfg, log, patterns(args))
			if err != nil {
				return err
			}

			diags := collect(reports)
			if a.v.GetBool("verbose") {
				diags.AddInfo(diagnostic.CodeSummary, summary(reports))
			} else {
				diags.Infos = nil
			}

			all := diags.All()

			log.Debug("check finished",
				zap.Int("packages", len(reports)),
				zap.Int("errors", len(diags.Errors)),
				zap.Int("warnings", len(diags.Warnings)))

			if len(all) == 0 && f == diagnostic.FormatText {
				return nil
			}

			if err := diagnostic.Write(cmd.OutOrStdout(), all, f); err != nil {
				return err
			}

			if len(diags.Errors)+len(diags.Warnings) > 0 {
				return errFindings
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(diagnostic.FormatText), "output format: text, json or yaml")
	cmd.Flags().BoolVar(&tests, "tests", false, "also check _test.go files")

	return cmd
}
