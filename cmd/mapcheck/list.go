package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func newListCmd(a *app) *cobra.Command {
	var tests bool

	cmd := &cobra.Command{
		Use:   "list [patterns...]",
		Short: "List annotated mapping functions",
		Long: `Print a table of the annotated mapping functions found in the packages
matching the patterns (default ./...), with their target type, exempted
fields and the number of fields still unassigned.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := a.logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg, err := a.config(log)
			if err != nil {
				return err
			}

			dir := a.v.GetString("dir")

			reports, err := checkPackages(cmd.Context(), dir, tests, cfg, log, patterns(args))
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Function", "Target", "Exempt", "Missing", "Position"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetAutoWrapText(false)
			table.SetColumnAlignment([]int{
				tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
			})

			var errs error
			count := 0

			for _, r := range reports {
				errs = multierr.Append(errs, r.err)

				for _, res := range r.report.Checked {
					pos := r.pkg.Fset.Position(res.Decl.Name.Pos())
					table.Append([]string{
						r.pkg.Name + "." + res.Name,
						res.TargetTypeName(),
						strings.Join(append(append([]string{}, res.Exempt...), res.Ignored...), ", "),
						fmt.Sprintf("%d", len(res.Missing)),
						fmt.Sprintf("%s:%d", relPath(dir, pos.Filename), pos.Line),
					})
					count++
				}
			}

			table.SetFooter([]string{fmt.Sprintf("Total %d", count), "", "", "", ""})
			table.Render()

			return errs
		},
	}

	cmd.Flags().BoolVar(&tests, "tests", false, "also list functions in _test.go files")

	return cmd
}

// relPath shortens file relative to dir (or the working directory).
func relPath(dir, file string) string {
	base, err := filepath.Abs(dir)
	if err != nil {
		return file
	}

	rel, err := filepath.Rel(base, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}

	return rel
}
