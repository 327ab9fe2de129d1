package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/grandboard/internal/filter"
)

func listCommand(s *session) *cobra.Command {
	var (
		spec   filter.Spec
		output string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries",
		Long: `List catalog entries. Every filter is optional and must match exactly.

Examples:
  grandboard list
  grandboard list --category Livre --year 2025
  grandboard list --theme1 Climat --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if spec.Month < 0 || spec.Month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}
			entries := spec.Apply(s.app.Reconciler.Entries())
			return renderEntries(cmd.OutOrStdout(), entries, output, s.app.Reconciler.Pending())
		},
	}

	cmd.Flags().StringVar(&spec.Category, "category", "", "only this category")
	cmd.Flags().StringVar(&spec.Theme1, "theme1", "", "only this first theme")
	cmd.Flags().StringVar(&spec.Theme2, "theme2", "", "only this second theme")
	cmd.Flags().IntVar(&spec.Month, "month", 0, "only this month (1-12)")
	cmd.Flags().IntVar(&spec.Year, "year", 0, "only this year")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or yaml")
	return cmd
}

func themesCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the theme values in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t1, t2 := filter.Themes(s.app.Reconciler.Entries())
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Theme 1:")
			for _, t := range t1 {
				fmt.Fprintln(w, "  "+t)
			}
			fmt.Fprintln(w, "Theme 2:")
			for _, t := range t2 {
				fmt.Fprintln(w, "  "+t)
			}
			return nil
		},
	}
}

func syncCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reload the catalog and report unconfirmed local changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := s.app.Reconciler.LoadAll(cmd.Context())
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d entries\n", len(entries))
			if p := s.app.Reconciler.Pending(); len(p) > 0 {
				fmt.Fprintf(w, "%d local changes not confirmed by the server:\n", len(p))
				for _, id := range p {
					fmt.Fprintln(w, "  "+id)
				}
			}
			return nil
		},
	}
}
