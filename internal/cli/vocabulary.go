package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func yearsCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "years",
		Short: "Manage the year list",
	}

	var skipConfirm bool
	del := &cobra.Command{
		Use:   "delete <year>",
		Short: "Delete a year no entry uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := parseYear(args[0])
			if err != nil {
				return err
			}
			if err := s.authorize(); err != nil {
				return err
			}
			ok, err := s.confirm(fmt.Sprintf("Delete year %d?", y), skipConfirm)
			if err != nil || !ok {
				return err
			}
			return describe(s.app.Taxonomy.DeleteYear(cmd.Context(), y))
		},
	}
	del.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip confirmation prompt")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List years",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				for _, y := range s.app.Taxonomy.Years() {
					fmt.Fprintln(cmd.OutOrStdout(), y)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <year>",
			Short: "Add a year",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				y, err := parseYear(args[0])
				if err != nil {
					return err
				}
				if err := s.authorize(); err != nil {
					return err
				}
				return s.app.Taxonomy.AddYear(cmd.Context(), y)
			},
		},
		&cobra.Command{
			Use:   "rename <old> <new>",
			Short: "Rename a year and move its entries",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				oldY, err := parseYear(args[0])
				if err != nil {
					return err
				}
				newY, err := parseYear(args[1])
				if err != nil {
					return err
				}
				if err := s.authorize(); err != nil {
					return err
				}
				return describe(s.app.Reconciler.RenameYear(cmd.Context(), oldY, newY))
			},
		},
		del,
	)
	return cmd
}

func categoriesCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Manage the category list",
	}

	var deletable bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats := s.app.Taxonomy.Categories()
			if deletable {
				cats = s.app.Taxonomy.Deletable()
			}
			for _, c := range cats {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&deletable, "deletable", false, "only categories that may be renamed or deleted")

	var skipConfirm bool
	del := &cobra.Command{
		Use:   "delete <category>",
		Short: "Delete a category no entry uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.authorize(); err != nil {
				return err
			}
			ok, err := s.confirm(fmt.Sprintf("Delete category %q?", args[0]), skipConfirm)
			if err != nil || !ok {
				return err
			}
			return describe(s.app.Taxonomy.DeleteCategory(cmd.Context(), args[0]))
		},
	}
	del.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip confirmation prompt")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "add <category>",
			Short: "Add a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := s.authorize(); err != nil {
					return err
				}
				return s.app.Taxonomy.AddCategory(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "rename <old> <new>",
			Short: "Rename a category and move its entries",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := s.authorize(); err != nil {
					return err
				}
				return describe(s.app.Reconciler.RenameCategory(cmd.Context(), args[0], args[1]))
			},
		},
		del,
	)
	return cmd
}

func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil || y <= 0 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return y, nil
}
