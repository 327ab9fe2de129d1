package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/grandboard/internal/models"
)

func saveCommand(s *session) *cobra.Command {
	var (
		id        string
		d         models.Draft
		imageFile string
	)
	now := time.Now()

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create an entry, or replace one with --id",
		Long: `Create or replace an entry. Without --id a new entry is created.

An image given with --image-file is uploaded first; if the upload fails
nothing is saved. The uploaded image replaces any --image-url.

Examples:
  grandboard save --title "Dune" --category Livre --theme1 SF
  grandboard save --id 1b9d... --title "Dune (2021)" --category Film --image-file cover.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.authorize(); err != nil {
				return err
			}

			if imageFile != "" {
				f, err := os.Open(imageFile)
				if err != nil {
					return fmt.Errorf("open image: %w", err)
				}
				defer f.Close()
				d.Image = &models.ImageFile{
					Name:        filepath.Base(imageFile),
					ContentType: mime.TypeByExtension(filepath.Ext(imageFile)),
					Body:        f,
				}
			}

			e, err := s.app.Reconciler.Save(cmd.Context(), d, id)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", e.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&id, "id", "", "id of the entry to replace")
	f.StringVar(&d.Title, "title", "", "title")
	f.StringVar(&d.Category, "category", "", "category")
	f.StringVar(&d.Theme1, "theme1", "", "first theme")
	f.StringVar(&d.Theme2, "theme2", "", "second theme")
	f.StringVar(&d.Description, "description", "", "description (first 200 characters are kept)")
	f.StringVar(&d.Link, "link", "", "link")
	f.IntVar(&d.Month, "month", int(now.Month()), "month (1-12)")
	f.IntVar(&d.Year, "year", now.Year(), "year")
	f.StringVar(&d.ImageURL, "image-url", "", "image URL")
	f.StringVar(&imageFile, "image-file", "", "image file to upload")
	return cmd
}

func deleteCommand(s *session) *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry and its uploaded image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.authorize(); err != nil {
				return err
			}
			ok, err := s.confirm("Delete this entry?", skipConfirm)
			if err != nil || !ok {
				return err
			}
			if err := s.app.Reconciler.Delete(cmd.Context(), args[0]); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip confirmation prompt")
	return cmd
}
