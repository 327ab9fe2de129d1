package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/grandboard/internal/app"
	"github.com/dmitrijs2005/grandboard/internal/buildinfo"
	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/config"
)

// Opener builds the application once flags are parsed.
type Opener func(ctx context.Context, cfg *config.Config) (*app.App, error)

// session is shared by all commands of one invocation.
type session struct {
	cfg  *config.Config
	open Opener
	app  *app.App
	code string
	in   *bufio.Reader
	out  io.Writer
}

// Run builds the command tree, executes args and closes the application.
func Run(ctx context.Context, cfg *config.Config, open Opener, args []string, in io.Reader, out io.Writer) error {
	s := &session{cfg: cfg, open: open, in: bufio.NewReader(in), out: out}

	root := rootCommand(s)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(ctx)
	if s.app != nil {
		if cerr := s.app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func rootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "grandboard",
		Short:         "Shared catalog of cultural references",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.start(cmd.Context())
		},
	}

	config.RegisterFlags(root.PersistentFlags(), s.cfg)
	root.PersistentFlags().StringVar(&s.code, "code", "", "access code for commands that change data")

	root.AddCommand(
		listCommand(s),
		themesCommand(s),
		saveCommand(s),
		deleteCommand(s),
		syncCommand(s),
		yearsCommand(s),
		categoriesCommand(s),
		versionCommand(),
	)
	return root
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// No application needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

// start opens the application and reloads the catalog.
func (s *session) start(ctx context.Context) error {
	if s.app != nil {
		return nil
	}
	a, err := s.open(ctx, s.cfg)
	if err != nil {
		return err
	}
	s.app = a
	a.Reconciler.LoadAll(ctx)
	return nil
}

// authorize checks the access code, prompting for it when --code is absent.
func (s *session) authorize() error {
	code := s.code
	if code == "" {
		var err error
		if code, err = GetAccessCode(s.out); err != nil {
			return fmt.Errorf("read access code: %w", err)
		}
	}
	return s.app.Gate.Check(code)
}

func (s *session) confirm(prompt string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}
	return Confirm(s.in, prompt, s.out)
}

// describe turns sentinel errors into user-facing guidance.
func describe(err error) error {
	switch {
	case errors.Is(err, common.ErrVocabularyInUse):
		return fmt.Errorf("%w: edit or delete those entries first", err)
	case errors.Is(err, common.ErrRemoteWrite):
		return fmt.Errorf("could not save online, local copy kept until next sync: %w", err)
	case errors.Is(err, common.ErrImageUpload):
		return fmt.Errorf("nothing was saved: %w", err)
	}
	return err
}
