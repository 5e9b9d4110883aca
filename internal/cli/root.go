// Package cli implements the mda-render command.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yosssi/gohtml"

	"github.com/web3infra-foundation/mda-site/internal/platform/logging"
	"github.com/web3infra-foundation/mda-site/internal/site"
)

type renderOptions struct {
	output  string
	pretty  bool
	profile string
}

// NewRootCommand returns the mda-render command.
func NewRootCommand() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "mda-render",
		Short: "Render the MDA landing page to static HTML",
		Long: `Render the MDA landing page with the same configuration the server uses
and write it to a file or to stdout, ready for static hosting.

Configuration is read from configs/base.yaml, configs/<profile>.yaml and
APP_* environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the page to `file` instead of stdout")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the HTML output")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "configuration profile (default $APP_ENVIRONMENT or local)")

	return cmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func runRender(ctx context.Context, cmd *cobra.Command, opts *renderOptions) error {
	profile := opts.profile
	if profile == "" {
		profile = site.Profile()
	}

	cfg, err := site.LoadConfig(profile)
	if err != nil {
		return err
	}

	logger := logging.NewWithWriter(site.LoggingConfig(cfg), cmd.ErrOrStderr())
	ctx = logging.WithContext(ctx, logger)

	var buf bytes.Buffer
	if err := site.PageService(&cfg.Site).RenderLanding(ctx, &buf); err != nil {
		return err
	}

	page := buf.Bytes()
	if opts.pretty {
		page = gohtml.FormatBytes(page)
	}

	if opts.output == "" {
		return write(cmd.OutOrStdout(), page)
	}

	if err := writeFile(opts.output, page); err != nil {
		return err
	}

	logger.InfoContext(ctx, "landing page written",
		slog.String("path", opts.output),
		slog.Int("bytes", len(page)),
		slog.Bool("pretty", opts.pretty),
	)

	return nil
}

func write(w io.Writer, page []byte) error {
	if _, err := w.Write(page); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}

func writeFile(path string, page []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, page, 0o644); err != nil { //nolint:gosec // published HTML is world readable
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}
