package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yorkei04/portfolio/internal/browser"
	"github.com/yorkei04/portfolio/internal/content"
)

// errCheckFailed is returned when the site disagrees with the model.
var errCheckFailed = errors.New("check failed")

func newCheckCmd() *cobra.Command {
	var (
		url         string
		contentFile string
		timeout     time.Duration
		width       int
		height      int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare a running site's overlays with the interaction model",
		Long: `Check opens the site in headless Chrome, verifies that every anchor the
overlays need is on the page, then hovers each project card and scrolls to
each showcased section. After every step it compares the overlays the page
script shows with what the interaction model computes from the same page.

Requires Chrome or Chromium to be installed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			p, err := content.Load(contentFile)
			if err != nil {
				return err
			}

			tab, err := browser.Open(ctx, url, browser.Options{
				Timeout: timeout,
				Width:   width,
				Height:  height,
				Logger:  logger,
			})
			if err != nil {
				return err
			}
			defer tab.Close()

			prog := newProgress(logger)
			report, err := browser.Check(tab, url, p, logger)
			if err != nil {
				return err
			}
			prog.done("Check finished")

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, renderReport(report))
			}
			if n := report.Failed(); n > 0 {
				return fmt.Errorf("%w: %d of %d steps", errCheckFailed, n, len(report.Steps))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:8080/", "site to check")
	cmd.Flags().StringVar(&contentFile, "content", "", "TOML content file the site serves (built-in content when empty)")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "browser session timeout")
	cmd.Flags().IntVar(&width, "width", 1440, "viewport width")
	cmd.Flags().IntVar(&height, "height", 900, "viewport height")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
