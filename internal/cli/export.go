package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/page"
	"github.com/yorkei04/portfolio/internal/web"
)

func newExportCmd() *cobra.Command {
	var (
		out         string
		contentFile string
		assetsDir   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static files",
		Long: `Export renders the portfolio page, the privacy page and the JSON API into a
directory that any static file host can serve. Tracking, the contact form
backend and the admin area need the server and are not exported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("content") {
				cfg.ContentFile = contentFile
			}
			if flags.Changed("assets") {
				cfg.AssetsDir = assetsDir
			}
			p, err := content.Load(cfg.ContentFile)
			if err != nil {
				return err
			}
			return export(exportOptions{
				Out:       out,
				AssetsDir: cfg.AssetsDir,
				Retention: cfg.VisitorRetention,
				Now:       time.Now(),
			}, p, loggerFromContext(ctx))
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&contentFile, "content", "", "TOML content file (built-in content when empty)")
	cmd.Flags().StringVar(&assetsDir, "assets", "", "directory holding the image/ folder")
	return cmd
}

type exportOptions struct {
	Out       string
	AssetsDir string
	Retention time.Duration
	Now       time.Time
}

func export(opts exportOptions, p content.Portfolio, logger *log.Logger) error {
	prog := newProgress(logger)

	tmpl, err := web.Templates(p)
	if err != nil {
		return err
	}

	var index bytes.Buffer
	if err := web.RenderPage(&index, tmpl, p, opts.Now); err != nil {
		return err
	}
	defs := page.Definitions(p)
	if err := web.VerifyAnchors(bytes.NewReader(index.Bytes()), defs); err != nil {
		return fmt.Errorf("rendered page: %w", err)
	}

	var privacy bytes.Buffer
	if err := web.RenderPrivacy(&privacy, tmpl, p, opts.Retention); err != nil {
		return err
	}

	files := map[string][]byte{
		"index.html":   index.Bytes(),
		"privacy.html": privacy.Bytes(),
	}
	for name, v := range map[string]any{"api/portfolio.json": p, "api/overlays.json": defs} {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		files[name] = b
	}
	for name, b := range files {
		if err := writeFile(filepath.Join(opts.Out, name), bytes.NewReader(b)); err != nil {
			return err
		}
	}

	n, err := copyTree(filepath.Join(opts.Out, "static"), web.Static())
	if err != nil {
		return err
	}
	logger.Debug("static assets copied", "files", n)

	if opts.AssetsDir != "" {
		images := filepath.Join(opts.AssetsDir, "image")
		switch _, err := os.Stat(images); {
		case err == nil:
			n, err := copyTree(filepath.Join(opts.Out, "image"), os.DirFS(images))
			if err != nil {
				return err
			}
			logger.Debug("images copied", "files", n)
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn("no image directory; pages will show initials", "dir", images)
		default:
			return fmt.Errorf("stat %s: %w", images, err)
		}
	}

	prog.done(fmt.Sprintf("Exported site to %s", opts.Out))
	return nil
}

// copyTree copies every regular file of src under dst and returns how many
// were written.
func copyTree(dst string, src fs.FS) (int, error) {
	n := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := src.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := writeFile(filepath.Join(dst, filepath.FromSlash(path)), f); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("copy into %s: %w", dst, err)
	}
	return n, nil
}

func writeFile(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
