// Package main provides the CLI entry point for stitchshot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/stitchshot/pkg/ports"
)

var version = "dev"

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:        "stitchshot",
		Usage:       l10n.T("Stitch scrollable containers into a single image"),
		Description: l10n.T("stitchshot measures every item of a container, scales the column to fit and writes one image."),
		Version:     version,
		Commands: []*cli.Command{
			renderCommand(),
			pagesCommand(),
			versionCommand(),
		},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    l10n.T("YAML configuration file"),
			Category: l10n.T("Input"),
		},
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Output image path"),
			Category: l10n.T("Output"),
		},
		&cli.IntFlag{
			Name:     "quality",
			Aliases:  []string{"q"},
			Usage:    l10n.T("JPEG quality (0-100)"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "format",
			Usage:    l10n.T("Output format (jpeg, png)"),
			Category: l10n.T("Output"),
		},
		&cli.BoolFlag{
			Name:     "debug",
			Aliases:  []string{"d"},
			Usage:    l10n.T("Enable debug output"),
			Category: l10n.T("Debug"),
		},
		&cli.StringFlag{
			Name:     "debug-dir",
			Usage:    l10n.T("Directory for debug output"),
			Category: l10n.T("Debug"),
		},
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Usage:    l10n.T("Log level (debug, info, warn, error)"),
			Category: l10n.T("Logging"),
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"Q"},
			Usage:    l10n.T("Suppress all log output"),
			Category: l10n.T("Logging"),
		},
	}
}

func renderCommand() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:     "mode",
			Aliases:  []string{"m"},
			Usage:    l10n.T("Container type (view, scroll, list, recycler)"),
			Category: l10n.T("Input"),
		},
		&cli.IntFlag{
			Name:     "width",
			Aliases:  []string{"W"},
			Usage:    l10n.T("Output image width"),
			Category: l10n.T("Output"),
		},
		&cli.IntFlag{
			Name:     "height",
			Aliases:  []string{"H"},
			Usage:    l10n.T("Output image height"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "background",
			Usage:    l10n.T("Background image file (PNG, JPEG, SVG)"),
			Category: l10n.T("Decoration"),
		},
		&cli.StringFlag{
			Name:     "background-color",
			Usage:    l10n.T("Background color (hex, e.g., #f0f0f0)"),
			Category: l10n.T("Decoration"),
		},
		&cli.StringFlag{
			Name:     "logo",
			Usage:    l10n.T("Logo image file (PNG, JPEG, SVG)"),
			Category: l10n.T("Decoration"),
		},
		&cli.StringFlag{
			Name:     "logo-text",
			Usage:    l10n.T("Generate a text logo"),
			Category: l10n.T("Decoration"),
		},
		&cli.StringFlag{
			Name:     "summary",
			Usage:    l10n.T("Output execution summary to file (Markdown format)"),
			Category: l10n.T("Output"),
		},
	)

	return &cli.Command{
		Name:        "render",
		Usage:       l10n.T("Capture a container into one scaled image"),
		Description: l10n.T("Measure every item, scale the column to the output height and write a single image."),
		Flags:       flags,
		Action:      runRender,
	}
}

func pagesCommand() *cli.Command {
	return &cli.Command{
		Name:        "pages",
		Usage:       l10n.T("Capture a scroll container one viewport at a time"),
		Description: l10n.T("Scroll by the viewport height and write one image per page, prefixed with its index."),
		Flags:       commonFlags(),
		Action:      runPages,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("stitchshot version %s", version))
			return nil
		},
	}
}

// withSignals cancels the returned context on SIGINT or SIGTERM.
func withSignals(parent context.Context, log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
