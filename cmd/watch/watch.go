// Package watch provides the "refcat watch" command: re-render a catalog
// whenever its style file changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/klytics/refcat/cmd/generate"
	"github.com/klytics/refcat/internal/catalog"
	"github.com/klytics/refcat/internal/output"
	w "github.com/klytics/refcat/internal/watch"
)

// NewCommand returns the watch command.
func NewCommand() *cobra.Command {
	var (
		outputPath string
		stylePath  string
		debounce   int
	)

	cmd := &cobra.Command{
		Use:   "watch <catalog>",
		Short: "Re-render a catalog whenever its style file changes",
		Long: `Watches a YAML style file and regenerates the catalog on every save,
which makes tuning colors and widths a quick edit-and-look loop.

Example:
  refcat watch functions --style mystyle.yaml --output /tmp/cpp.xlsx`,
		ValidArgs: catalog.Names(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")
			name := args[0]

			if stylePath == "" {
				return fmt.Errorf("--style is required — the style file is what gets watched\n\nExample: refcat watch %s --style mystyle.yaml", name)
			}

			// Render once up front so a broken style file fails fast.
			writer := output.NewWriter(jsonFlag)
			summary, err := generate.RenderCatalog(name, outputPath, stylePath)
			if err != nil {
				return err
			}
			if err := writer.WriteSummary(summary); err != nil {
				return err
			}

			watcher, err := w.New(stylePath, time.Duration(debounce)*time.Millisecond)
			if err != nil {
				return err
			}
			watcher.Handler = func(path string) error {
				summary, err := generate.RenderCatalog(name, outputPath, path)
				if err != nil {
					return err
				}
				return writer.WriteSummary(summary)
			}

			fmt.Printf("Watching %s — press Ctrl+C to stop\n", stylePath)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			return watcher.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&outputPath, "output", "", "Output .xlsx path (defaults to the catalog's standard name)")
	cmd.Flags().StringVar(&stylePath, "style", "", "YAML style file to watch (required)")
	cmd.Flags().IntVar(&debounce, "debounce", 500, "Milliseconds to wait after a change before re-rendering")

	return cmd
}
