package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-format a file every time it changes",
	Long: `Watch formats the file once, then blocks and re-formats it on every
write. Useful in a side-by-side terminal while editing a document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Clean(args[0])
		opts, err := layoutOptions()
		if err != nil {
			return err
		}

		emit := func() {
			if err := formatFile(path, opts); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			}
		}
		emit()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer watcher.Close()

		// Watch the directory, not the file: editors that write via
		// rename would otherwise drop the watch.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return err
		}

		var last time.Time
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				// editors fire bursts of writes; collapse them
				if time.Since(last) < 50*time.Millisecond {
					continue
				}
				last = time.Now()
				slog.Debug("change detected", "event", ev.Op.String())
				fmt.Println("---")
				emit()
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				slog.Warn("watch error", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVarP(&fmtWidth, "width", "w", 80, "Target page width in columns")
	watchCmd.Flags().StringVar(&fmtPolicy, "policy", "pretty", "Layout policy: pretty, smart or compact")
	watchCmd.Flags().BoolVar(&fmtColor, "color", false, "Colorize output")
}
