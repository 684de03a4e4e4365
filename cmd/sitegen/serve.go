package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var servePort int

const rebuildDebounce = 500 * time.Millisecond

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site, serve it locally, and rebuild on changes",
	Long: `Serve performs an initial build, then starts a local web server over the
output directory. The content and assets directories are watched; edits
trigger a debounced rebuild so the browser always sees current output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := runBuild(ctx, siteConfig); err != nil {
			return fmt.Errorf("initial build: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()

		go watchAndRebuild(watcher)

		for _, dir := range []string{siteConfig.ContentDir, siteConfig.AssetsDir} {
			if err := watchTree(watcher, dir); err != nil {
				return err
			}
		}

		addr := fmt.Sprintf(":%d", servePort)
		log.Printf("serving %s on http://localhost%s", siteConfig.OutputDir, addr)

		return http.ListenAndServe(addr, noCacheHandler(siteConfig.OutputDir))
	},
}

// watchAndRebuild drains watcher events and schedules a debounced rebuild.
// A burst of writes (editor save, git checkout) produces one build.
func watchAndRebuild(watcher *fsnotify.Watcher) {
	var timer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Printf("change detected: %s (%s)", event.Name, event.Op)

			// new subdirectories are not watched automatically
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						log.Printf("watch %s: %v", event.Name, err)
					}
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(rebuildDebounce, func() {
				if err := runBuild(context.Background(), siteConfig); err != nil {
					log.Printf("rebuild failed: %v", err)
					return
				}
				log.Println("site rebuilt")
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// watchTree registers every directory beneath root with the watcher. A
// missing root is skipped; a site without an assets directory is valid.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	if root == "" {
		return nil
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		log.Printf("directory %s not found, not watching", root)
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

// noCacheHandler serves the output directory with caching disabled so a
// rebuild is visible on the next refresh.
func noCacheHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		files.ServeHTTP(w, r)
	})
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 1313, "port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
