package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/bkclock/pkg/errors"
)

// watchedOps are the events that can change what Resolve returns.
const watchedOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove

// Watch calls onChange whenever bkclock.yaml in dir is created, written,
// renamed or removed, until ctx is done. The directory is watched rather
// than the file so that editors which replace the file on save are seen.
//
// onChange runs on the watcher's goroutine. Watcher failures after start
// are reported through the error handler.
func Watch(ctx context.Context, dir string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New("config.Watch", errors.KindConfig, err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return errors.New("config.Watch", errors.KindConfig, err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != FileName || ev.Op&watchedOps == 0 {
					continue
				}
				onChange()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Report("config.Watch", errors.New("config.Watch", errors.KindConfig, err))
			}
		}
	}()
	return nil
}
