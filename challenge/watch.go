// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch runs the submission at path once, then again after every save,
// passing each outcome to onReport. Rapid saves are debounced. Watch
// blocks until ctx is done and then returns nil.
//
// The parent directory is watched rather than the file so that editors
// which save by rename keep triggering runs.
func (r *Runner) Watch(ctx context.Context, c *Challenge, path string, onReport func(*Report, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	log := r.logger.With(zap.String("challenge", c.ID), zap.String("path", abs))
	log.Debug("watching submission")

	rerun := func() {
		src, err := os.ReadFile(abs)
		if err != nil {
			onReport(nil, fmt.Errorf("failed to read submission: %w", err))
			return
		}
		onReport(r.Run(ctx, c, string(src)))
	}
	rerun()

	timer := time.NewTimer(r.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(r.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			rerun()
		}
	}
}
