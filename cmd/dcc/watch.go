/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"
)

func newWatchCmd(params *dccParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [files...]",
		Short: "check DC files and check them again on every change, until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := dcFiles(params, args)
			if err != nil {
				return err
			}
			return watch(cmd.Context(), params, files)
		},
	}
	cmd.SilenceErrors = true
	return cmd
}

func watch(ctx context.Context, params *dccParams, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// directories are watched, editors replace files on save
	watched := make([]string, 0, len(files))
	dirs := make([]string, 0)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched = append(watched, abs)
		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			if err := watcher.Add(dir); err != nil {
				return err
			}
			dirs = append(dirs, dir)
		}
	}

	check := func() {
		file, res, err := params.loader.Load(files...)
		switch {
		case err != nil && res == nil:
			logger.Error(err)
		case err != nil:
			fmt.Fprintf(params.out, "%d error(s), %d warning(s)\n", res.Errors(), res.Warnings())
		default:
			fmt.Fprintf(params.out, "ok, hash 0x%08x\n", file.Hash())
		}
	}
	check()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !slices.Contains(watched, event.Name) {
				continue
			}
			if logger.IsVerbose() {
				logger.Verbose(event.Op.String(), event.Name)
			}
			check()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher:", err)
		}
	}
}
