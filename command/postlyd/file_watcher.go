// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/postly/fault"
)

// FileWatcher - report changes to a single file
type FileWatcher interface {
	Start() error
	Stop()
}

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

type fileWatcherData struct {
	log      *logger.L
	channels WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

// WatcherChannel - events delivered to the owner of a watcher
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func newFileWatcher(targetFile string, log *logger.L, channels WatcherChannel) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrConfigurationNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcherData{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
	}, nil
}

// Start - watch the directory so editors that replace the file are seen
func (w *fileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.filePath {
					continue
				}
				w.log.Debugf("file event: %v", event)

				if watcherEventFileRemove(event) {
					w.log.Warnf("file %s removed", w.filePath)
					w.sendEvent(w.channels.remove, "remove")
					continue
				}
				if watcherEventFileChange(event) {
					w.sendEvent(w.channels.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Stop - release the watcher, the event loop exits
func (w *fileWatcherData) Stop() {
	_ = w.watcher.Close()
}

// a full channel already carries a pending event
func (w *fileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}

// reload the log levels whenever the configuration file changes
func reloadLogLevels(configurationFileName string, log *logger.L, channels WatcherChannel, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case <-channels.change:
			levels, err := getLogLevels(configurationFileName)
			if nil != err {
				log.Errorf("reload log levels from: %q error: %s", configurationFileName, err)
				continue
			}
			logger.LoadLevels(levels)
			log.Infof("log levels reloaded: %v", levels)
		case <-channels.remove:
			log.Warnf("configuration file: %q removed, keeping current levels", configurationFileName)
		}
	}
}
