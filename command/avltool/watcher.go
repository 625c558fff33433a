// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

// logger channel for file events
const fileWatcherLogTag = "watcher"

// events are dropped while a previous one is still pending
type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() watcherChannel {
	return watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

type fileWatcher struct {
	sync.WaitGroup
	log      *logger.L
	channels watcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channels watcherChannel) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrConfigurationFileMissing
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channels: channels,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - begin forwarding events for the file
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	w.Add(1)
	go w.loop()
	return nil
}

// Stop - close the watcher and wait for the loop to finish
func (w *fileWatcher) Stop() {
	w.watcher.Close()
	w.Wait()
}

func (w *fileWatcher) loop() {
	defer w.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("event for: %q discarded", event.Name)
				continue
			}

			if isRemoveEvent(event) {
				w.log.Warnf("file: %q removed, stop", w.filePath)
				w.send(w.channels.remove, "remove")
				return
			}

			if isChangeEvent(event) {
				w.send(w.channels.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *fileWatcher) send(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func isRemoveEvent(event fsnotify.Event) bool {
	return "" == event.Name || event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChangeEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

// run the configuration, then run it again each time the file changes
//
// returns when the file is removed or stop is closed
func watchConfiguration(w io.Writer, log *logger.L, fileName string, extra []int, stop <-chan struct{}) error {

	channels := newWatcherChannel()
	watcher, err := newFileWatcher(fileName, logger.New(fileWatcherLogTag), channels)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	rerun := func() {
		options, err := getConfiguration(fileName)
		if nil != err {
			log.Errorf("configuration: %q  error: %s", fileName, err)
			io.WriteString(w, "configuration error: "+err.Error()+"\n")
			return
		}
		if err := runScript(w, log, options, extra); nil != err {
			log.Errorf("run error: %s", err)
			io.WriteString(w, "run error: "+err.Error()+"\n")
		}
	}

	rerun()
	for {
		select {
		case <-channels.change:
			log.Info("configuration changed")
			io.WriteString(w, "--- reload\n")
			rerun()
		case <-channels.remove:
			log.Info("configuration removed")
			return nil
		case <-stop:
			return nil
		}
	}
}
