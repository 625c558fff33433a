// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the directory
// holding the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the operations applied to a tree of integers
type Configuration struct {
	MaxNodes uint64               `gluamapper:"max_nodes" json:"max_nodes"`
	Insert   []int                `gluamapper:"insert" json:"insert"`
	Delete   []int                `gluamapper:"delete" json:"delete"`
	Search   []int                `gluamapper:"search" json:"search"`
	Print    bool                 `gluamapper:"print" json:"print"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the configuration used when no file is given
func defaultConfiguration() *Configuration {

	// the mapper merges into this map, so never share the global one
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		MaxNodes: 0, // unlimited
		Insert:   []int{},
		Delete:   []int{},
		Search:   []int{},
		Print:    false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)

	return options, nil
}

// if a path is relative make it relative to the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// convert command line arguments to keys
func parseKeys(arguments []string) ([]int, error) {
	keys := make([]int, 0, len(arguments))
	for _, s := range arguments {
		k, err := strconv.Atoi(s)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		keys = append(keys, k)
	}
	return keys, nil
}
