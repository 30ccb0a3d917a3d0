// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vehicled/configuration"
	"github.com/bitmark-inc/vehicled/fault"
	"github.com/bitmark-inc/vehicled/processor"
)

// basic defaults (directories and files are relative to the
// directory of the configuration file)
const (
	defaultFamily = "vehicle"

	defaultLevelDBDirectory = "data"
	defaultDatabaseName     = "vehicle.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "vehicled.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - the database location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon settings
type Configuration struct {
	DataDirectory string                  `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                  `gluamapper:"pidfile" json:"pidfile"`
	Family        string                  `gluamapper:"family" json:"family"`
	Database      DatabaseType            `gluamapper:"database" json:"database"`
	Processor     processor.Configuration `gluamapper:"processor" json:"processor"`
	Logging       logger.Configuration    `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: dataDirectory,
		PidFile:       "", // no PidFile by default
		Family:        defaultFamily,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabaseName,
		},

		Processor: processor.Configuration{
			Bind:        processor.DefaultBind,
			MaximumRate: processor.DefaultMaximumRate,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if "" == options.Family {
		return nil, fault.MissingFamilyName
	}
	if "" == options.Database.Name {
		return nil, fault.MissingDatabaseName
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = ensureAbsolute(options.DataDirectory, *f)
		}
	}

	return options, nil
}

// ensureAbsolute - if not absolute, prepend the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// databaseFile - the absolute path of the LevelDB database
func (configuration *Configuration) databaseFile() string {
	return filepath.Join(configuration.Database.Directory, configuration.Database.Name)
}
