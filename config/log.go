// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/jaxnet/btcrpc/corelog"
	"gitlab.com/jaxnet/btcrpc/metrics"
	"gitlab.com/jaxnet/btcrpc/network/rpcclient"
	"gitlab.com/jaxnet/btcrpc/txmodels"
)

const (
	LogUnitRPCC = "RPCC"
	LogUnitTXMD = "TXMD"
	LogUnitMETR = "METR"
	LogUnitTOOL = "TOOL"
)

// subsystemLoggers maps each unit to the hook that installs its logger.
// The TOOL unit belongs to the application and has no package hook.
var subsystemLoggers = map[string]func(zerolog.Logger){
	LogUnitRPCC: rpcclient.UseLogger,
	LogUnitTXMD: txmodels.UseLogger,
	LogUnitMETR: metrics.UseLogger,
	LogUnitTOOL: nil,
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsystems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// parseDebugLevels parses either a single level applied to every unit or a
// comma separated list of <unit>=<level> pairs. Units left out of the list
// keep the default level.
func parseDebugLevels(debugLevel string) (map[string]zerolog.Level, error) {
	levels := make(map[string]zerolog.Level, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		levels[subsysID] = corelog.DefaultLevel
	}
	if debugLevel == "" {
		return levels, nil
	}

	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		level, err := zerolog.ParseLevel(strings.ToLower(debugLevel))
		if err != nil {
			return nil, fmt.Errorf("the specified debug level [%v] is invalid", debugLevel)
		}
		for subsysID := range levels {
			levels[subsysID] = level
		}
		return levels, nil
	}

	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		subsysID, logLevel, ok := strings.Cut(logLevelPair, "=")
		if !ok {
			return nil, fmt.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%v]", logLevelPair)
		}

		subsysID = strings.ToUpper(strings.TrimSpace(subsysID))
		if _, exists := subsystemLoggers[subsysID]; !exists {
			return nil, fmt.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID, supportedSubsystems())
		}

		level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(logLevel)))
		if err != nil {
			return nil, fmt.Errorf("the specified debug level [%v] is invalid", logLevel)
		}
		levels[subsysID] = level
	}
	return levels, nil
}

// SetupLogging installs a logger for every library unit according to
// DebugLevel and returns the logger of the TOOL unit.
func (cfg *Config) SetupLogging() (zerolog.Logger, error) {
	levels, err := parseDebugLevels(cfg.DebugLevel)
	if err != nil {
		return corelog.Disabled, err
	}

	logConfig := cfg.Log
	logConfig.Directory = cleanAndExpandPath(logConfig.Directory)

	for subsysID, useLogger := range subsystemLoggers {
		if useLogger != nil {
			useLogger(corelog.New(subsysID, levels[subsysID], logConfig))
		}
	}
	return corelog.New(LogUnitTOOL, levels[LogUnitTOOL], logConfig), nil
}
