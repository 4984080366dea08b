// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override flag defaults.
const (
	envWorkers  = "HAFBENCH_WORKERS"
	envSeed     = "HAFBENCH_SEED"
	envDB       = "HAFBENCH_DB"
	envLogLevel = "HAFBENCH_LOG_LEVEL"
	envFile     = ".env"
)

// config holds flag defaults resolved from the environment.
type config struct {
	workers  int
	seed     int64
	db       string
	logLevel string
	warnings []string // malformed variables, reported once the logger exists
}

// loadEnv reads an optional .env file, then HAFBENCH_* variables.
// Variables already set in the process environment win over the file.
func loadEnv() config {
	cfg := config{seed: 1, logLevel: "info"}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		cfg.warnings = append(cfg.warnings, envFile+": "+err.Error())
	}

	if v, ok := os.LookupEnv(envWorkers); ok {
		if k, err := strconv.Atoi(v); err == nil && k >= 0 {
			cfg.workers = k
		} else {
			cfg.warnings = append(cfg.warnings, envWorkers+"="+v)
		}
	}
	if v, ok := os.LookupEnv(envSeed); ok {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.seed = s
		} else {
			cfg.warnings = append(cfg.warnings, envSeed+"="+v)
		}
	}
	cfg.db = os.Getenv(envDB)
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.logLevel = strings.ToLower(v)
	}

	return cfg
}

// parseLevel maps debug|info|warn|error onto slog levels.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(s))

	return lvl, err
}
