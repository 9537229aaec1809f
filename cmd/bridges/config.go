// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment fallbacks for flags left unset.
const (
	envLevels   = "BRIDGES_LEVELS"
	envLogLevel = "BRIDGES_LOG_LEVEL"
	envDev      = "BRIDGES_DEV"
)

type config struct {
	levelsPath string
	levelID    string
	start      string
	at         string
	logLevel   string
	dev        bool
	delay      time.Duration

	command string
	args    []string
}

// parseConfig reads flags from args, then fills unset values from the
// environment through getenv.
func parseConfig(args []string, stderr io.Writer, getenv func(string) string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("bridges", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.levelsPath, "levels", "", "YAML level catalogue (default: built-in levels; env "+envLevels+")")
	fs.StringVar(&cfg.levelID, "level", "konigsberg", "level ID")
	fs.StringVar(&cfg.start, "start", "", "preferred start node for solve")
	fs.StringVar(&cfg.at, "at", "", "current node for hint, assuming no bridge is crossed yet (empty: not started); pass a walk after hint instead to advise mid-game")
	fs.StringVar(&cfg.logLevel, "log-level", "", "debug, info, warn or error (default info; env "+envLogLevel+")")
	fs.BoolVar(&cfg.dev, "dev", false, "human-readable development logs (env "+envDev+")")
	fs.DurationVar(&cfg.delay, "delay", 0, "pause between narrated steps for solve and play")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bridges [flags] levels|classify|solve|hint [nodes...]|analyze|play [nodes...]|version")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["levels"] {
		cfg.levelsPath = getenv(envLevels)
	}
	if !set["log-level"] {
		cfg.logLevel = getenv(envLogLevel)
	}
	if cfg.logLevel == "" {
		cfg.logLevel = "info"
	}
	if !set["dev"] {
		if v := getenv(envDev); v != "" {
			dev, err := strconv.ParseBool(v)
			if err != nil {
				return cfg, fmt.Errorf("%s=%q: %w", envDev, v, err)
			}
			cfg.dev = dev
		}
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return cfg, errUsage
	}
	cfg.command = fs.Arg(0)
	cfg.args = fs.Args()[1:]

	return cfg, nil
}

// newLogger writes JSON (or console text with dev) to w.
func newLogger(cfg config, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.logLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	encCfg := zap.NewProductionEncoderConfig()
	enc := zapcore.NewJSONEncoder(encCfg)
	if cfg.dev {
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)

	opts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(w))}
	if cfg.dev {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}

	return zap.New(core, opts...), nil
}
