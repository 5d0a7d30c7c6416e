package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/zphilip/handDetect/internal/config"
	"github.com/zphilip/handDetect/internal/export"
	"github.com/zphilip/handDetect/internal/observability"
	"github.com/zphilip/handDetect/msgs"
	"github.com/zphilip/handDetect/rosmsg"
)

var errUsage = errors.New("usage: rosmsg [-config FILE] list|md5|show|size|header|decode ...")

// app carries what every subcommand needs.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	types  *rosmsg.Registry
	codecs *export.Registry
	stdout io.Writer
}

type command func(a *app, args []string) error

var commands = map[string]command{
	"list":   cmdList,
	"md5":    cmdMD5,
	"show":   cmdShow,
	"size":   cmdSize,
	"header": cmdHeader,
	"decode": cmdDecode,
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("rosmsg", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", name, errUsage)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := observability.SetupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	types, err := loadTypes(cfg.Paths, logger)
	if err != nil {
		return err
	}
	codecs, err := export.NewRegistry()
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, log: logger, types: types, codecs: codecs, stdout: stdout}
	logger.Debug("running command", zap.String("command", name), zap.Strings("args", fs.Args()[1:]))
	if err := cmd(a, fs.Args()[1:]); err != nil {
		logger.Debug("command failed", zap.String("command", name), zap.Error(err))
		return err
	}
	return nil
}

// loadTypes registers the bundled definitions followed by each extra root.
func loadTypes(paths []string, logger *zap.Logger) (*rosmsg.Registry, error) {
	r := rosmsg.NewRegistry(rosmsg.WithLogger(logger))
	if err := r.AddFS(msgs.FS(), "."); err != nil {
		return nil, fmt.Errorf("bundled definitions: %w", err)
	}
	for _, p := range paths {
		if err := r.AddFS(os.DirFS(p), "."); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return r, nil
}
