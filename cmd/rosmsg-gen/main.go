// Command rosmsg-gen writes typed Go structs for ROS message definitions.
//
// Every type found under the input roots gets one file,
// <output>/<package>/<lowercase name>.go, binding the struct to its schema
// through the registry package named by -registry.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/zphilip/handDetect/internal/config"
	"github.com/zphilip/handDetect/internal/observability"
	"github.com/zphilip/handDetect/msgs"
	"github.com/zphilip/handDetect/rosmsg"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	inputDirs := flag.String("input", "", "Comma-separated definition roots laid out as <package>/msg/<Name>.msg")
	outputDir := flag.String("output", "", "Output directory for generated Go code")
	packagePrefix := flag.String("prefix", "", "Go import path of the output directory")
	registryPkg := flag.String("registry", "", "Go import path of the package providing MustLookup")
	bundled := flag.Bool("bundled", true, "Also load the bundled definitions so inputs can depend on them")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *inputDirs, *outputDir, *packagePrefix, *registryPkg)

	logger, err := observability.SetupLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	reg, names, err := loadDefinitions(cfg.Paths, *bundled, logger)
	if err != nil {
		logger.Error("failed to load definitions", zap.Error(err))
		os.Exit(1)
	}

	opts := Options{Prefix: cfg.Generate.Prefix, Registry: cfg.Generate.Registry}
	for _, name := range names {
		s, err := reg.Lookup(name)
		if err != nil {
			logger.Error("failed to resolve message", zap.String("type", name), zap.Error(err))
			os.Exit(1)
		}
		file, err := generateMessage(s, cfg.Generate.Output, opts)
		if err != nil {
			logger.Error("failed to generate message", zap.String("type", name), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("generated", zap.String("type", name), zap.String("file", file))
	}

	fmt.Printf("Generation complete: %d messages\n", len(names))
}

// applyFlags lets non-empty command-line values override the config.
func applyFlags(cfg *config.Config, input, output, prefix, registry string) {
	if input != "" {
		cfg.Paths = nil
		for _, p := range strings.Split(input, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Paths = append(cfg.Paths, filepath.Clean(p))
			}
		}
	}
	if output != "" {
		cfg.Generate.Output = output
	}
	if prefix != "" {
		cfg.Generate.Prefix = prefix
		if registry == "" {
			cfg.Generate.Registry = prefix
		}
	}
	if registry != "" {
		cfg.Generate.Registry = registry
	}
}

// loadDefinitions builds a registry from the given roots and returns the
// names defined by them. With no roots the bundled set is generated.
func loadDefinitions(paths []string, bundled bool, logger *zap.Logger) (*rosmsg.Registry, []string, error) {
	reg := rosmsg.NewRegistry(rosmsg.WithLogger(logger))
	if len(paths) == 0 {
		if err := reg.AddFS(msgs.FS(), "."); err != nil {
			return nil, nil, fmt.Errorf("bundled definitions: %w", err)
		}
		return reg, reg.Names(), nil
	}

	own := rosmsg.NewRegistry(rosmsg.WithLogger(logger))
	for _, p := range paths {
		if err := own.AddFS(os.DirFS(p), "."); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	names := own.Names()
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("no .msg files under %s", strings.Join(paths, ", "))
	}

	if bundled {
		if err := reg.AddFS(msgs.FS(), "."); err != nil {
			return nil, nil, fmt.Errorf("bundled definitions: %w", err)
		}
	}
	for _, p := range paths {
		if err := reg.AddFS(os.DirFS(p), "."); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return reg, names, nil
}

func generateMessage(s *rosmsg.Schema, baseDir string, opts Options) (string, error) {
	pkgDir := filepath.Join(baseDir, sanitizePackageName(s.Package()))
	if err := os.MkdirAll(pkgDir, 0755); err != nil {
		return "", err
	}

	code, err := GenerateGoMessage(s, opts)
	if err != nil {
		return "", err
	}

	filename := filepath.Join(pkgDir, strings.ToLower(s.ShortName())+".go")
	return filename, os.WriteFile(filename, code, 0644)
}
