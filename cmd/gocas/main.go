package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/gocas/gocas"
	"github.com/gocas/gocas/pkg/types"
)

var (
	version = "dev"
	commit  = "none"
)

type config struct {
	SigFigs   int `yaml:"sig_figs"`
	MaxPasses int `yaml:"max_passes"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("service", "gocas").Logger().
		Level(level)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
	}
	logger.Debug().Str("version", version).Str("commit", commit).
		Int("sig_figs", cfg.SigFigs).Int("max_passes", cfg.MaxPasses).
		Msg("starting")

	session := gocas.NewSession(
		gocas.WithSigFigs(cfg.SigFigs),
		gocas.WithMaxPasses(cfg.MaxPasses),
	)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		res, err := session.Submit(line)
		if err != nil {
			printError(line, err)
			continue
		}
		for _, row := range res.Output.Grid {
			fmt.Println(row)
		}
		if res.Value != nil && res.Value.OneLine != res.Output.OneLine {
			fmt.Println("=", res.Value.OneLine)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal().Err(err).Msg("reading input")
	}
}

// printError points at the offending position when the error carries one.
func printError(line string, err error) {
	var cerr *types.Error
	if errors.As(err, &cerr) && cerr.Position >= 0 && cerr.Position <= len(line) {
		fmt.Println("  " + strings.Repeat(" ", cerr.Position) + "^")
	}
	fmt.Println("error:", err)
}
