package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/sant0-9/expert/internal/answer"
	"github.com/sant0-9/expert/internal/config"
	"github.com/sant0-9/expert/internal/llm"
	"github.com/sant0-9/expert/internal/logger"
	"github.com/sant0-9/expert/internal/tui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		fmt.Fprintln(stdout, version)
		return 0
	}

	config.LoadDotEnv()

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: load config: %v\n", err)
		return 1
	}

	secrets, err := config.LoadSecrets(opts.Secrets)
	if err != nil {
		color.New(color.FgYellow).Fprintf(stderr, "Warning: %v (falling back to environment)\n", err)
		secrets = config.Secrets{}
	}
	cred := config.ResolveAPIKey(secrets, os.LookupEnv)

	log := logger.New(logger.Options{
		FilePath: cfg.LogPath(),
		Console:  opts.oneShot() && opts.Debug,
		Debug:    opts.Debug,
	})
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("version", version),
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
		zap.String("key_source", cred.Source),
	)

	var provider llm.Provider
	if cred.Found() {
		provider, err = llm.NewProvider(cfg, cred.Value)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	gen := answer.NewGenerator(answer.Settings{
		APIKey:      cred.Value,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout(),
	}, provider, log)

	switch {
	case opts.Check:
		return check(cfg, cred, provider, stdout, stderr)
	case opts.Question != "":
		return ask(gen, opts, stdout, stderr)
	}

	p := tea.NewProgram(tui.NewApp(gen, cfg, cred, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("tui exited", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func ask(gen *answer.Generator, opts *Options, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result := gen.Generate(ctx, opts.Question, opts.Persona)
	if !result.OK() {
		color.New(color.FgRed).Fprintln(stderr, result.String())
		return 1
	}
	fmt.Fprintln(stdout, result.String())
	return 0
}

func check(cfg *config.Config, cred config.Credential, provider llm.Provider, stdout, stderr io.Writer) int {
	if !cred.Found() {
		color.New(color.FgRed).Fprintln(stderr, answer.ConfigError(fmt.Sprintf("%s is not set in the secrets file or the environment.", config.APIKeyName)).String())
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	if err := provider.Ping(ctx); err != nil {
		color.New(color.FgRed).Fprintf(stderr, "%s: %v\n", provider.Name(), err)
		return 1
	}

	color.New(color.FgGreen).Fprintf(stdout, "%s: key from %s accepted (%s)\n", provider.Name(), cred.Source, cred.Masked())
	return 0
}
