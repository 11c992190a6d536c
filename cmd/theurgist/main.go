package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/config"
	"github.com/udisondev/theurgist/internal/data"
	"github.com/udisondev/theurgist/internal/measure"
	"github.com/udisondev/theurgist/internal/spell"
)

const ConfigPath = "config/theurgist.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfgPath := ConfigPath
	if p := os.Getenv("THEURGIST_CONFIG"); p != "" {
		cfgPath = p
	}
	if opts.configPath != "" {
		cfgPath = opts.configPath
	}
	cfg, err := config.LoadTheurgist(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", cfgPath, "data_dir", cfg.DataDir, "output", cfg.Output)

	tables, err := data.Load(ctx, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("loading tables: %w", err)
	}

	formula, err := buildFormula(tables, opts)
	if err != nil {
		return err
	}
	slog.Debug("formula built", "formula", formula)

	rep := newReport(formula)
	switch cfg.Output {
	case config.OutputYAML:
		return rep.writeYAML(stdout)
	default:
		return rep.writeText(stdout)
	}
}

// options are the parsed command line flags.
type options struct {
	configPath string
	formula    codes.Formula
	additions  map[string]any
	modifiers  []modifierArg
	traits     []traitArg
}

func parseArgs(args []string) (options, error) {
	var (
		opts      options
		formula   string
		additions listFlag
		modifiers listFlag
		traits    listFlag
	)

	fs := flag.NewFlagSet("theurgist", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "config file path (default "+ConfigPath+")")
	fs.StringVar(&formula, "formula", "", "formula code, e.g. portal")
	fs.Var(&additions, "add", "formula parameter addition `param=value`, repeatable")
	fs.Var(&modifiers, "modifier", "modifier `code[:param=value,...]`, repeatable")
	fs.Var(&traits, "trait", "spell trait `code[=trap]`, repeatable")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if formula == "" {
		return opts, fmt.Errorf("-formula is required, one of %v", codes.AllFormulas())
	}
	code, err := codes.ParseFormula(formula)
	if err != nil {
		return opts, err
	}
	opts.formula = code

	if opts.additions, err = parseAdditions(additions); err != nil {
		return opts, fmt.Errorf("-add: %w", err)
	}
	for _, raw := range modifiers {
		m, err := parseModifierArg(raw)
		if err != nil {
			return opts, fmt.Errorf("-modifier %s: %w", raw, err)
		}
		opts.modifiers = append(opts.modifiers, m)
	}
	for _, raw := range traits {
		tr, err := parseTraitArg(raw)
		if err != nil {
			return opts, fmt.Errorf("-trait %s: %w", raw, err)
		}
		opts.traits = append(opts.traits, tr)
	}
	return opts, nil
}

func buildFormula(tables *data.Tables, opts options) (*spell.Formula, error) {
	modifiers := make([]any, 0, len(opts.modifiers))
	for _, m := range opts.modifiers {
		modifier, err := spell.NewModifier(m.code, tables.Modifiers, m.additions)
		if err != nil {
			return nil, err
		}
		modifiers = append(modifiers, modifier)
	}

	traits := make([]any, 0, len(opts.traits))
	for _, tr := range opts.traits {
		trait, err := spell.NewSpellTrait(tr.code, tables.SpellTraits, tr.trapChange)
		if err != nil {
			return nil, err
		}
		traits = append(traits, trait)
	}

	return spell.NewFormula(opts.formula, tables.Formulas, measure.DistanceTable{}, opts.additions, modifiers, traits)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
