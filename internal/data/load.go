// Package data ships the theurgist tables as YAML files and implements the
// table contracts of package spell on top of them.
package data

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var embedded embed.FS

const (
	formulasFile    = "formulas.yaml"
	modifiersFile   = "modifiers.yaml"
	spellTraitsFile = "spell_traits.yaml"
)

// ErrRequiredRowNotFound is returned when a table lacks a row every code of
// its family must have.
var ErrRequiredRowNotFound = errors.New("required row not found")

// ErrInvalidRow wraps any cell that fails validation while loading.
var ErrInvalidRow = errors.New("invalid table row")

// Tables holds the three loaded tables. Read-only after Load, safe to share.
type Tables struct {
	Formulas    *FormulasTable
	Modifiers   *ModifiersTable
	SpellTraits *SpellTraitsTable
}

// Load reads the tables from dir, or from the embedded copies when dir is
// empty. The three files are parsed concurrently.
func Load(ctx context.Context, dir string) (*Tables, error) {
	src, err := source(dir)
	if err != nil {
		return nil, err
	}

	var t Tables
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var records map[string]formulaRecord
		if err := readTable(gctx, src, formulasFile, &records); err != nil {
			return err
		}
		table, err := newFormulasTable(records)
		if err != nil {
			return fmt.Errorf("%s: %w", formulasFile, err)
		}
		t.Formulas = table
		slog.Info("loaded formulas table", "count", len(table.rows))
		return nil
	})

	g.Go(func() error {
		var records map[string]modifierRecord
		if err := readTable(gctx, src, modifiersFile, &records); err != nil {
			return err
		}
		table, err := newModifiersTable(records)
		if err != nil {
			return fmt.Errorf("%s: %w", modifiersFile, err)
		}
		t.Modifiers = table
		slog.Info("loaded modifiers table", "count", len(table.rows))
		return nil
	})

	g.Go(func() error {
		var records map[string]spellTraitRecord
		if err := readTable(gctx, src, spellTraitsFile, &records); err != nil {
			return err
		}
		table, err := newSpellTraitsTable(records)
		if err != nil {
			return fmt.Errorf("%s: %w", spellTraitsFile, err)
		}
		t.SpellTraits = table
		slog.Info("loaded spell traits table", "count", len(table.rows))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &t, nil
}

func source(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(embedded, "tables")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

func readTable(ctx context.Context, src fs.FS, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := fs.ReadFile(src, name)
	if err != nil {
		return fmt.Errorf("reading table %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing table %s: %w", name, err)
	}
	return nil
}
