package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/measure"
	"github.com/udisondev/theurgist/internal/spell"
)

// report is the printable state of one formula instance.
type report struct {
	Formula          string         `yaml:"formula"`
	Difficulty       int            `yaml:"difficulty"`
	RequiredRealm    int            `yaml:"required_realm"`
	CastingRounds    int            `yaml:"casting_rounds"`
	Evocation        string         `yaml:"evocation"`
	Parameters       []reportParam  `yaml:"parameters"`
	Modifiers        []string       `yaml:"modifiers,omitempty"`
	SpellTraits      []reportTrait  `yaml:"spell_traits,omitempty"`
	RealmsAffections map[string]int `yaml:"realms_affections"`
}

type reportParam struct {
	Name    string `yaml:"name"`
	Value   int    `yaml:"value"`
	Measure string `yaml:"measure,omitempty"`
}

type reportTrait struct {
	Code string `yaml:"code"`
	Trap string `yaml:"trap,omitempty"`
}

func newReport(f *spell.Formula) report {
	rep := report{
		Formula:          string(f.Code()),
		Difficulty:       f.CurrentDifficulty().Value(),
		RequiredRealm:    f.RequiredRealm().Value(),
		CastingRounds:    f.CurrentCastingRounds().Value(),
		Evocation:        f.CurrentEvocation().Time(measure.TimeTable{}).String(),
		RealmsAffections: make(map[string]int),
	}

	for _, code := range codes.AllFormulaParameters() {
		current := f.CurrentParameter(code)
		if code == codes.FormulaParameterRadius {
			current = f.CurrentRadius()
		}
		if current == nil {
			continue
		}
		p := reportParam{Name: string(code), Value: current.Value()}
		switch code {
		case codes.FormulaParameterRadius, codes.FormulaParameterEpicenterShift:
			p.Measure = current.Distance(measure.DistanceTable{}).String()
		case codes.FormulaParameterDuration:
			p.Measure = current.Time(measure.TimeTable{}).String()
		case codes.FormulaParameterSpellSpeed:
			p.Measure = current.Speed(measure.SpeedTable{}).String()
		}
		rep.Parameters = append(rep.Parameters, p)
	}

	for _, m := range f.Modifiers() {
		rep.Modifiers = append(rep.Modifiers, string(m.Code()))
	}
	for _, t := range f.SpellTraits() {
		rt := reportTrait{Code: string(t.Code())}
		if trap := t.CurrentTrap(); trap != nil {
			rt.Trap = trap.String()
		}
		rep.SpellTraits = append(rep.SpellTraits, rt)
	}

	for period, affection := range f.CurrentRealmsAffections() {
		rep.RealmsAffections[string(period)] = affection.Value()
	}
	return rep
}

func (r report) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

func (r report) writeText(w io.Writer) error {
	p := message.NewPrinter(language.English)
	title := cases.Title(language.English)
	name := func(code string) string {
		return title.String(strings.ReplaceAll(code, "_", " "))
	}

	lines := []string{
		p.Sprintf("%s", name(r.Formula)),
		p.Sprintf("  difficulty:      %d", r.Difficulty),
		p.Sprintf("  required realm:  %d", r.RequiredRealm),
		p.Sprintf("  casting rounds:  %d", r.CastingRounds),
		p.Sprintf("  evocation:       %s", r.Evocation),
	}

	lines = append(lines, "  parameters:")
	for _, rp := range r.Parameters {
		line := p.Sprintf("    %-16s %d", name(rp.Name), rp.Value)
		if rp.Measure != "" {
			line += p.Sprintf(" (%s)", rp.Measure)
		}
		lines = append(lines, line)
	}

	if len(r.Modifiers) > 0 {
		lines = append(lines, "  modifiers:")
		for _, m := range r.Modifiers {
			lines = append(lines, "    "+name(m))
		}
	}
	if len(r.SpellTraits) > 0 {
		lines = append(lines, "  spell traits:")
		for _, t := range r.SpellTraits {
			line := "    " + name(t.Code)
			if t.Trap != "" {
				line += p.Sprintf(", trap %s", t.Trap)
			}
			lines = append(lines, line)
		}
	}

	lines = append(lines, "  realms affections:")
	for _, period := range codes.AffectionPeriodValues() {
		if v, ok := r.RealmsAffections[period]; ok {
			lines = append(lines, p.Sprintf("    %-16s %d", period, v))
		}
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
