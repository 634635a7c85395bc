package robot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robotkit/robotkit-sdk/domain/entities"
)

// Apply builds m in the open project: project type, labels, nodes, bars and
// cases, in that order. Numbered entities keep their model numbers and replace
// existing entities with the same number.
func (a *App) Apply(ctx context.Context, m *entities.Model) error {
	if m.ProjectType != "" {
		if err := a.SetProjectType(ctx, m.ProjectType); err != nil {
			return fmt.Errorf("project type: %w", err)
		}
	}
	if err := a.applyLabels(ctx, m); err != nil {
		return err
	}
	if err := a.applyNodes(ctx, m.Nodes); err != nil {
		return err
	}
	if err := a.applyBars(ctx, m.Bars); err != nil {
		return err
	}
	if err := a.applyCases(ctx, m.Cases); err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "applied model",
		slog.Int("nodes", len(m.Nodes)),
		slog.Int("bars", len(m.Bars)),
		slog.Int("cases", len(m.Cases)),
	)
	return nil
}

func (a *App) applyLabels(ctx context.Context, m *entities.Model) error {
	materials, err := a.Materials(ctx)
	if err != nil {
		return err
	}
	for _, rec := range m.Materials {
		typ := rec.Type
		if typ == "" {
			typ = "STEEL"
		}
		_, err := materials.Create(ctx, MaterialProps{
			Name: rec.Name, Type: typ, E: rec.E, G: rec.G, NU: rec.NU, RO: rec.RO, Fy: rec.RE, Default: rec.Default,
		})
		if err != nil {
			return fmt.Errorf("material %q: %w", rec.Name, err)
		}
	}

	sections, err := a.Sections(ctx)
	if err != nil {
		return err
	}
	for _, rec := range m.Sections {
		_, err := sections.Create(ctx, SectionProps{
			Name: rec.Name, Material: rec.Material,
			D: rec.D, BF: rec.BF, TF: rec.TF, IX: rec.IX, IY: rec.IY, IZ: rec.IZ, Weight: rec.Weight,
		})
		if err != nil {
			return fmt.Errorf("section %q: %w", rec.Name, err)
		}
	}

	supports, err := a.Supports(ctx)
	if err != nil {
		return err
	}
	for _, rec := range m.Supports {
		if _, err := supports.Create(ctx, SupportProps{Name: rec.Name, DOF: rec.DOF}); err != nil {
			return fmt.Errorf("support %q: %w", rec.Name, err)
		}
	}

	releases, err := a.Releases(ctx)
	if err != nil {
		return err
	}
	for _, rec := range m.Releases {
		if _, err := releases.Create(ctx, ReleaseProps{Name: rec.Name, Start: rec.Start, End: rec.End}); err != nil {
			return fmt.Errorf("release %q: %w", rec.Name, err)
		}
	}
	return nil
}

func (a *App) applyNodes(ctx context.Context, recs []entities.NodeRecord) error {
	nodes, err := a.Nodes(ctx)
	if err != nil {
		return err
	}
	err = nodes.Batch(ctx, func(ctx context.Context) error {
		for _, rec := range recs {
			p := Point{X: rec.X, Y: rec.Y, Z: rec.Z}
			if _, err := nodes.Create(ctx, p, Number(rec.Number), Overwrite()); err != nil {
				return fmt.Errorf("node %d: %w", rec.Number, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.Support == "" {
			continue
		}
		if err := nodes.SetSupport(ctx, fmt.Sprint(rec.Number), rec.Support); err != nil {
			return fmt.Errorf("node %d: %w", rec.Number, err)
		}
	}
	return nil
}

func (a *App) applyBars(ctx context.Context, recs []entities.BarRecord) error {
	bars, err := a.Bars(ctx)
	if err != nil {
		return err
	}
	err = bars.Batch(ctx, func(ctx context.Context) error {
		for _, rec := range recs {
			if _, err := bars.Create(ctx, rec.Start, rec.End, Number(rec.Number), Overwrite()); err != nil {
				return fmt.Errorf("bar %d: %w", rec.Number, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, rec := range recs {
		id := fmt.Sprint(rec.Number)
		for _, set := range []struct {
			fn   func(context.Context, string, string) error
			name string
		}{
			{bars.SetMaterial, rec.Material},
			{bars.SetSection, rec.Section},
			{bars.SetRelease, rec.Release},
		} {
			if set.name == "" {
				continue
			}
			if err := set.fn(ctx, id, set.name); err != nil {
				return fmt.Errorf("bar %d: %w", rec.Number, err)
			}
		}
	}
	return nil
}

func (a *App) applyCases(ctx context.Context, recs []entities.CaseRecord) error {
	cases, err := a.Cases(ctx)
	if err != nil {
		return err
	}
	// Simple cases first so combinations can reference them.
	for _, combinations := range []bool{false, true} {
		for _, rec := range recs {
			isComb := len(rec.Factors) > 0 || rec.CombinationType != ""
			if isComb != combinations {
				continue
			}
			if err := applyCase(ctx, cases, rec, isComb); err != nil {
				return fmt.Errorf("case %d: %w", rec.Number, err)
			}
		}
	}
	return nil
}

func applyCase(ctx context.Context, cases *Cases, rec entities.CaseRecord, combination bool) error {
	nature, err := Synonyms.ResolveIn(CaseNature, rec.Nature)
	if err != nil {
		return err
	}
	analysis, err := Synonyms.ResolveIn(AnalysisType, rec.Analysis)
	if err != nil {
		return err
	}
	opts := []CreateOption{Number(rec.Number), Overwrite()}
	if !combination {
		_, err := cases.CreateLoadCase(ctx, rec.Name, nature, analysis, opts...)
		return err
	}
	key := rec.CombinationType
	if key == "" {
		key = "ULS"
	}
	combType, err := Synonyms.ResolveIn(CombType, key)
	if err != nil {
		return err
	}
	factors := make([]Factor, len(rec.Factors))
	for i, f := range rec.Factors {
		factors[i] = Factor{Case: f.Case, Factor: f.Factor}
	}
	_, err = cases.CreateCombination(ctx, rec.Name, factors, combType, nature, analysis, opts...)
	return err
}
