// Package pipeline runs the three stages of a persona card generation:
// collect activity, synthesize a persona, render the card. Strictly
// sequential, one user per run, every error fatal.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"personacard/src/collector"
	"personacard/src/config"
	perrors "personacard/src/errors"
	"personacard/src/persona"
	"personacard/src/render"
	"personacard/src/status"
)

// TextGenerator is the slice of the Gemini client the synthesizer needs.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Deps are the external collaborators, injectable for tests.
type Deps struct {
	Source collector.Lister
	Model  TextGenerator
	Status *status.Printer
}

// Result reports what a completed run produced.
type Result struct {
	Items      int
	Record     *persona.Record
	OutputPath string
}

// Run executes collect → synthesize → render for one username. Stage
// outputs are handed forward by value; no output file exists unless the
// renderer completed.
func Run(ctx context.Context, cfg *config.Config, deps Deps, username string) (*Result, error) {
	st := deps.Status
	if st == nil {
		st = status.NewPrinter(true)
	}

	st.Step("Fetching up to %d items for u/%s...", cfg.Limit, username)
	items, err := collector.Collect(ctx, deps.Source, username, cfg.Limit)
	if err != nil {
		return nil, err
	}
	st.Done("Collected %d activity items.", len(items))

	st.Step("Generating persona with %s...", cfg.Model)
	raw, err := deps.Model.GenerateJSON(ctx, persona.BuildPrompt(items))
	if err != nil {
		return nil, err
	}

	if cfg.SaveRaw {
		rawPath := username + "_persona_raw.txt"
		if err := os.WriteFile(rawPath, []byte(raw), 0644); err != nil {
			return nil, fmt.Errorf("saving raw model output: %w", err)
		}
		st.Debug("Raw model output saved to %s", rawPath)
	}

	rec, err := persona.Decode(raw)
	if err != nil {
		return nil, err
	}
	st.Done("Persona parsed for %s.", rec.Name)

	theme := render.DefaultTheme()
	if cfg.ThemePath != "" {
		theme, err = render.LoadTheme(cfg.ThemePath)
		if err != nil {
			return nil, err
		}
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = username + "_persona_card.png"
	}
	if err := render.NewCard(theme).Render(rec, outputPath); err != nil {
		return nil, perrors.WrapWithContext(err, "rendering card for %q", username)
	}
	st.Done("Persona card saved to %s", outputPath)

	return &Result{Items: len(items), Record: rec, OutputPath: outputPath}, nil
}
