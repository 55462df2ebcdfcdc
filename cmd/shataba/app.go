package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MAEASaM/shataba/collection"
	"github.com/MAEASaM/shataba/concept"
	"github.com/MAEASaM/shataba/config"
	"github.com/MAEASaM/shataba/report"
	"github.com/MAEASaM/shataba/resolver"
	"github.com/MAEASaM/shataba/schema"
	"github.com/MAEASaM/shataba/table"
	"github.com/MAEASaM/shataba/validate"
	"github.com/bmatcuk/doublestar/v4"
)

// App runs the validation pipeline: load the three reference documents,
// resolve the field mappings, then clean each input CSV and write the
// cleaned data and mapping reports.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	summary bool
	stdout  io.Writer
}

// Run executes one full validation pass over every input matching the
// pattern. Each pass re-reads all sources; there is no state carried
// between passes.
func (a *App) Run(ctx context.Context, inputPattern string) error {
	inputs, err := resolveInputs(inputPattern)
	if err != nil {
		return err
	}

	mappings, summary, err := a.loadMappings()
	if err != nil {
		return err
	}

	a.logger.Info("Resolved concept fields",
		"total", summary.TotalFields,
		"with_collection", summary.WithCollection,
		"with_label", summary.WithLabel,
		"with_category", summary.WithCategory)

	if err := os.MkdirAll(a.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, input := range inputs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := a.runOne(input, mappings); err != nil {
			return err
		}
	}

	if a.summary {
		fmt.Fprintln(a.stdout)
		if err := report.WriteMappingSummary(a.stdout, summary); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout)
		if err := report.WriteMappings(a.stdout, mappings); err != nil {
			return err
		}
	}

	return nil
}

// loadMappings parses the three reference documents and resolves the
// field-to-vocabulary chain.
func (a *App) loadMappings() ([]resolver.FieldMapping, resolver.Summary, error) {
	idx, err := collection.ParseFile(a.cfg.CollectionsPath())
	if err != nil {
		return nil, resolver.Summary{}, err
	}
	a.logger.Debug("Loaded collection labels", "count", len(idx))

	doc, err := schema.ParseFile(a.cfg.SchemaPath())
	if err != nil {
		return nil, resolver.Summary{}, err
	}

	cat, err := concept.ParseFile(a.cfg.ConceptsPath())
	if err != nil {
		return nil, resolver.Summary{}, err
	}
	a.logger.Debug("Loaded concept catalog", "categories", cat.Len())

	refs := doc.ConceptFields()
	mappings := resolver.ResolveAll(refs, idx, cat)
	return mappings, resolver.Summarize(mappings), nil
}

// runOne validates and cleans a single input CSV.
func (a *App) runOne(input string, mappings []resolver.FieldMapping) error {
	tbl, err := table.ReadCSVFile(input, a.cfg.CSV.NullMarkers)
	if err != nil {
		return err
	}

	cleaned, rep := validate.Clean(tbl, mappings)

	a.logger.Info("Validated input",
		"input", input,
		"rows", rep.RowsProcessed,
		"columns_checked", rep.ColumnsChecked,
		"offending_removed", rep.OffendingRemoved)

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	cleanedPath := filepath.Join(a.cfg.Output.Dir, stem+"_cleaned.csv")
	if err := cleaned.WriteCSVFile(cleanedPath); err != nil {
		return err
	}

	mappingsPath := filepath.Join(a.cfg.Output.Dir, stem+"_concept_mappings.csv")
	if err := writeMappingsFile(mappingsPath, mappings); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "\n%s\n\n", input)
	if err := report.WriteValidation(a.stdout, rep); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "\nCleaned data saved to %s\n", cleanedPath)
	fmt.Fprintf(a.stdout, "Concept mappings saved to %s\n", mappingsPath)

	return nil
}

// referencePaths lists the reference documents a run depends on.
func (a *App) referencePaths() []string {
	return []string{
		a.cfg.CollectionsPath(),
		a.cfg.SchemaPath(),
		a.cfg.ConceptsPath(),
	}
}

func writeMappingsFile(path string, mappings []resolver.FieldMapping) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mappings file: %w", err)
	}
	if err := report.WriteMappingsCSV(f, mappings); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// resolveInputs expands the input pattern to concrete CSV files.
// Patterns use doublestar globs; a plain path is used as-is.
func resolveInputs(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("no input specified")
	}

	if !strings.ContainsAny(pattern, "*?[{") {
		if _, err := os.Stat(pattern); err != nil {
			return nil, fmt.Errorf("stat input: %w", err)
		}
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("resolve input pattern %q: %w", pattern, err)
	}

	var inputs []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		inputs = append(inputs, m)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no inputs match pattern %q", pattern)
	}
	return inputs, nil
}
