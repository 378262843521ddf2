package pipeline

import (
	"context"
	"fmt"
	"time"

	"fixtureconv/internal"
	"fixtureconv/internal/config"
	applog "fixtureconv/internal/log"
	"fixtureconv/internal/sheet"
)

// Converter runs uploaded files through the reader, the settings accessors
// and the assembler.
type Converter struct {
	cfg config.Config
	now func() time.Time
}

func NewConverter(cfg config.Config) *Converter {
	return &Converter{cfg: cfg, now: time.Now}
}

type Result struct {
	Events []internal.NormalizedEvent
	Rows   int
}

func (c *Converter) Defaults() internal.Settings {
	return DefaultSettings(c.now(), c.cfg.DefaultGroupName, c.cfg.DefaultDurationMin)
}

func (c *Converter) Convert(ctx context.Context, files []sheet.File, values map[string]string) (Result, error) {
	if len(files) == 0 {
		return Result{}, &MissingFileError{}
	}
	start := time.Now()
	logger := applog.WithComponentFromContext(ctx, "converter")

	rows, err := sheet.ReadAll(ctx, files, c.cfg.ReadWorkers)
	if err != nil {
		return Result{}, err
	}

	settings := ParseSettings(values, c.Defaults())
	events, err := Assemble(ctx, rows, settings)
	if err != nil {
		return Result{}, err
	}

	logger.Info().
		Int("files", len(files)).
		Int("rows", len(rows)).
		Int("events", len(events)).
		Int("year", settings.TargetYear).
		Dur("took", time.Since(start)).
		Msg("conversion done")
	return Result{Events: events, Rows: len(rows)}, nil
}

func (c *Converter) ConvertToXLSX(ctx context.Context, files []sheet.File, values map[string]string) ([]byte, Result, error) {
	res, err := c.Convert(ctx, files, values)
	if err != nil {
		return nil, Result{}, err
	}
	blob, err := sheet.WriteXLSX(res.Events)
	if err != nil {
		return nil, Result{}, fmt.Errorf("write xlsx: %w", err)
	}
	return blob, res, nil
}
