package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/skeleton"
)

// fileConfig is the YAML form of the command line. Fields left out of the
// file keep their flag defaults, and flags given explicitly win over the
// file.
type fileConfig struct {
	Threshold *uint          `yaml:"threshold"`
	Invert    *bool          `yaml:"invert"`
	Bands     *int           `yaml:"bands"`
	Padding   *int           `yaml:"padding"`
	Workers   *int           `yaml:"workers"`
	Scale     *int           `yaml:"scale"`
	Timeout   *time.Duration `yaml:"timeout"`
	Lang      *string        `yaml:"lang"`
	Output    *string        `yaml:"output"`
	Points    *string        `yaml:"points"`
}

// loadConfig reads a YAML config file. An empty file is a valid, empty
// config; unknown keys are rejected.
func loadConfig(path string) (*fileConfig, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("skeletonize: read config: %w", err)
	}
	defer func() { _ = f.Close() }()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("skeletonize: parse config: %w", err)
	}
	return &fc, nil
}

// apply copies the file values into cfg for every flag not in set.
func (fc *fileConfig) apply(cfg *config, set map[string]bool) {
	assign(fc.Threshold, &cfg.threshold, set["threshold"])
	assign(fc.Invert, &cfg.invert, set["invert"])
	assign(fc.Bands, &cfg.bands, set["bands"])
	assign(fc.Padding, &cfg.padding, set["padding"])
	assign(fc.Workers, &cfg.workers, set["workers"])
	assign(fc.Scale, &cfg.scale, set["scale"])
	assign(fc.Timeout, &cfg.timeout, set["timeout"])
	assign(fc.Lang, &cfg.lang, set["lang"])
	assign(fc.Output, &cfg.output, set["output"])
	assign(fc.Points, &cfg.points, set["points"])
}

func assign[T any](src *T, dst *T, overridden bool) {
	if src != nil && !overridden {
		*dst = *src
	}
}

// pointRecord is one pixel in the points report.
type pointRecord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// pointsReport is the YAML document written by -points.
type pointsReport struct {
	Source       string        `yaml:"source"`
	Rows         int           `yaml:"rows"`
	Cols         int           `yaml:"cols"`
	Components   int           `yaml:"components"`
	Endpoints    []pointRecord `yaml:"endpoints,flow"`
	BranchPoints []pointRecord `yaml:"branch_points,flow"`
}

func records(pts []skeleton.Point) []pointRecord {
	out := make([]pointRecord, len(pts))
	for i, p := range pts {
		out[i] = pointRecord{Row: p.Row, Col: p.Col}
	}
	return out
}

// writePoints saves the classified points of a as YAML.
func writePoints(path, source string, a *skeleton.Analysis) error {
	report := pointsReport{
		Source:       source,
		Rows:         a.Skeleton.Rows(),
		Cols:         a.Skeleton.Cols(),
		Components:   a.Components,
		Endpoints:    records(a.Endpoints),
		BranchPoints: records(a.BranchPoints),
	}
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("skeletonize: encode points: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("skeletonize: write points: %w", err)
	}
	return nil
}
