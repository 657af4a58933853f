package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prooflab/proofdoc/internal/cache"
	"github.com/prooflab/proofdoc/internal/loader"
	"github.com/prooflab/proofdoc/internal/model"
)

// Checker loads a document, decodes it, and produces a report. Reports are
// cached by document content when caching is enabled, so re-checking an
// unchanged document is a cache hit.
type Checker struct {
	config   *model.Config
	pipeline *Pipeline
	loader   *loader.Loader
	reports  cache.Cache // nil when caching is disabled
}

// NewChecker creates a checker with the given configuration
func NewChecker(cfg *model.Config) *Checker {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	c := &Checker{
		config:   cfg,
		pipeline: NewPipeline(cfg),
		loader:   loader.New(cfg.Limits.MaxDocumentBytes),
	}
	if cfg.Cache.Enabled {
		c.reports = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return c
}

// CheckDocument checks the document at location and returns its report.
// The returned error covers I/O only; decode failures are reported inside
// the report itself.
func (c *Checker) CheckDocument(ctx context.Context, location string) (*model.Report, error) {
	text, err := c.loader.Load(ctx, location)
	if err != nil {
		return nil, err
	}

	var key string
	if c.reports != nil {
		key = cache.Key(text)
		if data, found := c.reports.Get(key); found {
			var report model.Report
			if err := json.Unmarshal(data, &report); err == nil {
				// The cached report may have been produced under another
				// path to the same content
				report.Source = location
				return &report, nil
			}
		}
	}

	report := c.decode(location, text)

	if c.reports != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := c.reports.Set(key, data, 0); err != nil && c.config.Output.Verbose {
				fmt.Printf("Warning: failed to cache report: %v\n", err)
			}
		}
	}

	return report, nil
}

func (c *Checker) decode(location, text string) *model.Report {
	doc, errs := c.pipeline.Decode(text)
	if errs != nil {
		return model.NewFailureReport(location, errs)
	}
	return model.NewReport(location, doc)
}
