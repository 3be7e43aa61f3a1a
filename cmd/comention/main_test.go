package main

import (
	"testing"

	"github.com/gprel/comention/internal/config"
)

func TestRenderOptions(t *testing.T) {
	cfg := config.Default()

	t.Run("config defaults pass through", func(t *testing.T) {
		opts := renderOptions(cfg, 0, 0)
		if opts.TopN != cfg.Plot.TopN {
			t.Errorf("TopN = %d, want %d", opts.TopN, cfg.Plot.TopN)
		}
		if opts.TopEdges != cfg.Plot.TopEdges {
			t.Errorf("TopEdges = %d, want %d", opts.TopEdges, cfg.Plot.TopEdges)
		}
		if opts.LayoutSeed != cfg.Plot.LayoutSeed {
			t.Errorf("LayoutSeed = %d, want %d", opts.LayoutSeed, cfg.Plot.LayoutSeed)
		}
	})

	t.Run("flags override config", func(t *testing.T) {
		opts := renderOptions(cfg, 5, 30)
		if opts.TopN != 5 {
			t.Errorf("TopN = %d, want 5", opts.TopN)
		}
		if opts.TopEdges != 30 {
			t.Errorf("TopEdges = %d, want 30", opts.TopEdges)
		}
	})
}
