package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hat-surround/internal/config"
	"hat-surround/internal/metrics"
	"hat-surround/internal/patchio"
	"hat-surround/internal/patchmap"
	"hat-surround/internal/surround"
)

var (
	surroundLevels  int
	surroundOut     string
	surroundMetrics string
	surroundLimit   int
)

var errLimitReached = errors.New("limit reached")

// surroundCmd runs the 2-patch survey
var surroundCmd = &cobra.Command{
	Use:   "surround",
	Short: "Find every 2-patch of hats that admits a 3-patch",
	Long: `Enumerates every 1-patch around the identity hat, every 2-patch around
each of those, and writes out the 2-patches that can be surrounded once more.

Each patch is written as a tile count followed by one "level ; <a,b,c,d,e,f>"
line per tile.`,
	Args: cobra.NoArgs,
	RunE: runSurround,
}

func init() {
	surroundCmd.Flags().IntVar(&surroundLevels, "levels", 0, "Transform universe radius (default: search.levels)")
	surroundCmd.Flags().StringVarP(&surroundOut, "out", "o", "", "Output file (default: stdout)")
	surroundCmd.Flags().StringVar(&surroundMetrics, "metrics", "", "Prometheus textfile to write (default: metrics.textfile)")
	surroundCmd.Flags().IntVar(&surroundLimit, "limit", 0, "Stop after this many surroundable patches (0: no limit)")
}

func runSurround(cmd *cobra.Command, args []string) error {
	levels := cfg.Search.Levels
	if surroundLevels > 0 {
		levels = surroundLevels
	}
	if err := config.ValidateLevels(levels); err != nil {
		return err
	}
	metricsPath := cfg.Metrics.Textfile
	if surroundMetrics != "" {
		metricsPath = surroundMetrics
	}

	var out io.Writer = cmd.OutOrStdout()
	var file *os.File
	if surroundOut != "" {
		f, err := os.Create(surroundOut)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		file, out = f, f
	}
	w := patchio.NewWriter(out)

	start := time.Now()
	universe := surround.PatchTransforms(levels)
	logger.Info("Built transform universe", zap.Int("levels", levels), zap.Int("transforms", len(universe)))

	m := metrics.New()
	written := 0
	res, err := surround.Survey(patchmap.New(universe), surround.SurveyConfig{
		ProgressEvery: cfg.Search.ProgressEvery,
		Progress: func(r surround.SurveyResult) {
			m.ObserveSurvey(r)
			logger.Info("Survey progress", zap.Int("seen", r.Examined), zap.Int("surroundable", r.Surroundable))
		},
		Surroundable: func(p surround.Patch) error {
			if err := w.Write(p); err != nil {
				return err
			}
			written++
			if surroundLimit > 0 && written >= surroundLimit {
				return errLimitReached
			}
			return nil
		},
		Options: []surround.Option{surround.WithObserver(m)},
	})
	flushErr := w.Flush()
	if file != nil {
		if err := file.Close(); err != nil && flushErr == nil {
			flushErr = err
		}
	}
	if err != nil && !errors.Is(err, errLimitReached) {
		return fmt.Errorf("survey failed: %w", err)
	}
	if flushErr != nil {
		return fmt.Errorf("failed to write patches: %w", flushErr)
	}
	m.ObserveSurvey(res)

	logger.Info("Survey complete",
		zap.Int("seen", res.Examined),
		zap.Int("surroundable", res.Surroundable),
		zap.Duration("elapsed", time.Since(start)))
	printer.Fprintf(cmd.ErrOrStderr(), "%d 2-patches examined, %d surroundable\n", res.Examined, res.Surroundable)

	if metricsPath != "" {
		if err := m.WriteTextfile(metricsPath); err != nil {
			return err
		}
		logger.Debug("Wrote metrics", zap.String("path", metricsPath))
	}
	return nil
}
