package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hat-surround/internal/render"
	"hat-surround/internal/surround"
)

var (
	neighboursHoles bool
	neighboursOut   string
	neighboursList  bool
)

// neighboursCmd draws the catalogue of legal neighbours
var neighboursCmd = &cobra.Command{
	Use:   "neighbours",
	Short: "Draw every legal neighbour of the hat",
	Long: `Computes every placement of a second hat that touches the identity hat
without overlapping it, and writes them as numbered SVG pages, each laying
out render.columns x render.rows pairs captioned with their transforms.`,
	Args: cobra.NoArgs,
	RunE: runNeighbours,
}

func init() {
	neighboursCmd.Flags().BoolVar(&neighboursHoles, "holes", false, "Also allow neighbours that enclose a hole (default: search.allow_holes)")
	neighboursCmd.Flags().StringVarP(&neighboursOut, "out", "o", "neighbours", "Output file prefix")
	neighboursCmd.Flags().BoolVar(&neighboursList, "list", false, "Print the transforms instead of drawing them")
}

func runNeighbours(cmd *cobra.Command, args []string) error {
	ts := surround.LegalNeighbours(neighboursHoles || cfg.Search.AllowHoles)

	if neighboursList {
		for _, T := range ts {
			fmt.Fprintln(cmd.OutOrStdout(), T)
		}
		return nil
	}

	layout := render.Layout{Columns: cfg.Render.Columns, Rows: cfg.Render.Rows, Scale: cfg.Render.Scale}
	pages := layout.Pages(ts)
	for i, page := range pages {
		name := fmt.Sprintf("%s-%02d.svg", neighboursOut, i+1)
		if err := writeFile(name, func(f *os.File) error {
			return render.NeighbourSheet(f, page, layout)
		}); err != nil {
			return err
		}
		logger.Debug("Wrote neighbour page", zap.String("path", name), zap.Int("neighbours", len(page)))
	}
	printer.Fprintf(cmd.OutOrStdout(), "%d neighbours on %d pages\n", len(ts), len(pages))
	return nil
}

// writeFile creates name and hands it to write, closing it afterwards.
func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return f.Close()
}
