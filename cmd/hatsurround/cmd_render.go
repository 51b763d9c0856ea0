package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hat-surround/internal/patchio"
	"hat-surround/internal/render"
)

var (
	renderPNG bool
	renderOut string
)

// renderCmd draws patch records
var renderCmd = &cobra.Command{
	Use:   "render file",
	Short: "Draw patch records as SVG or PNG",
	Long: `Reads patch records from file and writes one numbered image per record,
each tile filled by the corona it belongs to.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderPNG, "png", false, "Write PNG images instead of SVG")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "patch", "Output file prefix")
}

func runRender(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open patches: %w", err)
	}
	defer f.Close()

	patches, err := patchio.ReadPatches(f)
	if err != nil {
		return fmt.Errorf("failed to read patches: %w", err)
	}

	ext, draw := "svg", render.PatchSVG
	if renderPNG {
		ext, draw = "png", render.PatchPNG
	}
	for i, p := range patches {
		name := fmt.Sprintf("%s-%03d.%s", renderOut, i+1, ext)
		if err := writeFile(name, func(f *os.File) error {
			return draw(f, p, cfg.Render.Scale)
		}); err != nil {
			return err
		}
		logger.Debug("Wrote patch image", zap.String("path", name), zap.Int("tiles", len(p)))
	}
	printer.Fprintf(cmd.OutOrStdout(), "%d patches rendered\n", len(patches))
	return nil
}
