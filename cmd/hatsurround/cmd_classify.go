package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hat-surround/internal/classify"
	"hat-surround/internal/patchio"
)

// classifyCmd checks surroundable 2-patches against the cluster grammar
var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Check 2-patches against the H, T, P and F cluster grammar",
	Long: `Reads patch records (from file, or stdin when no file is given), labels
the central tile and its first corona, and checks the labels against the
within-cluster and between-cluster neighbour rules.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open patches: %w", err)
		}
		defer f.Close()
		in = f
	}

	recs, err := patchio.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read patches: %w", err)
	}

	s := classify.CheckAll(recs)
	for _, r := range s.Failures {
		logger.Debug("Patch failed checks", zap.String("centre", string(r.Centre)), zap.String("reason", r.Reason))
	}
	printer.Fprintf(cmd.OutOrStdout(), "%d/%d patches passed checks\n", s.Passed, s.Total)
	return nil
}
