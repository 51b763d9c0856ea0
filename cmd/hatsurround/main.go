// Command hatsurround enumerates coronas of the hat monotile, checks the
// resulting patches against the cluster grammar and draws them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hat-surround/internal/config"
	"hat-surround/internal/logging"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	cfg    = config.Default()
	logger = zap.NewNop()

	// Summary lines group digits.
	printer = message.NewPrinter(language.English)
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hatsurround",
	Short: "Enumerate and check coronas of the hat monotile",
	Long: `hatsurround works on the kite grid underlying the hat monotile.

It enumerates every way to surround the hat by one corona and then a
second, keeps the 2-patches that admit a third corona, checks those against
the H, T, P and F cluster grammar, and renders patches as SVG or PNG.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		logger.Debug("Configuration loaded", zap.String("path", cfgPath), zap.Int("levels", cfg.Search.Levels))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(surroundCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(neighboursCmd)
	rootCmd.AddCommand(renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
