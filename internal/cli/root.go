package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"smells/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "smells",
	Short: "Detect code smells across multiple programming languages",
	Long: `smells scans a project tree for files, functions, and blocks that
exceed configurable size and nesting thresholds. Function boundaries are
found heuristically, line by line, without building a syntax tree.

Example usage:
  smells scan .                  # Scan current directory
  smells scan -l rust,python     # Scan specific languages
  smells detect                  # Show detected languages
  smells watch                   # Rescan on file changes`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./smells.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "project directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
