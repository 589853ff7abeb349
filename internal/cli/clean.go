package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"smells/config"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove the scan result cache",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir, err := resolveProjectDir(args)
		if err != nil {
			return err
		}

		dbPath := config.CacheDBPath(projectDir)
		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No cache to remove.")
				return nil
			}
			return fmt.Errorf("failed to remove cache: %w", err)
		}

		fmt.Printf("Removed %s\n", dbPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
