package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"smells/internal/adapter/project"
)

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Show which languages would be scanned",
	Long: `Detect the languages of a project from its manifest files and print
each language with the source directory that would be scanned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir, err := resolveProjectDir(args)
		if err != nil {
			return err
		}

		languages := project.DetectLanguages(projectDir)
		if len(languages) == 0 {
			fmt.Printf("No supported languages detected in %s\n", projectDir)
			fmt.Println("Supported: elixir, dart, typescript, python, rust")
			return nil
		}

		fmt.Printf("Detected languages in %s:\n", projectDir)
		for _, l := range languages {
			fmt.Printf("  %s (%s/)\n", l.Language.DisplayName(), l.SourceDir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
