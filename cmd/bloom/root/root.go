package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bloom/internal/ui"
)

const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "bloom",
	Short:         "Bloom — grow a plant by keeping your habits",
	Long:          "Bloom is a local-first habit tracker: daily completions feed a virtual plant that grows, wilts and can be shared with friends.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newInitCmd(),
		newHabitCmd(),
		newDoCmd(),
		newTrackCmd(),
		newFoodCmd(),
		newStatusCmd(),
		newSocialCmd(),
		newReviveCmd(),
		newThemeCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
