package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jacquart08/ultimate-overlay/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Context-aware desktop overlay assistant",
	Long: `Ultimate Overlay watches the foreground window, shows knowledge and
keyboard shortcuts for whatever you are working in, and can explain selected
text with a locally hosted language model.`,
	Run: func(cmd *cobra.Command, args []string) {
		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
