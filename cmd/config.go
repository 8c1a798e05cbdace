package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Jacquart08/ultimate-overlay/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage overlay configuration",
	Long:  `Show or edit the overlay configuration stored in ~/.ultimate-overlay/config.json.`,
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Knowledge file:  %s\n", cfg.KnowledgePath)
		fmt.Printf("Shortcuts file:  %s\n", cfg.ShortcutsPath)
		fmt.Printf("Favorites file:  %s\n", cfg.FavoritesPath)
		fmt.Printf("Poll interval:   %dms\n", cfg.PollIntervalMS)
		fmt.Printf("AI cooldown:     %dms\n", cfg.CooldownMS)
		fmt.Printf("Modifier key:    %s\n", cfg.Modifier)
		fmt.Printf("Watch files:     %v\n", cfg.WatchFiles)
		fmt.Println()
		fmt.Printf("Model endpoint:  %s\n", cfg.Model.BaseURL)
		if cfg.Model.Model != "" {
			fmt.Printf("Model:           %s\n", cfg.Model.Model)
		} else {
			fmt.Println("Model:           (not configured)")
		}
		hasKey := "No"
		if cfg.Model.APIKey != "" {
			hasKey = "Yes"
		}
		fmt.Printf("API key set:     %s\n", hasKey)
	},
}

var setModelCmd = &cobra.Command{
	Use:   "set-model",
	Short: "Configure the local completion model",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		baseURLPrompt := promptui.Prompt{
			Label:   "Base URL",
			Default: cfg.Model.BaseURL,
		}
		cfg.Model.BaseURL, err = baseURLPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		modelPrompt := promptui.Prompt{
			Label:   "Model",
			Default: cfg.Model.Model,
		}
		cfg.Model.Model, err = modelPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		apiKeyPrompt := promptui.Prompt{
			Label:   "API Key (optional)",
			Default: cfg.Model.APIKey,
			Mask:    '*',
		}
		cfg.Model.APIKey, err = apiKeyPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Println("Model configuration saved!")
	},
}

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setModelCmd)
}
