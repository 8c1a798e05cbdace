package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jacquart08/ultimate-overlay/internal/config"
	"github.com/Jacquart08/ultimate-overlay/internal/favorites"
	"github.com/Jacquart08/ultimate-overlay/internal/knowledge"
	"github.com/Jacquart08/ultimate-overlay/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the knowledge, shortcuts and favorites files",
	Long: `Loads each data file and reports problems. The overlay itself tolerates
broken files by starting with empty stores; this command makes the errors
visible.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		logger := logging.NewNop()
		failed := false

		ks := knowledge.NewStore(cfg.KnowledgePath, logger)
		if err := ks.Load(); err != nil {
			fmt.Printf("knowledge:  %v\n", err)
			failed = true
		} else {
			fmt.Printf("knowledge:  OK (%d sections)\n", ks.Len())
		}

		ss := knowledge.NewShortcutStore(cfg.ShortcutsPath, logger)
		if err := ss.Load(); err != nil {
			fmt.Printf("shortcuts:  %v\n", err)
			failed = true
		} else {
			fmt.Printf("shortcuts:  OK (%d apps)\n", ss.Len())
		}

		fav := favorites.NewStore(cfg.FavoritesPath, logger)
		if err := fav.Load(); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("favorites:  not created yet (OK)")
			} else {
				fmt.Printf("favorites:  %v\n", err)
				failed = true
			}
		} else {
			fmt.Printf("favorites:  OK (%d knowledge, %d shortcuts pinned)\n",
				len(fav.Knowledge()), len(fav.Shortcuts()))
		}

		if failed {
			os.Exit(1)
		}
	},
}
