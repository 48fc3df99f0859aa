package cmd

import (
	"context"
	"log"
	"time"

	"party-ledger/core/config"
	"party-ledger/core/database"
	"party-ledger/core/logger"
	"party-ledger/feature/accounts"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var revokeFlag bool

// promoteCmd grants or revokes the game-master flag on an existing
// account without restarting the server.
var promoteCmd = &cobra.Command{
	Use:   "promote <username>",
	Short: "Grant an account the game-master role",
	Long: `Marks an existing account as game master so it can manage the
catalog, quests and map markers. Use --revoke to take the role away.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		svc := accounts.NewService(db, logg, cfg.Server.TokenSecret,
			time.Duration(cfg.Server.TokenTTLHours)*time.Hour, cfg.Server.GameMaster)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := svc.SetAdmin(ctx, args[0], !revokeFlag); err != nil {
			return err
		}

		logg.Info("account role changed",
			zap.String("username", args[0]),
			zap.Bool("game_master", !revokeFlag),
		)
		return nil
	},
}

func init() {
	promoteCmd.Flags().BoolVar(&revokeFlag, "revoke", false, "revoke the role instead of granting it")
	RootCmd.AddCommand(promoteCmd)
}
