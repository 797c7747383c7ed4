package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bellecroissant/backoffice/internal/config"
	"github.com/bellecroissant/backoffice/internal/database"
	"github.com/bellecroissant/backoffice/internal/server"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the back office HTTP server",
	Long: `Start the back office server which provides:
- CRUD REST API for customers, catalog, inventory and orders
- Customer order summary and loyalty member views
- Ingredient restock view`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🥐 Belle Croissant Back Office Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("✅ Database connected successfully")

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(db, &cfg.Server)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
