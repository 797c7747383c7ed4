package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bellecroissant/backoffice/internal/config"
	"github.com/bellecroissant/backoffice/internal/database"
	"github.com/bellecroissant/backoffice/internal/models"
	"github.com/bellecroissant/backoffice/internal/store"
)

var truncateFirst bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample bakery data",
	Long: `Populates the database with a small set of sample data: categories,
products, ingredients with recipe lines, customers with loyalty programs,
and a few orders. Useful for local development and demos.`,
	RunE: seed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&truncateFirst, "truncate-first", false, "Remove existing data before seeding")
}

func seed(cmd *cobra.Command, args []string) error {
	fmt.Println("🌱 Seeding sample data...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if truncateFirst {
		fmt.Println("🗑️  Removing existing data...")
		if err := db.TruncateAll(); err != nil {
			return fmt.Errorf("failed to truncate: %w", err)
		}
	}

	ctx := context.Background()

	fmt.Println("   🗂  Creating categories and products...")
	products, err := seedCatalog(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	fmt.Println("   🧈 Creating ingredients and recipes...")
	if err := seedInventory(ctx, db, products); err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}

	fmt.Println("   👥 Creating customers...")
	customers, err := seedCustomers(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}

	fmt.Println("   🧾 Creating orders...")
	if err := seedOrders(ctx, db, customers, products); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	fmt.Println("✅ Sample data loaded!")
	return nil
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedCatalog(ctx context.Context, db *database.DB) ([]models.Product, error) {
	categories := store.NewCategoryStore(db)
	productStore := store.NewProductStore(db)

	viennoiserie := models.Category{Name: "Viennoiserie", Description: "Laminated and enriched doughs"}
	if err := categories.Create(ctx, &viennoiserie); err != nil {
		return nil, err
	}
	breads := models.Category{Name: "Breads", Description: "Sourdough and yeasted loaves"}
	if err := categories.Create(ctx, &breads); err != nil {
		return nil, err
	}

	products := []models.Product{
		{Name: "Croissant", Description: "Classic butter croissant", CategoryID: viennoiserie.ID,
			Price: money("3.50"), Cost: money("0.90"), IsAvailable: true, PreparationTime: 25},
		{Name: "Pain au Chocolat", Description: "Croissant dough, two chocolate batons", CategoryID: viennoiserie.ID,
			Price: money("3.90"), Cost: money("1.10"), IsAvailable: true, PreparationTime: 25},
		{Name: "Sourdough Loaf", Description: "24h fermented country loaf", CategoryID: breads.ID,
			Price: money("6.50"), Cost: money("1.60"), IsAvailable: true, PreparationTime: 45},
	}
	for i := range products {
		if err := productStore.Create(ctx, &products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func seedInventory(ctx context.Context, db *database.DB, products []models.Product) error {
	ingredients := store.NewIngredientStore(db)
	recipes := store.NewRecipeStore(db)

	flour := models.Ingredient{Name: "Wheat Flour T55", Unit: models.UnitKilogram,
		CurrentStock: money("120.00"), MinStock: money("40.00"), MaxStock: money("300.00"), CostPerUnit: money("1.20")}
	if err := ingredients.Create(ctx, &flour); err != nil {
		return err
	}
	butter := models.Ingredient{Name: "Butter AOP", Unit: models.UnitKilogram,
		CurrentStock: money("8.00"), MinStock: money("10.00"), MaxStock: money("50.00"), CostPerUnit: money("9.80")}
	if err := ingredients.Create(ctx, &butter); err != nil {
		return err
	}

	for _, p := range products {
		line := models.ProductIngredient{ProductID: p.ID, IngredientID: flour.ID, Quantity: money("0.25")}
		if err := recipes.Create(ctx, &line); err != nil {
			return err
		}
	}
	croissant := models.ProductIngredient{ProductID: products[0].ID, IngredientID: butter.ID, Quantity: money("0.08")}
	return recipes.Create(ctx, &croissant)
}

func seedCustomers(ctx context.Context, db *database.DB) ([]models.Customer, error) {
	customers := store.NewCustomerStore(db)

	records := []models.Customer{
		{FirstName: "Marie", LastName: "Dubois", Email: "marie.dubois@example.com",
			Phone: "+33612345678", CustomerType: models.CustomerTypeLoyalty, IsActive: true},
		{FirstName: "Jean", LastName: "Martin", Email: "jean.martin@example.com",
			Phone: "+33698765432", CustomerType: models.CustomerTypeRegular, IsActive: true},
		{FirstName: "Claire", LastName: "Bernard", Email: "claire.bernard@example.com",
			Phone: "0612345679", CustomerType: models.CustomerTypeCorporate, IsActive: true},
	}
	for i := range records {
		if err := customers.Create(ctx, &records[i]); err != nil {
			return nil, err
		}
	}

	loyalty := models.LoyaltyProgram{Points: 240, Tier: models.TierSilver}
	if err := customers.UpsertLoyalty(ctx, records[0].ID, &loyalty); err != nil {
		return nil, err
	}
	return records, nil
}

func seedOrders(ctx context.Context, db *database.DB, customers []models.Customer, products []models.Product) error {
	orders := store.NewOrderStore(db)

	first := models.Order{
		CustomerID:  &customers[0].ID,
		OrderType:   models.OrderTypeInStore,
		Status:      models.OrderStatusCompleted,
		TotalAmount: money("12.50"), DiscountAmount: money("0.00"), FinalAmount: money("12.50"),
		Items: []models.OrderItem{
			{ProductID: products[0].ID, Quantity: 2, UnitPrice: money("3.50"), TotalPrice: money("7.00")},
			{ProductID: products[2].ID, Quantity: 1, UnitPrice: money("6.50"), TotalPrice: money("6.50")},
		},
	}
	if err := orders.Create(ctx, &first); err != nil {
		return err
	}

	second := models.Order{
		CustomerID:  &customers[0].ID,
		OrderType:   models.OrderTypeOnline,
		Status:      models.OrderStatusPending,
		TotalAmount: money("7.80"), DiscountAmount: money("0.55"), FinalAmount: money("7.25"),
		Items: []models.OrderItem{
			{ProductID: products[1].ID, Quantity: 2, UnitPrice: money("3.90"), TotalPrice: money("7.80")},
		},
	}
	if err := orders.Create(ctx, &second); err != nil {
		return err
	}

	// anonymous walk-in order
	anonymous := models.Order{
		OrderType:   models.OrderTypeInStore,
		Status:      models.OrderStatusReady,
		TotalAmount: money("3.50"), DiscountAmount: money("0.00"), FinalAmount: money("3.50"),
		Items: []models.OrderItem{
			{ProductID: products[0].ID, Quantity: 1, UnitPrice: money("3.50"), TotalPrice: money("3.50")},
		},
	}
	return orders.Create(ctx, &anonymous)
}
