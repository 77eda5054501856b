package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

type seedProduct struct {
	name        string
	price       string
	image       string
	category    string
	description string
	inventory   int
}

var seedProducts = []seedProduct{
	{"Classic Cotton T-Shirt", "19.99", "/images/classic-tee.jpg", "shirts", "Soft 100% cotton crew neck t-shirt", 120},
	{"Oxford Button-Down Shirt", "49.99", "/images/oxford-shirt.jpg", "shirts", "Tailored fit oxford shirt in light blue", 80},
	{"Slim Fit Chinos", "59.99", "/images/slim-chinos.jpg", "pants", "Stretch cotton chinos in khaki", 95},
	{"Relaxed Denim Jeans", "69.99", "/images/denim-jeans.jpg", "pants", "Mid-rise relaxed jeans in dark wash", 60},
	{"Merino Wool Sweater", "89.99", "/images/merino-sweater.jpg", "knitwear", "Lightweight merino crewneck sweater", 45},
	{"Hooded Zip Jacket", "79.99", "/images/hooded-jacket.jpg", "outerwear", "Water-resistant hooded jacket with zip pockets", 55},
	{"Canvas Belt", "24.99", "/images/canvas-belt.jpg", "accessories", "Woven canvas belt with leather trim", 150},
	{"Crew Socks 3-Pack", "14.99", "/images/crew-socks.jpg", "accessories", "Cushioned cotton-blend crew socks", 200},
}

func main() {
	var (
		adminName     string
		adminEmail    string
		adminPassword string
		skipProducts  bool
	)

	flag.StringVar(&adminName, "admin-name", "Administrator", "Name for the initial administrator account")
	flag.StringVar(&adminEmail, "admin-email", "admin@storefront.local", "Email for the initial administrator account")
	flag.StringVar(&adminPassword, "admin-password", "", "Password for the initial administrator account (required)")
	flag.BoolVar(&skipProducts, "skip-products", false, "Skip seeding the demo product catalog")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  "info",
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if adminPassword == "" {
		log.Fatal("Administrator password required. Usage: seed -admin-password <password>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	ctx := context.Background()

	if err := seedAdministrator(ctx, db, log, adminName, adminEmail, adminPassword); err != nil {
		log.Fatal("Failed to seed administrator", zap.Error(err))
	}

	if !skipProducts {
		if err := seedCatalog(ctx, db, log); err != nil {
			log.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	log.Info("Seeding completed")
}

func seedAdministrator(ctx context.Context, db *persistence.Database, log *zap.Logger, name, email, password string) error {
	userRepo := persistence.NewGormUserRepository(db.DB)

	exists, err := userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		log.Info("Administrator account already exists, skipping", zap.String("email", email))
		return nil
	}

	admin, err := identity.NewAdministrator(name, email, password)
	if err != nil {
		return err
	}
	if err := userRepo.Save(ctx, admin); err != nil {
		return err
	}

	log.Info("Administrator account created",
		zap.String("email", admin.Email),
		zap.String("id", admin.ID.String()),
	)
	return nil
}

func seedCatalog(ctx context.Context, db *persistence.Database, log *zap.Logger) error {
	productRepo := persistence.NewGormProductRepository(db.DB)

	count, err := productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Catalog already has products, skipping", zap.Int64("count", count))
		return nil
	}

	for _, sp := range seedProducts {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return fmt.Errorf("invalid seed price for %q: %w", sp.name, err)
		}

		product, err := catalog.NewProduct(sp.name, price, sp.image, sp.category, sp.description, sp.inventory)
		if err != nil {
			return fmt.Errorf("invalid seed product %q: %w", sp.name, err)
		}
		if err := productRepo.Save(ctx, product); err != nil {
			return fmt.Errorf("failed to save product %q: %w", sp.name, err)
		}
	}

	log.Info("Demo catalog seeded", zap.Int("products", len(seedProducts)))
	return nil
}
