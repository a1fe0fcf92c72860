// Command storefront-demo drives the storefront package against a running
// catalog service: it loads the catalog, adds a product to the locally
// persisted cart, and prints the rendered cart page.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aurora-jewelry/aurora-store/storefront"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	defaultURL := os.Getenv("CATALOG_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3000"
	}

	var baseURL, cartDir string
	var productID int
	flag.StringVar(&baseURL, "url", defaultURL, "Catalog service base URL")
	flag.StringVar(&cartDir, "cart-dir", "", "Directory for the persisted cart (default: user cache dir)")
	flag.IntVar(&productID, "add", 1, "Product id to add to the cart")
	flag.Parse()

	if cartDir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			log.Fatalf("cart dir: %v", err)
		}
		cartDir = filepath.Join(cache, "aurora-store")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	client := storefront.NewCatalogClient(baseURL)
	storage := storefront.NewFileCartStore(cartDir)
	app := storefront.New(client, storage, logger)

	ctx := context.Background()
	if err := app.LoadProducts(ctx); err != nil {
		fmt.Println(app.RenderProducts())
		os.Exit(1)
	}

	logger.Info("Catalog loaded", zap.Int("products", len(app.Products())))

	result, err := app.Dispatch(storefront.Action{Name: "add-to-cart", ProductID: productID})
	if err != nil {
		log.Fatalf("add to cart: %v", err)
	}
	fmt.Println(result.Notification)

	result, err = app.Dispatch(storefront.Action{Name: "show-page", Page: "cart"})
	if err != nil {
		log.Fatalf("show cart: %v", err)
	}
	fmt.Println(result.Fragment)
	fmt.Printf("Items in cart: %d\n", result.CartCount)
}
