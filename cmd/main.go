package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"medmarket/internal/catalog"
	httpapi "medmarket/internal/http"
	"medmarket/internal/medinfo"
	"medmarket/internal/repository"
	"medmarket/internal/service"

	_ "medmarket/docs"
)

// @title MedMarket API
// @version 1.0
// @description Pharmacy marketplace: shop approval, click-and-collect orders, carts and medicine information.
// @host localhost:9091
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	app := &cli.App{
		Name:  "medmarket",
		Usage: "pharmacy marketplace API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":9091", Usage: "HTTP listen address", EnvVars: []string{"APP_ADDR"}},
			&cli.StringFlag{Name: "catalog", Usage: "YAML catalog file (embedded seed when empty)", EnvVars: []string{"CATALOG_FILE"}},
			&cli.StringFlag{Name: "gemini-api-key", Usage: "Gemini API key for medicine information", EnvVars: []string{"GEMINI_API_KEY", "API_KEY"}},
			&cli.StringFlag{Name: "gemini-model", Value: medinfo.DefaultModel, EnvVars: []string{"GEMINI_MODEL"}},
			&cli.DurationFlag{Name: "medinfo-timeout", Value: medinfo.DefaultTimeout, EnvVars: []string{"MEDINFO_TIMEOUT"}},
			&cli.IntFlag{Name: "medinfo-cache", Value: 128, Usage: "cached descriptions, 0 disables", EnvVars: []string{"MEDINFO_CACHE_SIZE"}},
			&cli.DurationFlag{Name: "shutdown-timeout", Value: 5 * time.Second, EnvVars: []string{"SHUTDOWN_TIMEOUT"}},
			&cli.StringFlag{Name: "app-version", Value: "dev", EnvVars: []string{"APP_VERSION"}},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(c.String("catalog"))
	if err != nil {
		return err
	}

	store := repository.NewMemoryStore()
	ordersRepo := repository.NewMemoryOrders(store)
	cartsRepo := repository.NewMemoryCarts(store)
	tx := repository.NewMemoryTx(store)

	shopsSvc := service.NewShopService(store, tx, cat)
	ordersSvc := service.NewOrderService(store, ordersRepo, tx)
	cartsSvc := service.NewCartService(cartsRepo, store, ordersSvc, tx)

	if err := shopsSvc.Seed(ctx, cat.Shops()); err != nil {
		return err
	}

	var gen medinfo.Generator
	if key := c.String("gemini-api-key"); key != "" {
		g, err := medinfo.NewGeminiGenerator(ctx, key, c.String("gemini-model"))
		if err != nil {
			return err
		}
		gen = g
	} else {
		log.Printf("gemini API key not set, medicine information is disabled")
	}
	info, err := medinfo.NewService(gen, c.Duration("medinfo-timeout"), c.Int("medinfo-cache"))
	if err != nil {
		return err
	}

	srv := httpapi.NewServer(shopsSvc, ordersSvc, cartsSvc, info, c.String("app-version"))

	httpServer := &http.Server{
		Addr:    c.String("addr"),
		Handler: srv.Engine(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.Duration("shutdown-timeout"))
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
			return err
		}
		return nil
	})
	return g.Wait()
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	log.Printf("loading catalog from %s", path)
	return catalog.LoadFile(path)
}
