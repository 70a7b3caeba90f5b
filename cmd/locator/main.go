package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/store-locator/internal/config"
	"github.com/store-locator/internal/infrastructure/nominatim"
	"github.com/store-locator/internal/pkg/logger"
	"github.com/store-locator/internal/render"
	"github.com/store-locator/internal/repository/csvstore"
	"github.com/store-locator/internal/usecase"
	"github.com/store-locator/internal/usecase/dto"
)

var (
	address     string
	zipCode     string
	units       string
	output      string
	storesPath  string
	geocoderURL string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "locator",
	Short: "Locate the nearest store as the crow flies",
	Long: `Locate the nearest store (as the crow flies) from the store dataset.
Prints the store address as well as the distance to the store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLocate,
}

func init() {
	rootCmd.Flags().StringVar(&address, "address", "", "Find nearest store to this address. If there are multiple best-matches, return the first.")
	rootCmd.Flags().StringVar(&zipCode, "zip", "", "Find nearest store to this zip code. If there are multiple best-matches, return the first.")
	rootCmd.Flags().StringVar(&units, "units", "mi", "Display units in miles or kilometers (mi|km)")
	rootCmd.Flags().StringVar(&output, "output", "text", "Output in human-readable text, or in JSON (text|json)")
	rootCmd.Flags().StringVar(&storesPath, "stores", "store-locations.csv", "Path to the store dataset CSV")
	rootCmd.Flags().StringVar(&geocoderURL, "geocoder-url", "https://nominatim.openstreetmap.org", "Base URL of the Nominatim geocoding service")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func runLocate(cmd *cobra.Command, args []string) error {
	// Invoked with no arguments at all: print usage and fail.
	if len(os.Args) == 1 {
		cmd.Help()
		os.Exit(1)
	}

	format, err := render.ParseFormat(output)
	if err != nil {
		return err
	}

	level := "error"
	if verbose {
		level = "debug"
	}
	log, err := logger.New(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	geocodeRepo := nominatim.NewClient(&config.GeocoderConfig{
		BaseURL:        geocoderURL,
		UserAgent:      "store-locator-cli/1.0",
		RequestTimeout: 10,
	}, log)
	storeRepo := csvstore.NewStoreRepository(storesPath, log)

	// The CLI runs without Redis: every invocation geocodes live.
	locatorUC := usecase.NewLocatorUseCase(storeRepo, geocodeRepo, nil, log, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := locatorUC.FindNearestStore(ctx, dto.NearestStoreRequest{
		Address: address,
		Zip:     zipCode,
		Units:   units,
	})
	if err != nil {
		return err
	}

	out, err := render.NearestStore(result, format)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
