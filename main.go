package main

import (
	"context"
	"fmt"
	"os"

	"tla_rarity_sync/internal/config"
	"tla_rarity_sync/internal/notifications"
	"tla_rarity_sync/internal/processing"
	"tla_rarity_sync/internal/scryfall"
	"tla_rarity_sync/internal/sheets"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfg config.Sync

var rootCmd = &cobra.Command{
	Use:   "tla_rarity_sync",
	Short: "Sync Scryfall card rarities into a Google Sheet",
	Long: `Reads a column of card names from a Google Sheet, fetches the rarity
of every card in one Scryfall set, and writes single-letter rarity codes
(M/R/U/C) into the column to the right of the names.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSync,
}

func init() {
	rootCmd.Flags().StringVar(&cfg.SheetURL, "sheet-url", "", "Target Google Sheet URL. If omitted, a new spreadsheet is created.")
	rootCmd.Flags().StringVar(&cfg.Worksheet, "worksheet", "Sheet1", "Worksheet/tab name inside the spreadsheet")
	rootCmd.Flags().StringVar(&cfg.Column, "column", "A", "Column containing card names")
	rootCmd.Flags().IntVar(&cfg.StartRow, "start-row", 2, "Row number where card names begin (2 skips the header)")
	rootCmd.Flags().StringVar(&cfg.SetCode, "set-code", "tla", "Scryfall set code to sync")
	rootCmd.Flags().StringVar(&cfg.CreateTitle, "create-title", "The Last Airbender Sync", "Title used when creating a new spreadsheet")
	rootCmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "Show planned updates without modifying the sheet")
	rootCmd.Flags().StringVar(&cfg.CredentialsFile, "credentials", "", "Google credentials file (defaults to GOOGLE_APPLICATION_CREDENTIALS, then credentials.json)")
}

func main() {
	setupEnvironment()

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Sync failed")
		os.Exit(1)
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = getEnvWithDefault("GOOGLE_APPLICATION_CREDENTIALS", "credentials.json")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	sheetsClient, err := sheets.NewClient(ctx, cfg.CredentialsFile)
	if err != nil {
		return fmt.Errorf("credential error: %w", err)
	}

	spreadsheetID, err := resolveSpreadsheet(ctx, sheetsClient)
	if err != nil {
		return err
	}

	scryfallClient := scryfall.NewClient(
		scryfall.WithRetryConfig(config.DefaultResilienceConfig.CatalogFetch),
	)
	catalog, err := scryfallClient.FetchSetCards(ctx, cfg.SetCode)
	if err != nil {
		return err
	}

	result, err := processing.SyncSheet(ctx, sheetsClient, processing.Params{
		SpreadsheetID: spreadsheetID,
		Worksheet:     cfg.Worksheet,
		Column:        cfg.Column,
		StartRow:      cfg.StartRow,
		DryRun:        cfg.DryRun,
	}, catalog)
	if err != nil {
		return err
	}

	reportResult(result)
	newNotifier().NotifySyncResult(ctx, result.Updated, len(result.Missing), cfg.DryRun)

	return nil
}

// resolveSpreadsheet returns the spreadsheet ID from --sheet-url, or
// creates a fresh spreadsheet when no URL was given.
func resolveSpreadsheet(ctx context.Context, sheetsClient *sheets.Client) (string, error) {
	if cfg.SheetURL != "" {
		return sheets.ParseSpreadsheetID(cfg.SheetURL)
	}

	id, url, err := sheetsClient.CreateSpreadsheet(ctx, cfg.CreateTitle)
	if err != nil {
		return "", err
	}
	fmt.Printf("Created spreadsheet: %s\n", url)
	log.Info().Str("spreadsheet_id", id).Msg("Created new spreadsheet")
	return id, nil
}

func reportResult(result *processing.SyncResult) {
	if len(result.Missing) > 0 {
		fmt.Println("The following cards were not found:")
		for _, name := range result.Missing {
			fmt.Printf(" - %s\n", name)
		}
	}
	fmt.Printf("Updated %d rows.\n", result.Updated)
}

func newNotifier() *notifications.Client {
	enabled := getEnvWithDefault("NTFY_ENABLED", "false") == "true"
	baseURL := getEnvWithDefault("NTFY_URL", "https://ntfy.sh")
	topic := getEnvWithDefault("NTFY_TOPIC", "tla-rarity-sync")

	return notifications.NewClient(baseURL, topic, enabled, config.DefaultResilienceConfig.Notify)
}
