package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trakthub/lib/configutil"
	"trakthub/lib/restyutil"
	"trakthub/lib/scrapers/trakt"
	"trakthub/lib/telemetry"
)

// Config holds the optional CLI configuration. Without a trakthub.json5
// the public site is scraped directly.
type Config struct {
	BaseUrl     string `json:"base_url"`
	RapidApiKey string `json:"rapidapi_key"`
}

var rootCmd = &cobra.Command{
	Use:   "trakthub",
	Short: "trakthub is a CLI for querying the trakt.tv catalog.",
}

var (
	verbose *bool
	pages   *int
)

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output and dump raw exchanges to .dev/resty/trakthub.")
	pages = rootCmd.PersistentFlags().IntP("pages", "p", trakt.MaxPages, "How many result pages to fetch per listing.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
	os.Exit(1)
}

func newHub(ctx context.Context) *trakt.Hub {
	telemetry.InitSlog(*verbose)

	cfg, err := configutil.ReadConfig[Config]("trakthub.json5")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		fatal("failed to read config", err)
	}
	if *verbose {
		trakt.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/trakthub"))
	}

	hub, err := trakt.NewHub(ctx, trakt.ClientOptions{
		BaseUrl:     cfg.BaseUrl,
		RapidApiKey: cfg.RapidApiKey,
	})
	if err != nil {
		fatal("failed to initialize client", err)
	}
	hub.Pages = *pages
	return hub
}
