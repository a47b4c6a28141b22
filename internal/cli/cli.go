package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/luma-events/internal/calendar"
	"github.com/pfrederiksen/luma-events/internal/config"
	"github.com/pfrederiksen/luma-events/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitError  = 1
	ExitNoData = 2
)

// ErrNoData reports that the page was fetched but carried no extractable
// event data. The record (with its error field) has already been written;
// main maps this to ExitNoData so scripts can tell "no event" from real
// failures.
var ErrNoData = errors.New("no event data found")

var (
	flagFormat  string
	flagConfig  string
	flagICSFile string
	flagTimeout time.Duration
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "luma-events <url>",
		Short: "Extract a normalized event record from a Lu.ma event page",
		Long: `Extract a normalized event record from a Lu.ma event page.

Runs structured-data (JSON-LD) and layout-heuristic extraction over the page
and merges the results, preferring structured values when present. Extraction
is best-effort: missing fields mean "not detected", not failure.`,
		Args:          cobra.ExactArgs(1),
		RunE:          runScrape,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to heuristics YAML file")
	cmd.Flags().StringVar(&flagICSFile, "ics", "", "Also write the event as an iCalendar file")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", scraper.Timeout, "Page fetch timeout")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	url := strings.TrimSpace(args[0])
	if url == "" {
		return fmt.Errorf("url is required")
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Scraping %s\n", url)
	}

	sc := scraper.NewWithConfig(cfg)
	if flagTimeout > 0 {
		sc.SetTimeout(flagTimeout)
	}
	rec := sc.ScrapeEvent(url)

	if err := WriteRecord(os.Stdout, rec, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagICSFile != "" && rec.Error == "" {
		ics := calendar.GenerateICS(rec)
		if err := os.WriteFile(flagICSFile, []byte(ics), 0600); err != nil {
			return fmt.Errorf("writing ics file: %w", err)
		}
		if flagVerbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", flagICSFile)
		}
	}

	if rec.Error != "" {
		return ErrNoData
	}
	return nil
}
