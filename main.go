package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"fedtools/pkg/config"
	"fedtools/pkg/fed"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML config file (flags override it)")
		series     = flag.String("series", "", "Document series: beigebook, minutes or statements")
		startYear  = flag.Int("start-year", 0, "First year to discover (0 = series default)")
		split      = flag.Int("split", 0, "Last year served from the historical archive (0 = series default)")
		workers    = flag.Int("workers", 0, "Concurrent fetch cap (0 = config default)")
		output     = flag.String("out", "", "Dataset output path (.gob, .pkl or .pickle); empty skips saving")
		useFeed    = flag.Bool("feed", false, "Also discover recent locations from the RSS press feed")
		verbose    = flag.Bool("verbose", false, "Print status lines and per-document progress")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *series != "" {
		cfg.Series = *series
	}
	if *startYear != 0 {
		cfg.StartYear = *startYear
	}
	if *split != 0 {
		cfg.HistoricalSplit = *split
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *output != "" {
		cfg.Output = *output
	}
	cfg.Verbose = cfg.Verbose || *verbose
	cfg.UseFeed = cfg.UseFeed || *useFeed

	def, err := fed.SeriesByName(cfg.Series)
	if err != nil {
		log.Fatalf("Failed to resolve series: %v", err)
	}

	opts := []fed.Option{
		fed.WithWorkers(cfg.Workers),
		fed.WithVerbose(cfg.Verbose),
		fed.WithFeedDiscovery(cfg.UseFeed),
	}
	if cfg.StartYear != 0 {
		opts = append(opts, fed.WithStartYear(cfg.StartYear))
	}
	if cfg.HistoricalSplit != 0 {
		opts = append(opts, fed.WithHistoricalSplit(cfg.HistoricalSplit))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, fed.WithUserAgent(cfg.UserAgent))
	}

	client, err := fed.New(def, opts...)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	start := time.Now()
	ds, err := client.Retrieve(context.Background())
	if err != nil {
		log.Fatalf("Retrieval failed: %v", err)
	}
	fmt.Printf("Retrieved %d %s rows in %s\n", ds.Len(), ds.Column(), time.Since(start).Round(time.Second))

	if cfg.Output != "" {
		if err := ds.Save(cfg.Output); err != nil {
			log.Fatalf("Failed to save dataset: %v", err)
		}
		fmt.Printf("Saved dataset to %s\n", cfg.Output)
	}
}
