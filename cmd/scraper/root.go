package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dominionleague"
	"dominionleague/internal/assets"
	"dominionleague/internal/catalog"
	"dominionleague/internal/config"
	"dominionleague/internal/logger"
	"dominionleague/internal/scraper"
	"dominionleague/internal/store"
)

// fetcherFactory builds the fetcher used for downloads. Tests swap it for a
// fake that never touches the network.
type fetcherFactory func(cfg *config.Config, log *slog.Logger) scraper.Fetcher

func httpFetcher(cfg *config.Config, log *slog.Logger) scraper.Fetcher {
	return scraper.NewDownloader(scraper.DownloaderOptions{
		Timeout:   cfg.Scraper.Timeout,
		UserAgent: cfg.Scraper.UserAgent,
	}, log)
}

type rootOptions struct {
	configPath   string
	root         string
	skipExisting bool
	only         string
	verbose      bool
}

// env is everything a subcommand needs once flags and config are resolved.
type env struct {
	catalog *store.Catalog
	scraper *scraper.Scraper
	log     *slog.Logger
	only    string
}

func newRootCmd(out io.Writer, newFetcher fetcherFactory) *cobra.Command {
	if newFetcher == nil {
		newFetcher = httpFetcher
	}
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "scraper",
		Short:        "Download card art and set assets into the storage root",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to dominion.yaml")
	flags.StringVar(&opts.root, "root", "", "storage root (overrides config)")
	flags.BoolVar(&opts.skipExisting, "skip-existing", false, "leave files that are already on disk")
	flags.StringVar(&opts.only, "only", "", "scrape only the card or set with this name")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every download")

	setup := func(cmd *cobra.Command) (*env, error) {
		return newEnv(cmd, opts, newFetcher)
	}

	root.AddCommand(cardsCmd(setup))
	root.AddCommand(setsCmd(setup))
	root.AddCommand(allCmd(setup))
	root.AddCommand(versionCmd())
	return root
}

func newEnv(cmd *cobra.Command, opts *rootOptions, newFetcher fetcherFactory) (*env, error) {
	cfg, err := config.LoadScraperConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.root != "" {
		cfg.Storage.Root = opts.root
	}
	if cmd.Flags().Changed("skip-existing") {
		cfg.Scraper.SkipExisting = opts.skipExisting
	}

	level, _ := logger.ParseLevel(cfg.Server.LogLevel)
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := logger.New(logger.Config{Writer: cmd.ErrOrStderr(), Format: cfg.Server.LogFormat, Level: level})

	cat, err := store.Load(dominionleague.CardsJSON, dominionleague.SetsJSON, dominionleague.KingdomsYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	resolver, err := assets.NewResolver(cfg.Storage.Root)
	if err != nil {
		return nil, err
	}
	log.Info("scraping into storage root", "root", resolver.Root(), "skip_existing", cfg.Scraper.SkipExisting)

	s := scraper.New(resolver, newFetcher(cfg, log), scraper.Options{SkipExisting: cfg.Scraper.SkipExisting}, log)
	return &env{catalog: cat, scraper: s, log: log, only: opts.only}, nil
}

func (e *env) cards() []catalog.Card {
	if e.only == "" {
		return e.catalog.Cards()
	}
	if card, ok := e.catalog.CardByName(e.only); ok {
		return []catalog.Card{*card}
	}
	return nil
}

func (e *env) sets() []catalog.Set {
	all := e.catalog.Sets()
	if e.only == "" {
		return all
	}
	for _, s := range all {
		if strings.EqualFold(s.Name, e.only) {
			return []catalog.Set{s}
		}
	}
	return nil
}

// writeAttribution logs rather than fails: the downloads already happened.
func (e *env) writeAttribution() {
	if _, err := e.scraper.WriteAttribution(); err != nil {
		e.log.Warn("failed to write attribution", "error", err)
	}
}

// printSummary writes the batch result, green when nothing failed.
func printSummary(w io.Writer, what string, summary scraper.Summary) {
	c := color.New(color.FgGreen)
	if !summary.OK() {
		c = color.New(color.FgYellow)
	}
	c.Fprintf(w, "Completed %s %s without problems\n", summary, what)
	for _, f := range summary.Failures {
		color.New(color.FgRed).Fprintf(w, "  %s: %v\n", f.Name, f.Err)
	}
}
