package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"isinscraper/config"
	"isinscraper/stock"
	"isinscraper/utils"

	"github.com/spf13/cobra"
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	baseURL       string
	companiesFile string
	logLevel      string
	envFileLoaded bool
}

func (o *globalOptions) logger(w io.Writer) (*slog.Logger, error) {
	level, err := utils.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	logger := utils.NewLogger(w, level)
	if !o.envFileLoaded {
		logger.Debug("no .env file found, using environment only")
	}
	return logger, nil
}

func (o *globalOptions) registry() (*config.Registry, error) {
	registry, err := config.BuildRegistry(o.companiesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}
	return registry, nil
}

func (o *globalOptions) scraper(logger *slog.Logger) *stock.ScreenerScraper {
	return stock.NewScreenerScraper(stock.ScreenerConfig{BaseURL: o.baseURL}, logger)
}

// NewRootCmd creates the root command. Without a subcommand it runs a single
// interactive lookup.
func NewRootCmd() *cobra.Command {
	settings := config.Load()
	opts := &globalOptions{envFileLoaded: settings.EnvFileLoaded}

	cmd := &cobra.Command{
		Use:   "isinscraper [ISIN]",
		Short: "Look up a company by ISIN and print its Screener key metrics",
		Long: `isinscraper maps an ISIN to its NSE ticker using a built-in table
(optionally extended with --companies), fetches the company's page from
Screener.in and prints the key ratios, pros and cons.

When no ISIN argument is given it is read from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", settings.BaseURL, "Screener company page prefix")
	cmd.PersistentFlags().StringVar(&opts.companiesFile, "companies", settings.CompaniesFile, "YAML file with extra ISIN entries")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")

	cmd.AddCommand(NewListCmd(opts))
	cmd.AddCommand(NewServeCmd(opts, settings.Port))

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
