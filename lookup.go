package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"isinscraper/config"
	"isinscraper/stock"

	"github.com/spf13/cobra"
)

func runLookup(cmd *cobra.Command, opts *globalOptions, args []string) error {
	logger, err := opts.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	registry, err := opts.registry()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		fmt.Fprint(out, "Enter ISIN code: ")
		input, err = readLine(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read ISIN: %w", err)
		}
	}

	lookup(out, registry, opts.scraper(logger), input)
	return nil
}

// readLine reads one line. A final line without a newline is fine, and an
// input that ends before any text reads as an empty line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// lookup runs the whole workflow for one ISIN and writes the report to w.
// Every outcome, including not found and fetch failures, ends up as text.
func lookup(w io.Writer, registry *config.Registry, scraper *stock.ScreenerScraper, input string) {
	isin := config.NormalizeISIN(input)

	company, ok := registry.Lookup(isin)
	if !ok {
		fmt.Fprintf(w, "Company for ISIN %s not found.\n", isin)
		return
	}

	fmt.Fprintf(w, "\nFound company: %s\n", company.Name)

	result, err := scraper.Scrape(company)
	if err != nil {
		fmt.Fprintf(w, "Failed to retrieve data from Screener.in for %s\n", company.Name)
		fmt.Fprintln(w, "Failed to scrape stock data.")
		return
	}
	if result.Empty() {
		fmt.Fprintln(w, "Failed to scrape stock data.")
		return
	}

	printReport(w, result)
}

func printReport(w io.Writer, result *stock.Result) {
	fmt.Fprintln(w, "\nKey Metrics:")
	for label, value := range result.Metrics.All() {
		fmt.Fprintf(w, "%s: %s\n", label, value)
	}

	fmt.Fprintln(w, "\nPros:")
	for _, p := range result.Pros {
		fmt.Fprintf(w, "- %s\n", p)
	}

	fmt.Fprintln(w, "\nCons:")
	for _, c := range result.Cons {
		fmt.Fprintf(w, "- %s\n", c)
	}
}
