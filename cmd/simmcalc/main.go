// Package main is a thin demonstration CLI: it reads a CRIF CSV file, runs
// the SIMM aggregation pipeline, and prints the breakdown table. It is not
// part of the core contract — CSV parsing and CLI front-ends are out of
// scope for the library itself.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/suhasg-simmrs/simm-rs/internal/config"
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/engine"
	"github.com/suhasg-simmrs/simm-rs/internal/portfolio"
	"github.com/suhasg-simmrs/simm-rs/pkg/logger"
)

func main() {
	crifPath := flag.String("crif", "", "path to a CRIF CSV file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.Pretty})

	if *crifPath == "" {
		log.Fatal().Msg("missing required -crif flag")
	}

	table, err := loadCRIF(*crifPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *crifPath).Msg("loading CRIF file")
	}

	result, err := engine.Run(table, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("running SIMM engine")
	}

	printBreakdown(result)
}

func loadCRIF(path string) (crif.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return crif.Table{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return crif.Table{}, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return crif.Table{}, fmt.Errorf("empty CRIF file: %s", path)
	}

	header := rows[0]
	records := make([]crif.Record, 0, len(rows)-1)
	for _, line := range rows[1:] {
		rec := make(crif.Record, len(header))
		for i, col := range header {
			if i < len(line) {
				rec[col] = line[i]
			}
		}
		records = append(records, rec)
	}

	return crif.NewTable(header, records)
}

func printBreakdown(result portfolio.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, joinTab(portfolio.Header()))
	for _, row := range result.Breakdown {
		fmt.Fprintln(w, joinTab(row.Strings()))
	}
	w.Flush()
}

func joinTab(cells []string) string {
	out := ""
	for i, c := range cells {
		if i > 0 {
			out += "\t"
		}
		out += c
	}
	return out
}
