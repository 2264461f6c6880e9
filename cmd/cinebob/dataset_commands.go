package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cinebob/internal/catalog/store"
	"cinebob/internal/config"
	"cinebob/internal/dataset"
)

func newDatasetCommand(ctx *commandContext) *cobra.Command {
	datasetCmd := &cobra.Command{
		Use:   "dataset",
		Short: "Dataset processing and inspection",
	}

	datasetCmd.AddCommand(newDatasetProcessCommand(ctx))
	datasetCmd.AddCommand(newDatasetInspectCommand(ctx))

	return datasetCmd
}

func newDatasetProcessCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "process <raw.csv>",
		Short: "Normalize a raw dataset export into the catalog store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			movies, report, err := dataset.ProcessFile(path)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.StorePath())
			if err != nil {
				return fmt.Errorf("open catalog store: %w", err)
			}
			defer st.Close()

			if err := st.ReplaceAll(cmd.Context(), movies); err != nil {
				return fmt.Errorf("persist processed dataset: %w", err)
			}

			stdout := cmd.OutOrStdout()
			rows := [][]string{
				{"Rows read", strconv.Itoa(report.RowsRead)},
				{"Rows kept", strconv.Itoa(report.RowsKept)},
				{"Rows dropped", strconv.Itoa(report.RowsDropped)},
			}
			fmt.Fprintln(stdout, renderTable([]string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
			fmt.Fprintf(stdout, "Catalog store updated: %s\n", cfg.StorePath())
			return nil
		},
	}
}

func newDatasetInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [raw.csv]",
		Short: "Print shape, missing values, and genre frequencies for a raw export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := ""
			if len(args) > 0 {
				path = args[0]
			} else {
				path = cfg.Catalog.RawCSVPath
			}
			if strings.TrimSpace(path) == "" {
				return errors.New("no dataset path given and catalog.raw_csv_path is not configured")
			}
			expanded, err := config.ExpandPath(path)
			if err != nil {
				return err
			}

			inspection, err := dataset.InspectFile(expanded)
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "Dataset: %s\n", expanded)
			fmt.Fprintf(stdout, "Shape: %d rows x %d columns\n\n", inspection.Rows, len(inspection.Columns))

			columnRows := make([][]string, 0, len(inspection.Columns))
			for _, col := range inspection.Columns {
				columnRows = append(columnRows, []string{
					col.Name,
					strconv.Itoa(col.Missing),
					strings.Join(col.Samples, ", "),
				})
			}
			fmt.Fprintln(stdout, renderTable(
				[]string{"Column", "Missing", "Samples"},
				columnRows,
				[]columnAlignment{alignLeft, alignRight, alignLeft}))

			if !inspection.GenreColumn {
				fmt.Fprintln(stdout, "\nNo genre column found")
				return nil
			}

			genreRows := make([][]string, 0, len(inspection.TopGenres))
			for _, gc := range inspection.TopGenres {
				genreRows = append(genreRows, []string{gc.Genre, strconv.Itoa(gc.Count)})
			}
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, renderTable(
				[]string{"Genre", "Count"},
				genreRows,
				[]columnAlignment{alignLeft, alignRight}))
			fmt.Fprintf(stdout, "Distinct genres: %d\n", len(inspection.Genres))
			return nil
		},
	}
}
