package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/columnlab/tabular/internal/render"
	"github.com/columnlab/tabular/pkg/columnar"
	"github.com/columnlab/tabular/pkg/config"
	"github.com/columnlab/tabular/pkg/logger"
	"github.com/columnlab/tabular/pkg/stats"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	var manifestPath, datasetName, logLevel string

	root := &cobra.Command{
		Use:   "tabular",
		Short: "tabular - typed columnar tables over delimited text files",
		Long: `tabular parses delimited text files into strongly typed in-memory columns
and runs column-wise analysis and predicate filtering over them. Column types
are declared per dataset in a YAML manifest.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{Level: logLevel, Encoding: "console"})
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "tabular.yaml", "Path to the dataset manifest")
	root.PersistentFlags().StringVarP(&datasetName, "dataset", "d", "", "Dataset name from the manifest")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tabular v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List datasets declared in the manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := config.Load(manifestPath)
			if err != nil {
				return err
			}
			fmt.Println("Datasets:")
			for _, d := range manifest.Datasets {
				fmt.Printf("  - %s (%s, %d columns)\n", d.Name, d.Path, len(d.Columns))
			}
			return nil
		},
	})

	var describeJSON bool
	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Show shape, column names and types of a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, ds, err := loadStore(manifestPath, datasetName)
			if err != nil {
				return err
			}
			return describe(store, ds, describeJSON)
		},
	}
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "Emit JSON instead of text")
	root.AddCommand(describeCmd)

	var headRows int
	headCmd := &cobra.Command{
		Use:   "head",
		Short: "Print the first rows of a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore(manifestPath, datasetName)
			if err != nil {
				return err
			}
			_, err = render.Table(os.Stdout, store, headRows)
			return err
		},
	}
	headCmd.Flags().IntVarP(&headRows, "rows", "n", 10, "Number of rows to print")
	root.AddCommand(headCmd)

	var whereExprs []string
	var filterRows int
	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Derive and print the rows matching predicate(s)",
		Long: `Derive a new table containing only the rows matching every --where
predicate, applied in order. A predicate has the form "column OP literal"
with OP one of < <= > >= == != and a literal of the column's type.

Example:
  tabular filter -d particles --where "energy > 50" --where "pz > 10"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore(manifestPath, datasetName)
			if err != nil {
				return err
			}
			total := store.NumRows()
			for _, expr := range whereExprs {
				store, err = applyWhere(store, expr)
				if err != nil {
					return err
				}
			}
			if _, err := render.Table(os.Stdout, store, filterRows); err != nil {
				return err
			}
			fmt.Printf("%d / %d rows selected\n", store.NumRows(), total)
			return nil
		},
	}
	filterCmd.Flags().StringArrayVar(&whereExprs, "where", nil, `Predicate "column OP literal" (repeatable)`)
	filterCmd.Flags().IntVarP(&filterRows, "rows", "n", -1, "Limit printed rows (-1 for all)")
	_ = filterCmd.MarkFlagRequired("where")
	root.AddCommand(filterCmd)

	var analyzeJSON bool
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report mean/stddev/min/max for every numeric column",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore(manifestPath, datasetName)
			if err != nil {
				return err
			}
			return analyze(os.Stdout, store, analyzeJSON)
		},
	}
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit JSON instead of text")
	root.AddCommand(analyzeCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadStore resolves the dataset in the manifest and ingests its source.
func loadStore(manifestPath, datasetName string) (*columnar.Store, *config.Dataset, error) {
	if datasetName == "" {
		return nil, nil, fmt.Errorf("--dataset is required")
	}

	manifest, err := config.Load(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	ds, err := manifest.Dataset(datasetName)
	if err != nil {
		return nil, nil, err
	}

	log := logger.With(zap.String("dataset", ds.Name), zap.String("path", ds.Path))
	store, err := columnar.ReadFromCSV(ds.Path, ds.ColumnTypes(), columnar.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	log.Info("dataset loaded",
		zap.Int("rows", store.NumRows()),
		zap.Int("columns", store.NumCols()))

	return store, ds, nil
}

type columnInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type datasetInfo struct {
	Name    string       `json:"name"`
	Path    string       `json:"path"`
	Rows    int          `json:"rows"`
	Cols    int          `json:"cols"`
	Columns []columnInfo `json:"columns"`
}

func describe(store *columnar.Store, ds *config.Dataset, asJSON bool) error {
	names := store.ColumnNames()
	types := store.ColumnTypes()

	if asJSON {
		info := datasetInfo{
			Name: ds.Name,
			Path: ds.Path,
			Rows: store.NumRows(),
			Cols: store.NumCols(),
		}
		for i, name := range names {
			info.Columns = append(info.Columns, columnInfo{Name: name, Type: types[i].String()})
		}
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Dataset %s (%s)\n", ds.Name, ds.Path)
	fmt.Printf("  %d rows, %d columns\n", store.NumRows(), store.NumCols())
	for i, name := range names {
		fmt.Printf("  [%d] %-16s %s\n", i, name, types[i])
	}
	return nil
}

type columnSummary struct {
	Index  int           `json:"index"`
	Column string        `json:"column"`
	Type   string        `json:"type"`
	Stats  stats.Summary `json:"stats"`
}

// analyze reports every numeric column by ordinal position, so columns with
// duplicate names each get their own entry.
func analyze(w io.Writer, store *columnar.Store, asJSON bool) error {
	names := store.ColumnNames()

	var summaries []columnSummary
	for i, t := range store.ColumnTypes() {
		switch t {
		case columnar.TypeInt:
			summaries = append(summaries, columnSummary{
				Index: i, Column: names[i], Type: t.String(),
				Stats: stats.Summarize(columnar.View[int64](store, i)),
			})
		case columnar.TypeFloat:
			summaries = append(summaries, columnSummary{
				Index: i, Column: names[i], Type: t.String(),
				Stats: stats.Summarize(columnar.View[float64](store, i)),
			})
		}
	}

	if asJSON {
		out, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	for _, cs := range summaries {
		fmt.Fprintf(w, "[%d] %s (%s):\n", cs.Index, cs.Column, cs.Type)
		fmt.Fprintf(w, "  count:  %d\n", cs.Stats.Count)
		fmt.Fprintf(w, "  mean:   %.4f\n", cs.Stats.Mean)
		fmt.Fprintf(w, "  stddev: %.4f\n", cs.Stats.StdDev)
		fmt.Fprintf(w, "  min:    %.4f\n", cs.Stats.Min)
		fmt.Fprintf(w, "  max:    %.4f\n", cs.Stats.Max)
	}
	return nil
}
