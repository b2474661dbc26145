package cli

import "github.com/spf13/cobra"

// NewRootCommand builds the custdir command tree with its persistent flags.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "custdir",
		Short: "Query the customer directory",
		Long: `A CLI for looking up delivery customers, listing a day's stops and
exporting the directory from any configured dataset source.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Parse persistent flags
	rootCmd.PersistentFlags().StringVarP(&FlagSource, "source", "s", FlagSource, "Dataset source (embedded, file, sqlite, postgres)")
	rootCmd.PersistentFlags().StringVarP(&FlagDataset, "dataset", "d", FlagDataset, "Dataset file (.json, .jsonc or .json.zst)")
	rootCmd.PersistentFlags().StringVar(&FlagDBPath, "db", FlagDBPath, "SQLite database path")
	rootCmd.PersistentFlags().CountVarP(&FlagLogLevel, "verbose", "v", "Verbose level")

	rootCmd.AddCommand(StatsCommand())
	rootCmd.AddCommand(DayCommand())
	rootCmd.AddCommand(SearchCommand())
	rootCmd.AddCommand(GetCommand())
	rootCmd.AddCommand(ExportCommand())

	return rootCmd
}
