package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bizpro",
	Short: "Business English diagnosis",
	Long:  "BizPro runs a short business English test and turns the answers into a level, a learning roadmap and job-match advice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the diagnosis in the terminal (same as running bizpro with no command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func addTUIFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-file", "", "Write logs to this file while the TUI runs")
	cmd.Flags().String("export-dir", ".", "Directory for exported workbooks")
	cmd.Flags().String("resume", "", "Continue a stored session by ID (needs --db or BIZPRO_REDIS_URL)")
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a dotenv file with BIZPRO_* and provider settings")
	rootCmd.PersistentFlags().String("preset", "", "Test preset (overrides BIZPRO_PRESET)")
	rootCmd.PersistentFlags().String("db", "", "SQLite file for sessions (overrides BIZPRO_DB)")
	addTUIFlags(rootCmd)
	addTUIFlags(takeCmd)

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(versionCmd)
}
