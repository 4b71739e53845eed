package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aipros/console/internal/app"
)

var appOpts app.Options

var rootCmd = &cobra.Command{
	Use:   "aipros",
	Short: "Terminal console for the AIPROS command backend",
	Long: `aipros sends typed, spoken or preset commands to an AIPROS backend
and shows each reply as a short-lived notification.`,
	Run: func(cmd *cobra.Command, args []string) {
		runConsole()
	},
}

func runConsole() {
	application, err := app.NewApplication(appOpts)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&appOpts.BackendURL, "backend", "", "backend base URL (overrides profile and AIPROS_BACKEND_URL)")
	rootCmd.PersistentFlags().StringVar(&appOpts.LogFile, "log-file", "", "log file path (default ~/.aipros/console.log)")
	rootCmd.PersistentFlags().BoolVar(&appOpts.Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(profileCmd)
}
