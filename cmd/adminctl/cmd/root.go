package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	token   string
)

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Terminal companion for the admin dashboard API",
	Long: `adminctl browses the admin dashboard's paginated tables from a
terminal: list any resource, search it, and soft-delete rows.`,
}

// Execute runs the root command; called once from main.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("ADMINBOARD_TOKEN"), "bearer token")
}
