package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var appVersion = "dev"

func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "share-api-mcp",
	Short: "MCP bridge to a share API server",
	Long: `share-api-mcp exposes a remote share API (entries, attachments,
custom fields) as tools over the Model Context Protocol.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is fine; real deployments use plain env vars.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

func Execute() error {
	rootCmd.Version = appVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("share-api-mcp v%s\n", appVersion))
	return rootCmd.Execute()
}
