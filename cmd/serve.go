package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shareapi/share-api-mcp/internal/logging"
	"github.com/shareapi/share-api-mcp/internal/server"
)

var (
	flagLogFile    string
	flagLogMaxSize int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Run the MCP server, speaking the Model Context Protocol over
stdin/stdout. Intended to be spawned by an MCP host (e.g. an editor or
agent runtime), not invoked interactively.

Log output goes to a rotating log file and, for warnings, to stderr.
Stdout is reserved for protocol framing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flagLogFile, "log-file", "mcp.log", "log file path (empty disables file logging)")
	f.IntVar(&flagLogMaxSize, "log-max-size", 10, "log file size in MB before rotation")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.Config{
		File:      flagLogFile,
		MaxSizeMB: flagLogMaxSize,
	})

	logger.Info("mcp server starting",
		"version", appVersion,
		"log_file", flagLogFile,
		"pid", os.Getpid(),
	)

	s := server.New(appVersion, logger)
	return s.ServeStdio()
}
