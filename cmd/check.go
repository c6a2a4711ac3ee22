package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shareapi/share-api-mcp/internal/api"
	"github.com/shareapi/share-api-mcp/internal/config"
	"github.com/shareapi/share-api-mcp/internal/logging"
)

var (
	flagCheckEntryID int
	flagCheckBaseURL string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the connection to the share API",
	Long: `Run a standalone smoke test against the share API: auth info,
then a single entry fetch. Exit code 0 on success, 1 on failure.

Examples:
  share-api-mcp check
  share-api-mcp check --entry-id 42
  share-api-mcp check --base-url https://example.com/share`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.IntVar(&flagCheckEntryID, "entry-id", 1, "entry ID to fetch as smoke test")
	f.StringVar(&flagCheckBaseURL, "base-url", "", "override SHARE_API_BASE_URL")
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings := config.Load()

	baseURL := flagCheckBaseURL
	if baseURL == "" {
		baseURL = settings.BaseURL
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Share API Connection Test")
	fmt.Fprintln(out, "========================================")

	if baseURL == "" {
		fmt.Fprintln(out, "  [FAIL] no base URL: set SHARE_API_BASE_URL or pass --base-url")
		return fmt.Errorf("no base URL configured")
	}
	fmt.Fprintf(out, "  Base URL: %s\n", api.NormalizeBaseURL(baseURL))
	if settings.HasAuth() {
		fmt.Fprintf(out, "  Auth: basic (%s)\n", settings.AuthUser)
	} else {
		fmt.Fprintln(out, "  Auth: none")
	}

	client := api.New(settings, logging.NewNop(), api.WithTimeout(10*time.Second))
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	info, err := client.GetAuthInfo(ctx, baseURL)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] auth endpoint: %v\n", err)
		return fmt.Errorf("connection test failed")
	}
	fmt.Fprintf(out, "  [OK] auth endpoint reachable (%s)\n", info.Format())

	entry, err := client.GetEntry(ctx, baseURL, flagCheckEntryID)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] fetch entry %d: %v\n", flagCheckEntryID, err)
		return fmt.Errorf("connection test failed")
	}
	fmt.Fprintf(out, "  [OK] fetched entry #%d: %s (%d attachments)\n",
		entry.ID, entry.Subject, len(entry.Attachments))

	fmt.Fprintln(out, "All checks passed.")
	return nil
}
