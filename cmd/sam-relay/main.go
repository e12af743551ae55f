// sam-relay serves a simplified SAM.gov contract opportunity search API.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/eshaffer321/sam-search-relay/internal/cli"
	"github.com/eshaffer321/sam-search-relay/internal/infrastructure/config"
)

var (
	configPath string
	verbose    bool
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	rootCmd := &cobra.Command{
		Use:   "sam-relay",
		Short: "SAM.gov contract opportunity search relay",
		Long: `sam-relay accepts simplified contract opportunity searches, forwards them
to the SAM.gov opportunities API and returns normalized results.

Without SAM_API_KEY it serves sample data so clients keep working.

Examples:
  # Run the HTTP server (default command)
  sam-relay serve --port 10000

  # Run one search from the terminal
  sam-relay search --naics 541614 --set-aside SB --days 14 --state GA
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunServe(loadConfig(), cli.ServeFlags{Verbose: verbose})
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Config file (falls back to environment variables)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(searchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	return config.LoadOrEnvWithPath(configPath)
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunServe(loadConfig(), cli.ServeFlags{Port: port, Verbose: verbose})
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from PORT or config, else 10000)")
	return cmd
}

func searchCmd() *cobra.Command {
	var flags cli.SearchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search and print the result",
		Long: `search builds the same query the server would, calls SAM.gov (or the
sample data when no key is configured) and prints the normalized response.

Only the first --naics and --set-aside values reach SAM.gov.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			flags.Verbose = verbose
			err := cli.RunSearch(ctx, loadConfig(), flags, cmd.OutOrStdout())
			if errors.Is(err, cli.ErrSearchFailed) {
				// The failure body is already printed.
				cmd.SilenceErrors = true
			}
			return err
		},
	}

	cmd.Flags().StringArrayVar(&flags.NAICSCodes, "naics", nil, "NAICS code (repeatable)")
	cmd.Flags().StringArrayVar(&flags.SetAsides, "set-aside", nil, "Set-aside type, e.g. SB, WOSB, SDVOSBC (repeatable)")
	cmd.Flags().IntVar(&flags.DueWithinDays, "days", 0, "Posting and response window in days (default 30)")
	cmd.Flags().StringVar(&flags.State, "state", "", "Place of performance state, e.g. GA")
	cmd.Flags().StringVar(&flags.City, "city", "", "Place of performance city (echoed only)")
	cmd.Flags().StringVarP(&flags.Format, "format", "o", "json", "Output format (json|table)")
	return cmd
}
