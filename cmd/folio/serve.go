package main

import (
	"os"

	"github.com/spf13/cobra"

	foliohttp "github.com/ahmedw/folio/adapters/http"
	"github.com/ahmedw/folio/bootstrap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio server",
	Long: `Start the folio server.

The server will:
  - Load configuration from folio.yaml (or --config)
  - Or load configuration from FOLIO_* environment variables
  - Open the SQLite database and apply migrations
  - Serve the public site, the admin area and the JSON API

Environment variables (for container deployments):
  FOLIO_SESSION_SECRET       - Session signing secret (required)
  FOLIO_PASSWORD_SALT        - Admin password salt (required)
  FOLIO_ADMIN_USERNAME       - Admin username (required)
  FOLIO_ADMIN_PASSWORD_HASH  - Admin password digest (required, see 'folio hash')
  FOLIO_DATABASE_DSN         - Database path (default: folio.db)
  FOLIO_SERVER_PORT          - Server port (default: 8080)
  FOLIO_LOG_LEVEL            - Log level: debug, info, warn, error

Examples:
  folio serve
  folio serve --config /etc/folio/config.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if _, err := os.Stat(path); err != nil {
		// No config file; bootstrap falls back to environment variables.
		path = ""
	}

	foliohttp.SetVersion(version)

	app, err := bootstrap.New(path)
	if err != nil {
		return err
	}
	return app.Run()
}
