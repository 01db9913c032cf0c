// Command orders-api serves the order-fulfillment HTTP API.
//
//	@title			Stencil Orders API
//	@version		0.1.0
//	@description	Thin HTTP layer over the order-fulfillment schema: orders, items, shipments and the weekly tracking view.
//	@description	Each request is bounded by APP_QUERY_TIMEOUT (default 30s), including the wait for a pooled connection;
//	@description	a saturated pool answers with the endpoint's error status once it expires.
//	@BasePath		/
//
//	@securityDefinitions.apikey	AdminToken
//	@in							header
//	@name						Authorization
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "orders-api",
	Short: "Order-fulfillment HTTP API over Postgres",
	Long: `orders-api exposes orders, order items, shipments and the weekly
tracking report over HTTP. All settings come from the environment
(DATABASE_URL, APP_ADDR, APP_POOL_MIN, ...), an optional .env file and
an optional YAML file named by APP_CONFIG_FILE.

Without a subcommand it runs the server.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
