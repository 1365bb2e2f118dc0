package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Registers the OpenAPI document served at /swagger/*.
	_ "github.com/expotrade/client-portal/docs"
)

// @title                       Client Portal API
// @version                     1.0
// @description                 Accounts, orders, documents, messages and lead forms for export clients.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "portal",
	Short:         "Export client portal API",
	Long:          "Client portal backend: accounts, orders, documents, messages and public lead forms.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(userCmd)
}
