package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expotrade/client-portal/internal/core/service"
	"github.com/expotrade/client-portal/internal/infrastructure/db/mongo"
	"github.com/expotrade/client-portal/internal/pkg/config"
)

// portal migrate — create MongoDB indexes.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the MongoDB indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMongo(cmd.Context(), func(ctx context.Context, store *mongo.Store, ensure func() error) error {
			if err := ensure(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "indexes ensured")
			return nil
		})
	},
}

// portal user activate|deactivate <email>
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage portal accounts",
}

var userActivateCmd = &cobra.Command{
	Use:   "activate <email>",
	Short: "Allow an account to sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActive(cmd, args[0], true)
	},
}

var userDeactivateCmd = &cobra.Command{
	Use:   "deactivate <email>",
	Short: "Block an account; its tokens are rejected from the next request on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActive(cmd, args[0], false)
	},
}

func init() {
	userCmd.AddCommand(userActivateCmd)
	userCmd.AddCommand(userDeactivateCmd)
}

func setActive(cmd *cobra.Command, email string, active bool) error {
	return withMongo(cmd.Context(), func(ctx context.Context, store *mongo.Store, _ func() error) error {
		users := store.Users()
		user, err := users.FindByEmail(ctx, service.NormalizeEmail(email))
		if err != nil {
			return err
		}
		if err := users.SetActive(ctx, user.ID, active); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s active=%t\n", user.Email, active)
		return nil
	})
}

func withMongo(ctx context.Context, fn func(ctx context.Context, store *mongo.Store, ensureIndexes func() error) error) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	return fn(ctx, mongo.NewStore(db), func() error { return mongo.EnsureIndexes(ctx, db) })
}
