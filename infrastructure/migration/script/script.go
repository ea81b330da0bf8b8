package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jasonco/storefront-analytics/infrastructure/database/postgres"
	"github.com/jasonco/storefront-analytics/infrastructure/migration/seed"
	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/internal/domain"
	"github.com/jasonco/storefront-analytics/internal/usecases/authenticating"
	"github.com/jasonco/storefront-analytics/pkg/log"
)

var (
	rootCmd = &cobra.Command{
		Use:   "storefront-admin",
		Short: "Database and token tooling for the storefront analytics API",
	}

	migrateUpCmd = &cobra.Command{
		Use:   "migrate-up",
		Short: "Apply pending migrations",
		RunE:  migrateUp,
	}

	migrateDownCmd = &cobra.Command{
		Use:   "migrate-down",
		Short: "Roll back migrations",
		RunE:  migrateDown,
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo catalog and random orders",
		RunE:  runSeed,
	}

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Print a signed dashboard token for local use",
		RunE:  issueToken,
	}

	downSteps  int
	orderCount int
	days       int
	customers  int
	randSeed   int64
	subject    string
	email      string
	role       string
	tokenTTL   time.Duration
)

func main() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "migrations to roll back, 0 for all")

	seedCmd.Flags().IntVar(&orderCount, "orders", 500, "orders to generate")
	seedCmd.Flags().IntVar(&days, "days", 400, "spread orders over the last N days")
	seedCmd.Flags().IntVar(&customers, "customers", 120, "distinct customers")
	seedCmd.Flags().Int64Var(&randSeed, "seed", time.Now().UnixNano(), "random seed")

	tokenCmd.Flags().StringVar(&subject, "subject", "dev-admin", "token subject")
	tokenCmd.Flags().StringVar(&email, "email", "admin@example.com", "token email")
	tokenCmd.Flags().StringVar(&role, "role", domain.RoleAdmin, "token role")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")

	rootCmd.AddCommand(migrateUpCmd, migrateDownCmd, seedCmd, tokenCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.L.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command) (*config.Config, *postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	log.Setup(cfg.App.LogLevel, true)

	conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return cfg, conn, nil
}

func migrateUp(cmd *cobra.Command, _ []string) error {
	_, conn, err := setup(cmd)
	if err != nil {
		return err
	}
	defer conn.Close()

	applied, err := postgres.Migrate(conn.DB)
	if err != nil {
		return err
	}

	log.L.WithField("applied", applied).Info("Migrations applied")
	return nil
}

func migrateDown(cmd *cobra.Command, _ []string) error {
	_, conn, err := setup(cmd)
	if err != nil {
		return err
	}
	defer conn.Close()

	reverted, err := postgres.MigrateDown(conn.DB, downSteps)
	if err != nil {
		return err
	}

	log.L.WithField("reverted", reverted).Info("Migrations rolled back")
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	_, conn, err := setup(cmd)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := postgres.Migrate(conn.DB); err != nil {
		return err
	}

	startTime := time.Now()
	products := seed.Catalog()
	generator := seed.NewGenerator(randSeed, time.Now(), customers)

	err = conn.RunInTransaction(cmd.Context(), func(tx *sql.Tx) error {
		if err := seed.InsertProducts(cmd.Context(), tx, products); err != nil {
			return err
		}

		orders, err := generator.Orders(orderCount, days, products)
		if err != nil {
			return err
		}

		return seed.InsertOrders(cmd.Context(), tx, orders)
	})
	if err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"products": len(products),
		"orders":   orderCount,
		"seed":     randSeed,
		"elapsed":  time.Since(startTime).String(),
	}).Info("Seed finished")
	return nil
}

func issueToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	token, err := authenticating.NewService(cfg.Auth).IssueToken(subject, email, role, tokenTTL)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
