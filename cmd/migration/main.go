package main

import (
	"context"
	"database/sql"
	"fmt"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/drivers/database"
	"moodjournal-service/internal/app/drivers/logger"
	"moodjournal-service/internal/app/services/core/moods"
	"moodjournal-service/internal/app/services/shared/locker"
	"moodjournal-service/internal/app/services/shared/redis"
	"moodjournal-service/internal/migration"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
)

var (
	driverConfig   = config.NewDriverConfig()
	internalConfig = config.NewInternalConfig()
	log            = logger.NewLogrusLogger(driverConfig, internalConfig)
	downSteps      int
)

var rootCmd = &cobra.Command{
	Use:          "migration",
	Short:        "Manage the mood journal database schema",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB) error {
			n, err := migration.Up(db)
			if err != nil {
				return err
			}
			log.WithField("count", n).Info("Applied migrations")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back applied migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB) error {
			n, err := migration.Down(db, downSteps)
			if err != nil {
				return err
			}
			log.WithField("count", n).Info("Rolled back migrations")
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether they are applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB) error {
			statuses, err := migration.Statuses(db)
			if err != nil {
				return err
			}
			for _, s := range statuses {
				applied := "pending"
				if s.Applied {
					applied = "applied at " + s.AppliedAt
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-50s %s\n", s.ID, applied)
			}
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default mood catalog into an empty moods table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
		defer zapLogger.Sync()

		pool := database.NewPostgresPool(ctx, driverConfig)
		defer pool.Close()
		redisClient := database.NewRedisClient(ctx, driverConfig)
		defer redisClient.Close()

		moodUsecase := moods.NewMoodUsecase(
			moods.NewMoodPostgresRepository(pool, zapLogger),
			locker.NewLockService(redis.NewRedisRepository(redisClient), zapLogger),
			zapLogger,
		)
		n, err := moodUsecase.SeedMoodsIfEmpty(ctx)
		if err != nil {
			return err
		}
		log.WithField("count", n).Info("Seeded moods")
		return nil
	},
}

func withDB(fn func(db *sql.DB) error) error {
	db, err := sql.Open("pgx", database.PostgresDSN(driverConfig))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return err
	}
	return fn(db)
}

func main() {
	downCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back, 0 rolls back all")
	rootCmd.AddCommand(upCmd, downCmd, statusCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Migration command failed")
		os.Exit(1)
	}
}
