package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/config"
)

const versionTimeFormat = "20060102150405"

func main() {
	// optional .env, ignored when absent
	_ = godotenv.Load()

	var configPath string

	rootCmd := &cobra.Command{Use: "ai-query-interface"}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	rootCmd.AddCommand(
		serveCommand(&configPath),
		askCommand(&configPath),
		publishRefreshCommand(&configPath),
		createMigrationCommand(&configPath),
		migrateCommand(&configPath),
	)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig(configPath *string) config.Config {
	conf, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	return conf
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}

func createMigrationCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-create [name]",
		Short: "create sql migrations for the dataset schema",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			conf := loadConfig(configPath)
			now := time.Now()
			version := now.Format(versionTimeFormat)
			name := args[0]
			up := fmt.Sprintf("%s/%s_%s.up.sql", conf.MigrationDir, version, name)
			down := fmt.Sprintf("%s/%s_%s.down.sql", conf.MigrationDir, version, name)

			err := os.WriteFile(up, []byte{}, 0644)
			if err != nil {
				panic(err)
			}

			err = os.WriteFile(down, []byte{}, 0644)
			if err != nil {
				panic(err)
			}

			fmt.Println("Created SQL up script:", up)
			fmt.Println("Created SQL down script:", down)
		},
	}
}

func migrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up",
		Short: "migrate the dataset schema all the way up",
		Run: func(cmd *cobra.Command, args []string) {
			conf := loadConfig(configPath)
			m, err := migrate.New(
				fmt.Sprintf("file://%s", conf.MigrationDir),
				fmt.Sprintf("mysql://%s", conf.DatabaseDSN),
			)
			if err != nil {
				panic(err)
			}

			err = m.Up()
			if err == migrate.ErrNoChange {
				fmt.Println("No change in migration")
				return
			}
			if err != nil {
				panic(err)
			}
			fmt.Println("Migrated up")
		},
	}
}
