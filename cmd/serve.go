package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/config"
	"github.com/erin-james/ai-query-interface/dataset"
	"github.com/erin-james/ai-query-interface/event"
	"github.com/erin-james/ai-query-interface/kafka"
	"github.com/erin-james/ai-query-interface/server"
	"github.com/erin-james/ai-query-interface/service/query"
)

func serveCommand(configPath *string) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "load the datasets and serve the query API",
		Run: func(cmd *cobra.Command, args []string) {
			conf := loadConfig(configPath)
			logger := newLogger()
			defer logger.Sync()

			ctx := cmd.Context()
			provider := newProvider(source, conf, logger)

			snap, err := provider.Load(ctx)
			if err != nil {
				logger.Fatal("initial dataset load failed", zap.Error(err))
			}
			store := dataset.NewStore(snap)

			consumer, err := kafka.NewConsumer(conf.KafkaHost, conf.DatasetUpdatedTopic)
			if err != nil {
				logger.Warn("refresh consumer unavailable, serving the boot-time snapshot only",
					zap.Error(err))
			} else {
				refresher := dataset.NewRefresher(store, provider, consumer, logger)
				go refresher.Consume(ctx, 0)
			}

			svc := query.NewService(store, logger)
			srv := server.New(conf.HTTPAddr, svc, logger)

			logger.Info("serving query API", zap.String("addr", conf.HTTPAddr))
			if err := srv.ListenAndServe(); err != nil {
				logger.Fatal("http server stopped", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringVar(&source, "source", "csv", "dataset source: csv or mysql")
	return cmd
}

func askCommand(configPath *string) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "answer a single question from the datasets",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			conf := loadConfig(configPath)
			logger := newLogger()
			defer logger.Sync()

			provider := newProvider(source, conf, logger)
			snap, err := provider.Load(cmd.Context())
			if err != nil {
				logger.Fatal("dataset load failed", zap.Error(err))
			}

			fmt.Println(query.Resolve(args[0], snap, logger))
		},
	}

	cmd.Flags().StringVar(&source, "source", "csv", "dataset source: csv or mysql")
	return cmd
}

func publishRefreshCommand(configPath *string) *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "publish-refresh",
		Short: "signal running servers to reload the datasets",
		Run: func(cmd *cobra.Command, args []string) {
			conf := loadConfig(configPath)

			producer, err := kafka.NewProducer(conf.KafkaHost, conf.DatasetUpdatedTopic)
			if err != nil {
				panic(err)
			}

			content, err := json.Marshal(event.DatasetUpdatedEvent{
				Source:     "publish-refresh",
				Table:      table,
				OccurredAt: time.Now().UTC(),
			})
			if err != nil {
				panic(err)
			}

			if err := producer.Push([][]byte{content}); err != nil {
				panic(err)
			}
			fmt.Println("Published dataset refresh event")
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "table that changed (optional)")
	return cmd
}

func newProvider(source string, conf config.Config, logger *zap.Logger) dataset.Provider {
	switch source {
	case "mysql":
		db, err := sqlx.Connect("mysql", conf.DatabaseDSN)
		if err != nil {
			logger.Fatal("mysql connect failed", zap.Error(err))
		}
		return dataset.NewMySQLProvider(db)
	default:
		return dataset.NewCSVProvider(conf.DataDir, logger)
	}
}
