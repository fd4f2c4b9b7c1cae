package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ovalentin/tracker/internal/api"
	"github.com/ovalentin/tracker/internal/pkg/constants"
	"github.com/ovalentin/tracker/internal/pkg/logger"
	"github.com/ovalentin/tracker/internal/pkg/store"
	"github.com/ovalentin/tracker/internal/pkg/store/xpgx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger.Init(zl)
	defer logger.Sync()

	initConfig(ctx)

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperKeyDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	warehouse := store.NewStore(pool, viper.GetString(constants.ViperKeyWarehouseTable))

	svc, err := api.NewAPIService(warehouse, viper.GetInt(constants.ViperKeyRowLimit))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	addr := viper.GetString(constants.ViperKeyHTTPAddr)
	logger.Infof(ctx, "listening on %s, table %s", addr, viper.GetString(constants.ViperKeyWarehouseTable))
	go svc.Serve(addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

func initConfig(ctx context.Context) {
	viper.SetDefault(constants.ViperKeyHTTPAddr, ":5000")
	viper.SetDefault(constants.ViperKeyWarehouseTable, "public.action_items")
	viper.SetDefault(constants.ViperKeyRowLimit, constants.DefaultRowLimit)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("tracker")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "no config file, using env and defaults: %s", err.Error())
	}
}
