// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// namesd runs the name registry daemon.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/namesvm/registry"
	"github.com/ava-labs/namesvm/server"
	"github.com/ava-labs/namesvm/version"
)

var rootCmd = &cobra.Command{
	Use:        "namesd",
	Short:      "Name registry daemon",
	SuggestFor: []string{"namesd", "names-daemon"},
	RunE:       runFunc,
}

func init() {
	cobra.EnablePrefixMatching = true

	rootCmd.PersistentFlags().String("listen", ":9090", "HTTP listen address")
	rootCmd.PersistentFlags().String("db-dir", ".namesd-db", "database directory")
	rootCmd.PersistentFlags().Bool("in-memory", false, "use an in-memory database")
	rootCmd.PersistentFlags().String("genesis-file", "", "genesis JSON file path")
	rootCmd.PersistentFlags().String("config-file", "", "config file path")

	viper.SetEnvPrefix("namesd")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

func loadGenesis() (*registry.Genesis, error) {
	path := viper.GetString("genesis-file")
	if path == "" {
		return registry.DefaultGenesis(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g := new(registry.Genesis)
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	return g, nil
}

func openDatabase() (database.Database, error) {
	if viper.GetBool("in-memory") {
		return memdb.New(), nil
	}
	dir, err := filepath.Abs(viper.GetString("db-dir"))
	if err != nil {
		return nil, err
	}
	return leveldb.New(dir, nil, logging.NoLog{}, "namesd", prometheus.NewRegistry())
}

func runFunc(cmd *cobra.Command, args []string) error {
	if cfg := viper.GetString("config-file"); cfg != "" {
		viper.SetConfigFile(cfg)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}

	g, err := loadGenesis()
	if err != nil {
		return err
	}
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	var config server.Config
	config.SetDefaults()
	if n := viper.GetInt("activity-cache-size"); n > 0 {
		config.ActivityCacheSize = n
	}

	reg, err := registry.New(g, db, registry.WithActivityCap(config.ActivityCacheSize))
	if err != nil {
		return err
	}
	handler, err := server.New(reg, config).Handler()
	if err != nil {
		return err
	}

	listen := viper.GetString("listen")
	log.Info("starting namesd", "version", version.Version, "listen", listen, "root", g.RootSpace)
	return http.ListenAndServe(listen, handler)
}

func main() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlDebug, log.StreamHandler(os.Stderr, log.TerminalFormat())))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "namesd failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
