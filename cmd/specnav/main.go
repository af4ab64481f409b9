// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the specnav CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/specnav/internal/logger"
	"github.com/pdiddy/specnav/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the resolved configuration after PersistentPreRunE.
var cfg types.Config

// rootCmd is the base command for the specnav CLI.
var rootCmd = &cobra.Command{
	Use:   "specnav",
	Short: "Search and navigate generated specification documents",
	Long: `specnav searches the bibliography a specification generator emits
alongside a rendered document: clauses, grammar productions, abstract
operations, terms and tables.

It ranks fuzzy matches the way the document's search box does, resolves
cross-references to their clauses, tracks the active section of a recorded
layout, and keeps pins and session snapshots in a local SQLite store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c

		log, err := logger.New(cfg.Logging)
		if err != nil {
			return err
		}
		cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.FromContext(cmd.Context()).Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./specnav.yaml or ~/.config/specnav/config.yaml)")
	pf.String("biblio", "", "bibliography payload (.json, .yaml, or generator .js)")
	pf.String("sdo-map", "", "syntax-directed operation map (defaults to --biblio when it is a .js script)")
	pf.String("sections", "", "multipage id-to-section map")
	pf.String("state-dir", types.DefaultStateDir, "directory holding state.db")
	pf.String("session", types.DefaultSession, "snapshot session name")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-env", types.DefaultLogEnv, "log encoder: local, dev or prod")

	bind := map[string]string{
		"bibliography.path":          "biblio",
		"bibliography.sdo_path":      "sdo-map",
		"bibliography.sections_path": "sections",
		"state.dir":                  "state-dir",
		"state.session":              "session",
		"logging.level":              "log-level",
		"logging.env":                "log-env",
	}
	for key, flag := range bind {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("specnav")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "specnav"))
		}
	}

	viper.SetEnvPrefix("SPECNAV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := types.DefaultConfig()
	viper.SetDefault("search.max_results", defaults.Search.MaxResults)
	viper.SetDefault("search.min_query_length", defaults.Search.MinQueryLength)
	viper.SetDefault("tracker.viewport_height", defaults.Tracker.ViewportHeight)
	viper.SetDefault("tracker.debounce", defaults.Tracker.Debounce)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged viper settings and fills defaults.
func loadConfig() (types.Config, error) {
	var c types.Config
	if err := viper.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	c.ApplyDefaults()
	if c.Bibliography.SDOPath == "" && strings.EqualFold(filepath.Ext(c.Bibliography.Path), ".js") {
		c.Bibliography.SDOPath = c.Bibliography.Path
	}
	return c, nil
}

// logFor returns the command's logger.
func logFor(cmd *cobra.Command) *zap.Logger {
	return logger.FromContext(cmd.Context())
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
