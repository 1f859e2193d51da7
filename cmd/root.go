package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grubline/grubline/internal/api"
	"github.com/grubline/grubline/internal/cache"
	"github.com/grubline/grubline/internal/draft"
	"github.com/grubline/grubline/internal/models"
	"github.com/grubline/grubline/internal/resources"
	"github.com/grubline/grubline/internal/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "grubline",
	Short: "Storefront and vendor client for the grubline food-delivery platform",
	Long:  `grubline is a CLI client for the grubline food-delivery platform: browse and search the storefront, manage a vendor's food listings with locally persisted drafts, and keep cached views of remote data fresh.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./grubline.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "platform API base URL")
	rootCmd.PersistentFlags().String("state", "", "path to the local state database")

	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("state_path", rootCmd.PersistentFlags().Lookup("state"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles the wired client-side stack the subcommands share.
type app struct {
	cfg    *models.Config
	kv     *store.SQLiteStore
	client *api.Client
	res    *resources.Resources
	drafts *draft.Store
}

func newApp() (*app, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	kv, err := store.NewSQLiteStore(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("error opening local state: %w", err)
	}

	client := api.NewClient(cfg, kv)
	res := resources.New(cache.New(cfg.CacheTTL), client)
	drafts := draft.NewStore(kv, cfg.DraftDebounce)

	return &app{cfg: cfg, kv: kv, client: client, res: res, drafts: drafts}, nil
}

func (a *app) close() {
	if err := a.kv.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close state database: %v\n", err)
	}
}
