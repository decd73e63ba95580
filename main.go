package main

import (
	"fmt"
	"os"

	"github.com/Xunop/bookserver/internal/config"
	"github.com/Xunop/bookserver/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	greetingBanner = `
 _                 _
| |__   ___   ___ | | _____  ___ _ ____   _____ _ __
| '_ \ / _ \ / _ \| |/ / __|/ _ \ '__\ \ / / _ \ '__|
| |_) | (_) | (_) |   <\__ \  __/ |   \ V /  __/ |
|_.__/ \___/ \___/|_|\_\___/\___|_|    \_/ \___|_|
`
)

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:   "bookserver",
		Short: "bookserver renders book catalogs as OPDS feeds, HTML pages and Solr batches",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (toml, yaml or json)")
	rootCmd.AddCommand(renderCmd, serveCmd)
}

func loadConfig() error {
	if configFile == "" {
		if _, err := config.GetConfig(); err != nil {
			return err
		}
	} else if _, err := config.ParseFile(configFile); err != nil {
		return err
	}

	log.Init(config.Opts)
	log.Debug("Configuration loaded", zap.String("file", configFile), zap.Any("options", config.Opts))
	return nil
}

func main() {
	err := rootCmd.Execute()
	log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
