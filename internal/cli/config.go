package cli

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/matjam/dvdlogo/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dvdlogo")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/dvdlogo")
		viper.AddConfigPath("/etc/xdg/dvdlogo")
	}

	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("dvdlogo")
	viper.AutomaticEnv() // read environment variables that match

	// The defaults are a complete configuration, so a missing file is fine
	// unless one was asked for explicitly.
	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		log.Debug("No config file found, using defaults")
		err = nil
	}
	cobra.CheckErr(err)

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		log.Debugf("Using config file: %v", used)
	}
}
