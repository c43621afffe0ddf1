package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dvdlogo/dvdlogo.toml)")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().BoolP("installconfig", "i", false, "Install a default config file")
	rootCmd.PersistentFlags().Bool("show-config", false, "Dump resolved config")
	rootCmd.PersistentFlags().BoolP("background", "b", false, "Run as a daemon")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "Print version")
	rootCmd.PersistentFlags().BoolP("help", "h", false, "Print usage")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.Flags().String("backend", "glfw", "Rendering backend: glfw or sdl")
	rootCmd.Flags().Bool("control", false, "Serve status/stop/recolor on the control socket")
	rootCmd.Flags().Uint64("ticks", 0, "Stop after this many ticks (0 runs until quit)")
	viper.BindPFlag("backend", rootCmd.Flags().Lookup("backend"))
	viper.BindPFlag("control_socket", rootCmd.Flags().Lookup("control"))
	viper.BindPFlag("ticks", rootCmd.Flags().Lookup("ticks"))
}
