/*
Copyright © 2025 Nathan Ollerenshaw <chrome@stupendous.net>
*/
package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/matjam/dvdlogo"
	"github.com/matjam/dvdlogo/internal/cli/cmd"
	"github.com/matjam/dvdlogo/internal/cli/cmd/utils"
	"github.com/matjam/dvdlogo/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvdlogo",
	Short: "A bouncing logo screensaver",
	Long: `dvdlogo opens a window and bounces a logo around it, changing the
logo's colour when it hits a wall. Press escape or close the window to quit.`,
	Run: func(c *cobra.Command, args []string) {
		if v, err := c.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Infof("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
		yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
		if v, err := c.Flags().GetBool("version"); err == nil && v {
			log.Infof("%v version %v © 2025 %v",
				babyBlue.Render("dvdlogo "),
				green.Render(strings.Trim(dvdlogo.Version, "\n\r ")),
				yellow.Render("Nathan Ollerenshaw"))
			return
		}

		if v, err := c.Flags().GetBool("installconfig"); err == nil && v {
			utils.InstallDefaultConfig()
			return
		}

		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		release := func() {}
		if v, err := c.Flags().GetBool("background"); err == nil && v {
			var parent bool
			release, parent = utils.Daemonize()
			if parent {
				return
			}
		}

		res := cmd.StartScreensaver(cfg)
		release()
		if code := res.Status.ExitCode(); code != 0 {
			log.Errorf("dvdlogo exited: %v", res.Status)
			os.Exit(code)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		cmd.NewStatusCmd(),
		cmd.NewStopCmd(),
		cmd.NewRecolorCmd(),
		cmd.NewGenManCmd(rootCmd),
	)
}
