package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/dvdlogo/internal/ipc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRecolorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recolor",
		Short: "Give the logo a new random tint",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendRecolor(viper.GetString("socket")); err != nil {
				log.Fatalf("Failed to send 'recolor' command: %v", err)
			}
			log.Info("Recolor command sent")
		},
	}
}
