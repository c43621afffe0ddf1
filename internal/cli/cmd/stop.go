package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/dvdlogo/internal/ipc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running dvdlogo",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendStop(viper.GetString("socket")); err != nil {
				log.Fatalf("Failed to send 'stop' command: %v", err)
			}
			log.Info("Stop command sent")
		},
	}
}
