package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/dvdlogo/internal/cli/cmd/utils"
	"github.com/matjam/dvdlogo/internal/ipc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get dvdlogo status",
		Long:  `Returns the current status of a dvdlogo process started with --control.`,
		Run: func(cmd *cobra.Command, args []string) {
			response, err := ipc.SendStatus(viper.GetString("socket"))
			if err != nil {
				log.Errorf("Error sending command: %v", err)
				return
			}

			utils.PrintJSONColored(response)
		},
	}
}
