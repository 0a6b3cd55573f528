package commands

import (
	"github.com/spf13/cobra"

	appservices "github.com/napalm-community/dlink/application/services"
	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/infrastructure/config"
)

func arpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arp",
		Short: "Show the device ARP table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(svc *appservices.DeviceApplicationService, dev entities.DeviceConfig, cfg *config.Config) error {
				entries, err := svc.GetARPTable()
				if err != nil {
					return err
				}
				return printJSON(entries)
			})
		},
	}
}
