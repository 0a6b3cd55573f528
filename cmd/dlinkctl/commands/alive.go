package commands

import (
	"github.com/spf13/cobra"

	appservices "github.com/napalm-community/dlink/application/services"
	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/infrastructure/config"
)

func aliveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alive",
		Short: "Check whether the device session is usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(svc *appservices.DeviceApplicationService, dev entities.DeviceConfig, cfg *config.Config) error {
				return printJSON(svc.IsAlive())
			})
		},
	}
}
