package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	appservices "github.com/napalm-community/dlink/application/services"
	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/infrastructure/config"
	"github.com/napalm-community/dlink/infrastructure/snmp"
)

func factsCmd() *cobra.Command {
	var noSnmp bool
	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Show device identity and inventory facts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(svc *appservices.DeviceApplicationService, dev entities.DeviceConfig, cfg *config.Config) error {
				facts, err := svc.GetFacts()
				if err != nil {
					return err
				}
				if !noSnmp {
					poller := snmp.NewPoller(dev)
					if poller.Enabled() {
						if err := poller.Supplement(&facts); err != nil {
							// SNMP is best effort, the CLI facts still stand
							fmt.Printf("Warning: SNMP supplement failed: %v\n", err)
						}
					}
				}
				return printJSON(facts)
			})
		},
	}
	cmd.Flags().BoolVar(&noSnmp, "no-snmp", false, "skip the SNMP facts supplement")
	return cmd
}
