package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	appservices "github.com/napalm-community/dlink/application/services"
	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/infrastructure/config"
)

func runCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "run <command> [command ...]",
		Short: "Run raw CLI commands on the device",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(svc *appservices.DeviceApplicationService, dev entities.DeviceConfig, cfg *config.Config) error {
				results, err := svc.CLI(args)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(results)
				}
				for _, command := range args {
					fmt.Printf("--- %s ---\n%s\n", command, results[command])
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print command outputs as JSON")
	return cmd
}
