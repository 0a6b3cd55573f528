package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	appservices "github.com/napalm-community/dlink/application/services"
	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/infrastructure/backup"
	"github.com/napalm-community/dlink/infrastructure/config"
)

func configCmd() *cobra.Command {
	var retrieve string
	var save bool
	var keep int
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Retrieve device configuration stores",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(svc *appservices.DeviceApplicationService, dev entities.DeviceConfig, cfg *config.Config) error {
				configSet, err := svc.GetConfig(retrieve)
				if err != nil {
					return err
				}
				if save {
					manager, err := backup.NewManager(cfg.BackupDir)
					if err != nil {
						return err
					}
					stores := map[string]string{
						"running":   configSet.Running,
						"candidate": configSet.Candidate,
					}
					for configType, content := range stores {
						if content == "" {
							continue
						}
						path, err := manager.Save(dev.Target, configType, content)
						if err != nil {
							return err
						}
						fmt.Printf("Saved %s config to %s\n", configType, path)
					}
					if keep > 0 {
						if err := manager.Prune(dev.Target, keep); err != nil {
							return err
						}
					}
					return nil
				}
				return printJSON(configSet)
			})
		},
	}
	cmd.Flags().StringVar(&retrieve, "retrieve", "all", "config store to retrieve: running, startup, candidate or all")
	cmd.Flags().BoolVar(&save, "save", false, "save retrieved stores under the backup directory")
	cmd.Flags().IntVar(&keep, "keep", 0, "with --save, prune to at most this many snapshots per store")
	return cmd
}
