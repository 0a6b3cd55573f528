package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	appservices "github.com/napalm-community/dlink/application/services"
	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/infrastructure/config"
	"github.com/napalm-community/dlink/infrastructure/transport"
	"github.com/napalm-community/dlink/platform"
)

var (
	version   = "dev"
	buildTime = "unknown"

	configFile string
	target     string
	verbosity  int
)

// SetBuildInfo stores the version stamp injected by the build
func SetBuildInfo(v, bt string) {
	version = v
	buildTime = bt
}

// Execute builds the command tree and runs it
func Execute() error {
	root := &cobra.Command{
		Use:           "dlinkctl",
		Short:         "D-Link switch management over Telnet/SSH",
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbosity < 0 || verbosity > 3 {
				return fmt.Errorf("--verbose must be 0, 1, 2, or 3")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "YAML configuration file")
	root.PersistentFlags().StringVar(&target, "target", "", "device target (must match a target in YAML, required)")
	root.PersistentFlags().IntVar(&verbosity, "verbose", 0, "verbosity level: 0=none, 1=debug logs, 2=raw switch output, 3=debug+raw output")

	root.AddCommand(factsCmd(), arpCmd(), macCmd(), configCmd(), runCmd(), aliveCmd())
	return root.Execute()
}

// resolveConfigPath searches the usual locations when the default path is kept
func resolveConfigPath() (string, error) {
	if configFile != "config.yaml" {
		return configFile, nil
	}
	possiblePaths := []string{
		filepath.Join(".", "config.yaml"),
	}
	if runtime.GOOS == "windows" {
		if appDataDir := os.Getenv("APPDATA"); appDataDir != "" {
			possiblePaths = append(possiblePaths, filepath.Join(appDataDir, "dlinkctl", "config.yaml"))
		}
		if programDataDir := os.Getenv("ProgramData"); programDataDir != "" {
			possiblePaths = append(possiblePaths, filepath.Join(programDataDir, "dlinkctl", "config.yaml"))
		}
	} else {
		if userConfigDir, err := os.UserConfigDir(); err == nil {
			possiblePaths = append(possiblePaths, filepath.Join(userConfigDir, "dlinkctl", "config.yaml"))
		}
		possiblePaths = append(possiblePaths, "/etc/dlinkctl/config.yaml")
	}
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if verbosity >= 1 {
				fmt.Printf("DEBUG: Configuration file found at %s\n", path)
			}
			return path, nil
		}
	}
	return "", fmt.Errorf("no config.yaml found in ./, the user config dir, or /etc/dlinkctl/")
}

// withDevice loads the inventory, opens a session to the requested target and
// runs fn against it. The session is always closed afterwards.
func withDevice(fn func(svc *appservices.DeviceApplicationService, dev entities.DeviceConfig, cfg *config.Config) error) error {
	if target == "" {
		return fmt.Errorf("the --target parameter is required")
	}
	configPath, err := resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath, target, verbosity)
	if err != nil {
		return err
	}
	defer transport.CloseAll()

	dev, found := cfg.Find(target)
	if !found {
		return fmt.Errorf("target %s not registered in the YAML configuration", target)
	}

	client := transport.Get(dev)

	var driver platform.NetworkDriver
	if dev.PlatformID() == "auto" {
		detected, err := platform.Detect(transport.NewDeviceAdapter(client))
		if err != nil {
			return fmt.Errorf("failed to auto-detect device platform: %w", err)
		}
		driver = detected
		if dev.IsDebugEnabled() {
			fmt.Printf("DEBUG: Platform auto-detected as %s\n", detected.Name())
		}
	} else {
		resolved, err := platform.Get(dev.PlatformID())
		if err != nil {
			return err
		}
		driver = resolved
	}

	svc := appservices.NewDeviceApplicationService(dev, client, driver)
	if err := svc.Open(); err != nil {
		return err
	}
	defer svc.Close()

	return fn(svc, dev, cfg)
}

// printJSON renders a result the way automation tooling expects it
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
