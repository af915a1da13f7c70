// internal/cli/show_config.go
package compbench

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/compbench/internal/appconfig"
)

// showConfigCmd represents the show config command.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), cfg, appconfig.Config{})
		if DebugEnabled() && cfg != nil {
			pp.Println(cfg)
		}
		return nil
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
