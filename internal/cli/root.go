// internal/cli/root.go
package compbench

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mwiater/compbench/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "compbench",
	Short: "Wall-clock benchmark harness for an external compiler executable",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If the user did NOT set the flag, copy the config value into the
		//    flag so both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}

		// 3) Materialize the fully merged configuration (flags > config >
		//    defaults) into currentConfig so other packages see one snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		if err := appconfig.Validate(&cfg); err != nil {
			return err
		}
		currentConfig = &cfg

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// --config (defaults to the conventional path)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().String("compiler", "", "path to the compiler executable under test")
	rootCmd.PersistentFlags().IntP("iterations", "n", 50, "timed invocations per test case")
	rootCmd.PersistentFlags().Int("timeout", 30, "per-invocation timeout in seconds")
	rootCmd.PersistentFlags().Int("warmup", 0, "untimed invocations before measurement starts")
	rootCmd.PersistentFlags().String("export", "", "directory to write JSON results into")
	rootCmd.PersistentFlags().String("logFile", "", "append log output to this file")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("compilerPath", rootCmd.PersistentFlags().Lookup("compiler"))
	_ = viper.BindPFlag("iterations", rootCmd.PersistentFlags().Lookup("iterations"))
	_ = viper.BindPFlag("timeoutSeconds", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("warmupRuns", rootCmd.PersistentFlags().Lookup("warmup"))
	_ = viper.BindPFlag("exportPath", rootCmd.PersistentFlags().Lookup("export"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults. A missing file
// at the default path is fine; an explicitly requested file must exist.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("iterations", 50)
	viper.SetDefault("timeoutSeconds", 30)
	viper.SetDefault("warmupRuns", 0)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if errors.Is(err, os.ErrNotExist) {
			if cfgFile == appconfig.DefaultConfigPath {
				return nil
			}
			return fmt.Errorf("no configuration file found at %q", cfgFile)
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled reflects the merged Viper state.
func DebugEnabled() bool { return viper.GetBool("debug") }
