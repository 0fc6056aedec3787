package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show the configuration the next run would use, resolved from the
config file and the environment. Secrets are reduced to loaded/missing.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := buildConfig()
		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Printf("config file: %s\n", file)
		} else {
			fmt.Println("config file: none (environment only)")
		}
		for _, line := range cfg.Redacted() {
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
