package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"personacard/src/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "personacard",
	Short: "Generate a persona card from a Reddit user's public activity",
	Long: `personacard fetches a Reddit user's public submissions and comments,
asks Gemini to infer persona attributes from them, and renders the result
as a PNG persona card.

Requires REDDIT_CLIENT_ID, REDDIT_SECRET and GEMINI_API_KEY in the
environment (or in the config file).`,
	SilenceUsage: true,
	// Fatal errors are reported through the status printer; cobra must
	// not print them a second time.
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.Dir()+"/config.toml)")
}

// initConfig reads in the config file and the credential environment
// variables. The exact variable names are the external contract.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.Dir())
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.BindEnv("reddit.client_id", "REDDIT_CLIENT_ID")
	viper.BindEnv("reddit.secret", "REDDIT_SECRET")
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")

	viper.SetDefault("model", config.DefaultModel)
	viper.SetDefault("limit", config.DefaultLimit)

	// Missing config file is fine; the environment alone is enough.
	_ = viper.ReadInConfig()
}

// buildConfig resolves flags, config file and environment into the single
// Config value handed to the pipeline.
func buildConfig() *config.Config {
	return &config.Config{
		RedditClientID: viper.GetString("reddit.client_id"),
		RedditSecret:   viper.GetString("reddit.secret"),
		GeminiAPIKey:   viper.GetString("gemini.api_key"),
		Model:          viper.GetString("model"),
		Limit:          viper.GetInt("limit"),
		OutputPath:     outputPath,
		ThemePath:      themePath,
		SaveRaw:        saveRaw,
		Quiet:          quiet,
	}
}
