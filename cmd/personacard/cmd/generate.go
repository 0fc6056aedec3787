package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"personacard/src/config"
	perrors "personacard/src/errors"
	"personacard/src/gemini"
	"personacard/src/pipeline"
	"personacard/src/reddit"
	"personacard/src/status"
)

var (
	outputPath string
	themePath  string
	saveRaw    bool
	quiet      bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <username|profile-url>",
	Short: "Generate a persona card for one Reddit user",
	Long: `Generate fetches the user's newest public submissions and comments,
synthesizes a persona from them with Gemini, and writes one PNG card.

The argument is either a bare username or a full profile URL:

  personacard generate spez
  personacard generate https://www.reddit.com/user/spez -n 50 -o spez.png`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("limit", "n", config.DefaultLimit, "Maximum number of activity items to collect")
	generateCmd.Flags().String("model", config.DefaultModel, "Gemini model to use")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PNG path (default <username>_persona_card.png)")
	generateCmd.Flags().StringVar(&themePath, "theme", "", "TOML theme file overriding the card's default look")
	generateCmd.Flags().BoolVar(&saveRaw, "save-raw", false, "Also save the raw model output to <username>_persona_raw.txt")
	generateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	viper.BindPFlag("limit", generateCmd.Flags().Lookup("limit"))
	viper.BindPFlag("model", generateCmd.Flags().Lookup("model"))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	st := status.NewPrinter(cfg.Quiet)

	if err := cfg.Validate(); err != nil {
		st.Errorf("%v", err)
		return err
	}

	username := reddit.ExtractUsername(args[0])
	if username == "" {
		err := fmt.Errorf("%w: could not extract a username from %q", perrors.ErrInvalidUsername, args[0])
		st.Errorf("%v", err)
		return err
	}
	deps := pipeline.Deps{
		Source: reddit.NewClient(cfg.RedditClientID, cfg.RedditSecret, config.UserAgent),
		Model:  gemini.NewClient(cfg.GeminiAPIKey, cfg.Model),
		Status: st,
	}

	result, err := pipeline.Run(cmd.Context(), cfg, deps, username)
	if err != nil {
		st.Errorf("%v", err)
		return err
	}

	st.Done("Persona generation for %s complete (%d items used).", username, result.Items)
	return nil
}
