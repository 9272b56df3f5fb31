package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/deepnoodle-ai/veostudio"
	"github.com/deepnoodle-ai/veostudio/config"
	"github.com/deepnoodle-ai/veostudio/llm/providers/google"
	"github.com/spf13/cobra"
)

// structureTimeout bounds the single outbound model call.
const structureTimeout = 2 * time.Minute

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Expand an idea into a structured Veo prompt and export it",
	Long: `Expand a free-text video idea into the full prompt structure with one
model call and write the result as a JSON file.

Examples:
  veostudio structure --title "cyberpunk robot" --idea "a robot walking through a rainy cyberpunk city"
  veostudio structure -t "beach dawn" -i "waves at sunrise, drone shot" -o prompt.json`,
	Run: func(cmd *cobra.Command, args []string) {
		title, _ := cmd.Flags().GetString("title")
		idea, _ := cmd.Flags().GetString("idea")
		output, _ := cmd.Flags().GetString("output")

		// Missing input is a user warning, not a request.
		if title == "" || idea == "" {
			fmt.Println(warnStyle.Sprint("Both --title and --idea are required. No request was made."))
			os.Exit(1)
		}

		session := veostudio.NewSession()
		if err := runStructure(session, title, idea); err != nil {
			fatal(err)
		}

		data, name, err := session.Export()
		if err != nil {
			fatal(err)
		}
		if output != "" {
			name = output
		}
		if err := os.WriteFile(name, data, 0644); err != nil {
			fatal(err)
		}
		abs, _ := filepath.Abs(name)
		fmt.Printf("%s %s\n", successStyle.Sprint("Exported"), boldStyle.Sprint(abs))
	},
}

// runStructure resolves the credential, issues the one structuring call, and
// replaces the session spec on success. On failure the session is untouched.
func runStructure(session *veostudio.Session, title, idea string) error {
	settings, logger, err := loadSettings()
	if err != nil {
		return err
	}
	apiKey, err := config.ResolveAPIKey()
	if err != nil {
		return err
	}

	provider := google.New(
		google.WithAPIKey(apiKey),
		google.WithModel(settings.Model),
		google.WithLogger(logger),
	)
	structurer, err := veostudio.NewStructurer(veostudio.StructurerOptions{
		Model:       provider,
		ModelID:     settings.Model,
		Temperature: &settings.Temperature,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), structureTimeout)
	defer cancel()

	spec, err := structurer.Structure(ctx, title, idea)
	if err != nil {
		return err
	}
	session.Replace(*spec)
	return nil
}

func init() {
	rootCmd.AddCommand(structureCmd)

	structureCmd.Flags().StringP("title", "t", "", "Project name, used for the export file name (required)")
	structureCmd.Flags().StringP("idea", "i", "", "Free-text video idea to expand (required)")
	structureCmd.Flags().StringP("output", "o", "", "Output path (defaults to the derived file name)")
}
