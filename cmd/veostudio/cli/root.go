package cli

import (
	"fmt"
	"os"

	"github.com/deepnoodle-ai/veostudio/config"
	"github.com/deepnoodle-ai/veostudio/slogger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	successStyle = color.New(color.FgGreen)
	errorStyle   = color.New(color.FgRed)
	warnStyle    = color.New(color.FgYellow)
	boldStyle    = color.New(color.Bold)
	infoStyle    = color.New(color.FgCyan)
)

var (
	configPath string
	modelFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "veostudio",
	Short: "Structure video ideas into editable Veo prompts",
	Long: `veostudio expands a short video idea into a structured Veo prompt:
five video elements, three audio elements, and technical settings. The
result can be edited field by field and exported as a JSON file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use for structuring")
}

// loadSettings resolves deployment settings, applying flag overrides.
func loadSettings() (config.Settings, slogger.Logger, error) {
	config.LoadDotEnv()
	settings, err := config.Load(configPath)
	if err != nil {
		return settings, nil, err
	}
	if modelFlag != "" {
		settings.Model = modelFlag
	}
	logger := slogger.New(slogger.LevelFromString(settings.LogLevel))
	return settings, logger, nil
}

func fatal(err error) {
	fmt.Println(errorStyle.Sprint(err))
	os.Exit(1)
}
