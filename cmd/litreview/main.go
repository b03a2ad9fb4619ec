// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litreview CLI, an assistant for
// producing structured literature reviews: research questions in, generated
// queries, retrieved articles, and an exported review document out.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litreview/internal/assistant"
	"github.com/pdiddy/litreview/internal/config"
	"github.com/pdiddy/litreview/internal/llm"
	"github.com/pdiddy/litreview/internal/project"
	"github.com/pdiddy/litreview/internal/retriever"
	"github.com/pdiddy/litreview/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appCfg and appLog are resolved once in the root PersistentPreRunE and
// passed explicitly into every component constructor.
var (
	appCfg types.Config
	appLog zerolog.Logger
)

// rootCmd is the base command for the litreview CLI.
var rootCmd = &cobra.Command{
	Use:   "litreview",
	Short: "Assistant for producing structured literature reviews",
	Long: `litreview walks a researcher through a literature review: it turns research
questions into search queries, suggests publication databases, retrieves and
deduplicates candidate articles, generates a review from the selected subset,
and exports the result as DOCX, plain text, or markdown.

Each workflow stage is a subcommand: project, questions, queries, databases,
search, articles, review, export, and library.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env first so AutomaticEnv sees its variables.
		_ = godotenv.Load()

		appLog = newLogger(cmd)

		cfg, err := config.FromViper(viper.GetViper())
		if err != nil {
			return err
		}

		secrets, err := config.LoadSecrets(".secrets/", appLog)
		if err != nil {
			return err
		}
		cfg.LLM.APIKey = config.ResolveAPIKey(cfg.LLM.APIKey, "OPENAI_API_KEY", secrets, "openai-api-key")

		appCfg = cfg
		return nil
	},
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litreview.yaml or ~/.config/litreview/litreview.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable informational logging")
	rootCmd.PersistentFlags().String("project", "", "path of the project file to operate on")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litreview")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litreview"))
		}
	}

	viper.SetEnvPrefix("LITREVIEW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// projectPath returns the --project flag or an error when it is unset.
func projectPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("project")
	if path == "" {
		return "", fmt.Errorf("--project is required")
	}
	return path, nil
}

// openProject loads the project named by --project.
func openProject(cmd *cobra.Command) (*project.Store, *types.Project, error) {
	path, err := projectPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	store := project.NewStore(appLog)
	p, err := store.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return store, p, nil
}

// newAssistant builds the LLM-backed assistant from the resolved config.
func newAssistant() *assistant.Assistant {
	backend := &llm.OpenAIBackend{Config: appCfg.LLM}
	return assistant.New(backend, appCfg, appLog)
}

// newRetriever builds the article retriever from the resolved config.
func newRetriever() *retriever.Retriever {
	return retriever.New(nil, appCfg.Search, appLog)
}

// rememberProject records path in the recent-projects list and persists the
// config. Persistence failures are logged, not fatal: the project itself was
// already saved.
func rememberProject(path string) {
	config.AddRecentProject(&appCfg, path)

	target := viper.ConfigFileUsed()
	if target == "" {
		target = config.UserConfigPath()
	}
	if err := config.Save(appCfg, target); err != nil {
		appLog.Warn().Err(err).Msg("could not persist recent projects")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
