// Package cli provides the cobra command-line interface for the
// document question-answering pipeline.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/config"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driving"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose    bool
	flagConfigPath string
)

// Services used by the commands. Nil until ensureServices runs, or
// until a test injects fakes.
var (
	ingestService driving.IngestService
	queryService  driving.QueryService
	closeServices func() error
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ragchat",
	Short: "Multilingual document question answering",
	Long: `Ingests PDF, image, and Word documents into per-document vector
indexes and answers questions about them in English, Japanese, or
Chinese.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// A missing .env file is fine; real deployments use the
		// environment directly.
		_ = godotenv.Load()

		logger.SetVerbose(flagVerbose)

		loaded, err := config.Load(flagConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", config.DefaultPath(), "path to the TOML config file")
}

// ensureServices builds the pipeline services from configuration.
// Commands that never touch a model or the index skip this.
func ensureServices() error {
	if ingestService != nil && queryService != nil {
		return nil
	}

	ingest, query, closer, err := buildServices(cfg)
	if err != nil {
		return err
	}

	ingestService = ingest
	queryService = query
	closeServices = closer
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if closeServices != nil {
			_ = closeServices()
		}
	}()
	return rootCmd.Execute()
}
