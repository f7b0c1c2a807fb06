package cli

import (
	"github.com/spf13/cobra"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, language := range domain.Languages() {
			cmd.Println(language)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
