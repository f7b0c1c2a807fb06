package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var queryLanguage string

var queryCmd = &cobra.Command{
	Use:   "query [doc-id] [question]",
	Short: "Ask a question about an ingested document",
	Long: `Retrieves the most relevant chunks from the document's vector index
and generates an answer in the requested language.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryLanguage, "language", "l", "English", "answer language (English, Japanese, Chinese)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	docID, question := args[0], args[1]

	answer, err := queryService.Query(context.Background(), docID, question, queryLanguage)
	if err != nil {
		return fmt.Errorf("query %s: %w", docID, err)
	}

	cmd.Println(answer)
	return nil
}
