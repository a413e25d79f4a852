package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksiybondar/eqlgo/jsonnode"
	"github.com/oleksiybondar/eqlgo/parser"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression> <document.json>",
	Short: "Evaluate an EQL expression against a JSON node document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := parser.Parse(args[0])
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}
		root, err := jsonnode.Parse(data)
		if err != nil {
			return err
		}

		result, err := evaluator().Evaluate(expr, root)
		if err != nil {
			return err
		}
		log.Debug().Bool("result", result).Msg("evaluated expression")
		fmt.Println(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
