package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oleksiybondar/eqlgo/ast"
	"github.com/oleksiybondar/eqlgo/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse an EQL expression and dump its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		log.Debug().Str("canonical", expr.String()).Msg("parsed expression")
		dumpNode(expr, 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func dumpNode(n ast.Node, depth int) {
	pad := strings.Repeat("  ", depth)
	switch e := n.(type) {
	case ast.Comparison:
		fmt.Printf("%scomparison %s\n", pad, e.Op)
		dumpOperand(e.Left, depth+1)
		dumpOperand(e.Right, depth+1)
	case ast.Logical:
		fmt.Printf("%slogical %s\n", pad, e.Op)
		dumpNode(e.Left, depth+1)
		dumpNode(e.Right, depth+1)
	}
}

func dumpOperand(o ast.Operand, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := o.(type) {
	case ast.String:
		fmt.Printf("%sstring %q\n", pad, v.Value)
	case ast.Number:
		fmt.Printf("%snumber %s\n", pad, v)
	case ast.Bool:
		fmt.Printf("%sbool %s\n", pad, v)
	case ast.Date:
		fmt.Printf("%sdate %s\n", pad, v.Value)
	case ast.Regex:
		fmt.Printf("%sregex %s\n", pad, v)
	case ast.ElementChain:
		fmt.Printf("%schain %s\n", pad, v)
	}
}
