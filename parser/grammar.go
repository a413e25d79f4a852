package parser

// Grammar structs for the participle parser.
// These define the EQL surface grammar using struct tags. Precedence,
// high to low: comparison, 'and', 'or'.

import "github.com/alecthomas/participle/v2/lexer"

type exprGrammar struct {
	Left  *andGrammar   `parser:"@@"`
	Right []*andGrammar `parser:"('or' @@)*"`
}

type andGrammar struct {
	Left  *cmpGrammar   `parser:"@@"`
	Right []*cmpGrammar `parser:"('and' @@)*"`
}

// cmpGrammar covers both the plain comparison and the chained range form
// "A < name < B"; the optional trailing operator/operand pair is only
// legal with ordering operators and desugars to an 'and' of two
// comparisons sharing the middle operand.
type cmpGrammar struct {
	Pos   lexer.Position
	Left  *operandGrammar `parser:"@@"`
	Op    string          `parser:"@CmpOp"`
	Mid   *operandGrammar `parser:"@@"`
	Op2   *string         `parser:"( @CmpOp"`
	Right *operandGrammar `parser:"  @@ )?"`
}

type operandGrammar struct {
	Pos    lexer.Position
	Str    *string       `parser:"@String"`
	Number *string       `parser:"| @Number"`
	Bool   *string       `parser:"| @('true' | 'false')"`
	Date   *string       `parser:"| @Date"`
	Regex  *string       `parser:"| @Regex"`
	Chain  *chainGrammar `parser:"| @@"`
}

type chainGrammar struct {
	Segments []*segmentGrammar `parser:"@@ ('.' @@)*"`
}

type segmentGrammar struct {
	Pos      lexer.Position
	AttrKind *string `parser:"( @('attribute' | 'style') ':'"`
	AttrName *string `parser:"  @Ident )"`
	Name     *string `parser:"| @Ident"`
	Index    *string `parser:"  ('[' @Number ']')?"`
}
