// Package parser provides the EQL expression parser using participle.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	regexp "github.com/wasilibs/go-re2"

	"github.com/oleksiybondar/eqlgo/ast"
)

var eqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Date", Pattern: `date\(\d{4}-\d{2}-\d{2}\)`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Regex", Pattern: `/(?:\\.|[^/\\])*/[a-zA-Z]*`},
	{Name: "Number", Pattern: `[+-]?\d+(?:\.\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "CmpOp", Pattern: `==|!=|<=|>=|~=|<|>`},
	{Name: "Punct", Pattern: `[.\[\]:]`},
})

// Parser parses EQL expressions. It is safe for concurrent use.
type Parser struct {
	parser *participle.Parser[exprGrammar]
}

// New creates a new EQL parser.
func New() *Parser {
	p := participle.MustBuild[exprGrammar](
		participle.Lexer(eqlLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(5),
	)
	return &Parser{parser: p}
}

var defaultParser = New()

// Parse parses an EQL expression using a shared parser instance.
func Parse(input string) (ast.Node, error) {
	return defaultParser.Parse(input)
}

// Parse parses an EQL expression into its AST. On malformed input it
// returns a *ParseError carrying the offending byte offset; no partial
// AST is ever returned.
func (p *Parser) Parse(input string) (ast.Node, error) {
	g, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, wrapError(err)
	}
	return convertExpr(g)
}

func wrapError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &ParseError{Offset: perr.Position().Offset, Message: perr.Message()}
	}
	return &ParseError{Message: err.Error()}
}

func convertExpr(g *exprGrammar) (ast.Node, error) {
	left, err := convertAnd(g.Left)
	if err != nil {
		return nil, err
	}
	for _, right := range g.Right {
		r, err := convertAnd(right)
		if err != nil {
			return nil, err
		}
		left = ast.Logical{Op: ast.OpOr, Left: left, Right: r}
	}
	return left, nil
}

func convertAnd(g *andGrammar) (ast.Node, error) {
	left, err := convertCmp(g.Left)
	if err != nil {
		return nil, err
	}
	for _, right := range g.Right {
		r, err := convertCmp(right)
		if err != nil {
			return nil, err
		}
		left = ast.Logical{Op: ast.OpAnd, Left: left, Right: r}
	}
	return left, nil
}

func convertCmp(g *cmpGrammar) (ast.Node, error) {
	left, err := convertOperand(g.Left)
	if err != nil {
		return nil, err
	}
	mid, err := convertOperand(g.Mid)
	if err != nil {
		return nil, err
	}
	op := ast.Op(g.Op)

	if g.Op2 == nil {
		return ast.Comparison{Left: left, Op: op, Right: mid}, nil
	}

	// Chained range form: desugar to (left op mid) and (mid op2 right),
	// sharing the middle operand on both sides.
	op2 := ast.Op(*g.Op2)
	if !op.Ordering() || !op2.Ordering() {
		return nil, &ParseError{
			Offset:  g.Pos.Offset,
			Message: "chained comparison requires ordering operators",
		}
	}
	right, err := convertOperand(g.Right)
	if err != nil {
		return nil, err
	}
	return ast.Logical{
		Op:    ast.OpAnd,
		Left:  ast.Comparison{Left: left, Op: op, Right: mid},
		Right: ast.Comparison{Left: mid, Op: op2, Right: right},
	}, nil
}

func convertOperand(g *operandGrammar) (ast.Operand, error) {
	switch {
	case g.Str != nil:
		s := *g.Str
		return ast.String{Value: s[1 : len(s)-1]}, nil

	case g.Number != nil:
		return convertNumber(*g.Number, g.Pos)

	case g.Bool != nil:
		return ast.Bool{Value: *g.Bool == "true"}, nil

	case g.Date != nil:
		d := *g.Date
		return ast.Date{Value: d[len("date(") : len(d)-1]}, nil

	case g.Regex != nil:
		return convertRegex(*g.Regex, g.Pos)

	case g.Chain != nil:
		return convertChain(g.Chain)
	}
	return nil, &ParseError{Offset: g.Pos.Offset, Message: "expected operand"}
}

func convertNumber(s string, pos lexer.Position) (ast.Operand, error) {
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ParseError{Offset: pos.Offset, Message: "invalid number " + strconv.Quote(s)}
		}
		return ast.Number{IsFloat: true, Float: f}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &ParseError{Offset: pos.Offset, Message: "invalid number " + strconv.Quote(s)}
	}
	return ast.Number{Int: n}, nil
}

func convertRegex(tok string, pos lexer.Position) (ast.Operand, error) {
	body := tok[1:]
	idx := strings.LastIndex(body, "/")
	source, flags := body[:idx], body[idx+1:]

	for _, f := range flags {
		switch f {
		case 'i', 's', 'm':
		default:
			return nil, &ParseError{Offset: pos.Offset, Message: "unknown regex flag " + strconv.QuoteRune(f)}
		}
	}

	pattern := source
	if flags != "" {
		pattern = "(?" + flags + ")" + source
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ParseError{Offset: pos.Offset, Message: "invalid regex: " + err.Error()}
	}
	return ast.Regex{Source: source, Flags: flags, Pattern: re}, nil
}

func convertChain(g *chainGrammar) (ast.Operand, error) {
	segments := make([]ast.Segment, 0, len(g.Segments))
	for i, sg := range g.Segments {
		seg, err := convertSegment(sg)
		if err != nil {
			return nil, err
		}
		if seg.Attr != ast.AttrNone && i != len(g.Segments)-1 {
			return nil, &ParseError{
				Offset:  sg.Pos.Offset,
				Message: "attribute/style lookup must be the terminal segment",
			}
		}
		segments = append(segments, seg)
	}
	return ast.ElementChain{Segments: segments}, nil
}

func convertSegment(g *segmentGrammar) (ast.Segment, error) {
	if g.AttrKind != nil {
		attr := ast.AttrAttribute
		if *g.AttrKind == "style" {
			attr = ast.AttrStyle
		}
		return ast.Segment{Name: *g.AttrName, Attr: attr}, nil
	}

	seg := ast.Segment{Name: *g.Name}
	if g.Index != nil {
		idx, err := strconv.Atoi(*g.Index)
		if err != nil {
			return ast.Segment{}, &ParseError{Offset: g.Pos.Offset, Message: "invalid collection index " + strconv.Quote(*g.Index)}
		}
		if idx < 0 {
			return ast.Segment{}, &ParseError{Offset: g.Pos.Offset, Message: "collection index must not be negative"}
		}
		seg.Index = idx
		seg.HasIndex = true
	}
	return seg, nil
}
