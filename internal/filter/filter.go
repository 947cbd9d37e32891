// Package filter compiles CEL expressions evaluated against registry records.
//
// Expressions see these variables:
//
//	kind     string  "Coin" or "Token"
//	name     string  the identifier payload
//	display  string  the text form, e.g. "Coin(uluna)"
//	json     dyn     the stored record decoded as generic JSON
//
// Pair listings describe the base with the variables above and the quote with
// quote_kind, quote_name and quote_display. Those are empty for assets.
//
// JSON numbers decode as doubles, so compare them with double literals:
// json.decimals >= 6.0. An empty expression matches everything.
package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/voydwalkr/fungible/pkg/fungible"
)

// ErrInvalid wraps every Compile failure caused by the expression itself.
var ErrInvalid = errors.New("filter: invalid expression")

// Filter is a compiled expression. The zero value matches everything.
type Filter struct {
	expr    string
	prog    cel.Program
	enabled bool
}

// Compile parses and type-checks expr.
func Compile(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Filter{}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("kind", cel.StringType),
		cel.Variable("name", cel.StringType),
		cel.Variable("display", cel.StringType),
		cel.Variable("json", cel.DynType),
		cel.Variable("quote_kind", cel.StringType),
		cel.Variable("quote_name", cel.StringType),
		cel.Variable("quote_display", cel.StringType),
	)
	if err != nil {
		return Filter{}, err
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return Filter{}, fmt.Errorf("%w: %v", ErrInvalid, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) && !ast.OutputType().IsExactType(cel.DynType) {
		return Filter{}, fmt.Errorf("%w: expression must be boolean, got %s", ErrInvalid, ast.OutputType())
	}
	prog, err := env.Program(ast)
	if err != nil {
		return Filter{}, err
	}
	return Filter{expr: expr, prog: prog, enabled: true}, nil
}

// Enabled reports whether the filter has an expression.
func (f Filter) Enabled() bool { return f.enabled }

// String returns the source expression.
func (f Filter) String() string { return f.expr }

// Match evaluates the filter for id and its stored record. Evaluation errors
// and non-boolean results count as no match.
func (f Filter) Match(id fungible.Fungible, record any) bool {
	if !f.enabled {
		return true
	}
	return f.eval(vars(id, record, "", "", ""))
}

// MatchPair evaluates the filter for a pair and its stored record.
func (f Filter) MatchPair(p fungible.Pair, record any) bool {
	if !f.enabled {
		return true
	}
	return f.eval(vars(p.Base, record, p.Quote.Kind().String(), p.Quote.Payload(), p.Quote.String()))
}

func vars(id fungible.Fungible, record any, qkind, qname, qdisplay string) map[string]any {
	var obj any
	if record != nil {
		if b, err := json.Marshal(record); err == nil {
			_ = json.Unmarshal(b, &obj)
		}
	}
	return map[string]any{
		"kind":          id.Kind().String(),
		"name":          id.Payload(),
		"display":       id.String(),
		"json":          obj,
		"quote_kind":    qkind,
		"quote_name":    qname,
		"quote_display": qdisplay,
	}
}

func (f Filter) eval(in map[string]any) bool {
	out, _, err := f.prog.Eval(in)
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
