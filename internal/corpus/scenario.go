// Package corpus loads fixture data for the regex engine: scenario
// files that drive conformance tests, and named pattern presets for
// cmd/regexviz.
package corpus

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Scenario is one line of a scenario file:
//
//	match "abc" against "abc" => true
//
// PatternLit and InputLit hold the raw quoted literal exactly as the
// lexer captured it; use Pattern/Input to get the unquoted text.
type Scenario struct {
	PatternLit string `parser:"'match' @String"`
	InputLit   string `parser:"'against' @String"`
	Want       string `parser:"'=>' @Ident"`
}

// Pattern is the scenario's regex source, unquoted.
func (s *Scenario) Pattern() string { return mustUnquote(s.PatternLit) }

// Input is the text the pattern is matched against, unquoted.
func (s *Scenario) Input() string { return mustUnquote(s.InputLit) }

// WantBool interprets Want as the boolean outcome it spells out.
func (s *Scenario) WantBool() bool { return s.Want == "true" }

func mustUnquote(lit string) string {
	s, err := strconv.Unquote(lit)
	if err != nil {
		// The grammar only ever captures a well-formed @String token.
		panic(err)
	}
	return s
}

// Document is a whole scenario file: zero or more Scenario lines.
type Document struct {
	Scenarios []*Scenario `parser:"@@*"`
}

var scenarioLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Arrow", Pattern: `=>`},
	{Name: "String", Pattern: `"(\\.|[^"])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "whitespace", Pattern: `\s+`},
})

var scenarioParser = participle.MustBuild[Document](participle.Lexer(scenarioLexer))

// ParseScenarios parses the contents of a scenario file.
func ParseScenarios(data string) (*Document, error) {
	return scenarioParser.ParseString("scenarios", data)
}
