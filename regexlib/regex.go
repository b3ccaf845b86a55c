package regexlib

import (
	"github.com/google/uuid"
)

// Regexp is a compiled pattern: the parsed AST plus its Thompson NFA.
// It is immutable after Compile returns, so a single Regexp may be
// matched concurrently from multiple goroutines.
type Regexp struct {
	pattern string
	ast     []Token
	prog    *Program
	id      uuid.UUID
}

// Compile parses pattern and builds its NFA. Compilation itself never
// fails per spec §4.2 — only Parse can return an error.
func Compile(pattern string) (*Regexp, error) {
	ast, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Regexp{
		pattern: pattern,
		ast:     ast,
		prog:    buildProgram(ast),
		id:      uuid.New(),
	}, nil
}

// MustCompile is like Compile but panics on a parse error, for patterns
// known at build time — the same convenience the teacher's MustCompile
// wrapper and idiomatic Go's regexp.MustCompile both provide.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether input conforms to re's pattern in full.
func (re *Regexp) MatchString(input string) bool {
	return Simulate(re.prog, input)
}

// String returns the source pattern re was compiled from.
func (re *Regexp) String() string { return re.pattern }

// ID returns a UUID assigned at Compile time, stable for the lifetime of
// this Regexp value. It plays no role in matching; it exists so a host
// application compiling many patterns can correlate log lines ("pattern
// <id> rejected input") without re-logging the full source text.
func (re *Regexp) ID() uuid.UUID { return re.id }

// Program exposes the compiled NFA arena, e.g. for cmd/regexviz's debug
// visualization.
func (re *Regexp) Program() *Program { return re.prog }

// Match parses pattern, compiles it, and simulates it against input in
// one call — the single public operation from spec §6. A parse error is
// swallowed to a false result, per spec §6's "surfaces the error... and
// returns false" host convention; callers who need the error should call
// Compile directly.
func Match(pattern, input string) bool {
	re, err := Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(input)
}
