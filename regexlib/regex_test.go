package regexlib

import (
	"strings"
	"testing"
)

func mustMatch(t *testing.T, pattern, input string) bool {
	t.Helper()
	re, err := Compile(pattern)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	return re.MatchString(input)
}

// ------------------------------------------------------------------- end-to-end scenarios

func TestScenarios(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"a|b", "b", true},
		{"a*", "", true},
		{"a+", "", false},
		{"a+", "aaaa", true},
		{"(ab)+c", "ababc", true},
		{"(ab)+c", "abac", false},
		{"[a-c]{2,3}", "bca", true},
		{"[a-c]{2,3}", "bcaa", false},
		{"a(b|c)*d", "abcbcd", true},
		{"a(b|c)*d", "abxd", false},
	}
	for _, c := range cases {
		got := mustMatch(t, c.pattern, c.input)
		if got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.pattern, c.input, got, c.want)
		}
	}
}

// ------------------------------------------------------------------- parse-error scenarios

func TestParseErrorScenarios(t *testing.T) {
	cases := []struct {
		pattern string
		want    ErrorKind
	}{
		{"(abc", UnterminatedGroup},
		{"[z-a]", InvalidRange},
		{"a{2,1}", InvalidQuantifierRange},
		{"a**", UnexpectedCharacter},
		{"|a", EmptyAlternationOperand},
		{"[abc", UnterminatedCharClass},
		{"[]", EmptyCharClass},
		{"a{", UnterminatedQuantifier},
		{"a{}", EmptyQuantifier},
		{"a{,}", EmptyQuantifier},
		{"a{1x}", MalformedQuantifier},
		{"a)", UnexpectedCharacter},
		{"a|", EmptyAlternationOperand},
	}
	for _, c := range cases {
		_, err := Parse(c.pattern)
		if err == nil {
			t.Errorf("Parse(%q): want error kind %v, got nil", c.pattern, c.want)
			continue
		}
		pe, ok := err.(*ParseError)
		if !ok {
			t.Errorf("Parse(%q): want *ParseError, got %T", c.pattern, err)
			continue
		}
		if pe.Kind != c.want {
			t.Errorf("Parse(%q): want kind %v, got %v (%v)", c.pattern, c.want, pe.Kind, pe)
		}
	}
}

// ------------------------------------------------------------------- testable properties

func TestDeterminism(t *testing.T) {
	re := MustCompile("a(b|c)*d")
	for i := 0; i < 5; i++ {
		if !re.MatchString("abcbcd") {
			t.Fatalf("iteration %d: expected accept", i)
		}
	}
}

func TestAlternationAssociativeAndCommutative(t *testing.T) {
	inputs := []string{"a", "b", "c", "ab", ""}
	patterns := []string{"(a|b)|c", "a|(b|c)", "c|b|a"}
	for _, in := range inputs {
		var first bool
		for i, p := range patterns {
			got := mustMatch(t, p, in)
			if i == 0 {
				first = got
			} else if got != first {
				t.Errorf("pattern %q on %q = %v, expected %v (to match %q)", p, in, got, first, patterns[0])
			}
		}
	}
}

func TestConcatenationAssociative(t *testing.T) {
	inputs := []string{"abc", "ab", "abcd", ""}
	patterns := []string{"(ab)c", "a(bc)", "abc"}
	for _, in := range inputs {
		var first bool
		for i, p := range patterns {
			got := mustMatch(t, p, in)
			if i == 0 {
				first = got
			} else if got != first {
				t.Errorf("pattern %q on %q = %v, expected %v", p, in, got, first)
			}
		}
	}
}

func TestStarIdempotenceViaGrouping(t *testing.T) {
	inputs := []string{"", "a", "aaaa", "b", "aab"}
	for _, in := range inputs {
		a := mustMatch(t, "(a*)*", in)
		b := mustMatch(t, "a*", in)
		if a != b {
			t.Errorf(`match("(a*)*", %q)=%v != match("a*", %q)=%v`, in, a, in, b)
		}
	}
}

func TestQuantifierEquivalence(t *testing.T) {
	inputs := []string{"", "a", "aa", "aaa"}
	for _, in := range inputs {
		if got, want := mustMatch(t, "a{0,}", in), mustMatch(t, "a*", in); got != want {
			t.Errorf("a{0,} vs a* on %q: %v != %v", in, got, want)
		}
		if got, want := mustMatch(t, "a{1,}", in), mustMatch(t, "a+", in); got != want {
			t.Errorf("a{1,} vs a+ on %q: %v != %v", in, got, want)
		}
		if got, want := mustMatch(t, "a{0,1}", in), mustMatch(t, "a?", in); got != want {
			t.Errorf("a{0,1} vs a? on %q: %v != %v", in, got, want)
		}
	}
}

func TestCharClassRangeIdentity(t *testing.T) {
	for _, in := range []string{"a", "b", "c", "d"} {
		if got, want := mustMatch(t, "[a-c]", in), mustMatch(t, "a|b|c", in); got != want {
			t.Errorf("[a-c] vs a|b|c on %q: %v != %v", in, got, want)
		}
	}
}

func TestFullStringAnchoring(t *testing.T) {
	re := MustCompile("ab")
	if !re.MatchString("ab") {
		t.Fatal("expected ab to match ab")
	}
	if re.MatchString("abx") {
		t.Fatal("expected ab to reject abx (unanchored suffix)")
	}
	if re.MatchString("xab") {
		t.Fatal("expected ab to reject xab (unanchored prefix)")
	}
}

func TestNoHangOnLargeInput(t *testing.T) {
	re := MustCompile("a*b")
	in := strings.Repeat("a", 10000)
	if re.MatchString(in) {
		t.Fatal("expected a*b to reject an all-a input with no trailing b")
	}
	if !re.MatchString(in + "b") {
		t.Fatal("expected a*b to accept a...ab")
	}
}

func TestEmptyPattern(t *testing.T) {
	if !mustMatch(t, "", "") {
		t.Fatal("empty pattern should match empty input")
	}
	if mustMatch(t, "", "a") {
		t.Fatal("empty pattern should reject non-empty input")
	}
}

func TestEmptyGroup(t *testing.T) {
	if !mustMatch(t, "a()b", "ab") {
		t.Fatal("a()b should match ab — an empty group matches the empty string")
	}
}

func TestUnescapedClosingDelimitersAreLiterals(t *testing.T) {
	if !mustMatch(t, "a]b", "a]b") {
		t.Fatal(`a]b should match "a]b" — ']' outside a bracket expression is a literal`)
	}
	if !mustMatch(t, "3}", "3}") {
		t.Fatal(`3} should match "3}" — '}' outside a quantifier is a literal`)
	}
	if !mustMatch(t, "[0-9]{4},[0-9]{2}", "1234,56") {
		t.Fatal(`[0-9]{4},[0-9]{2} should match "1234,56" — ',' outside a quantifier body is a literal`)
	}
}

func TestTrailingAndLeadingHyphenInClass(t *testing.T) {
	if !mustMatch(t, "[a-]", "-") {
		t.Fatal("[a-] should accept a literal hyphen")
	}
	if !mustMatch(t, "[a-]", "a") {
		t.Fatal("[a-] should accept 'a'")
	}
	if !mustMatch(t, "[-ac]", "-") {
		t.Fatal("[-ac] should accept a literal leading hyphen")
	}
}

func TestIDIsStableAndUnique(t *testing.T) {
	a := MustCompile("abc")
	b := MustCompile("abc")
	if a.ID() != a.ID() {
		t.Fatal("ID should be stable across calls")
	}
	if a.ID() == b.ID() {
		t.Fatal("two distinct Compile calls should get distinct IDs")
	}
}

func BenchmarkManyAs(b *testing.B) {
	re := MustCompile("a*b")
	txt := strings.Repeat("a", 100000) + "b"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(txt)
	}
}
