package corpus

import (
	"os"
	"testing"

	"github.com/outslept/regex-engine/regexlib"
)

func TestScenarioCorpus(t *testing.T) {
	data, err := os.ReadFile("../../testdata/scenarios.case")
	if err != nil {
		t.Fatalf("reading scenario file: %v", err)
	}
	doc, err := ParseScenarios(string(data))
	if err != nil {
		t.Fatalf("parsing scenario file: %v", err)
	}
	if len(doc.Scenarios) == 0 {
		t.Fatal("scenario file produced no scenarios")
	}

	for _, sc := range doc.Scenarios {
		re, err := regexlib.Compile(sc.Pattern())
		if err != nil {
			t.Errorf("compile %q: %v", sc.Pattern(), err)
			continue
		}
		got := re.MatchString(sc.Input())
		if got != sc.WantBool() {
			t.Errorf("match(%q, %q) = %v, want %v", sc.Pattern(), sc.Input(), got, sc.WantBool())
		}
	}
}

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets("../../testdata/presets.yaml")
	if err != nil {
		t.Fatalf("loading presets: %v", err)
	}
	if len(presets) == 0 {
		t.Fatal("expected at least one preset")
	}
	p, ok := FindPreset(presets, "digits")
	if !ok {
		t.Fatal("expected a 'digits' preset")
	}
	re, err := regexlib.Compile(p.Pattern)
	if err != nil {
		t.Fatalf("compile preset %q: %v", p.Pattern, err)
	}
	if !re.MatchString("42") {
		t.Errorf("preset %q should match \"42\"", p.Pattern)
	}
	if _, ok := FindPreset(presets, "does-not-exist"); ok {
		t.Fatal("expected FindPreset to report missing preset")
	}
}
