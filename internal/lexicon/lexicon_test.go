package lexicon

import (
	"testing"

	"github.com/dshills/prosecheck/internal/schema"
)

func TestDefault_Sizes(t *testing.T) {
	l := Default()
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"weak words", len(l.WeakWords), 15},
		{"filler phrases", len(l.FillerPhrases), 20},
		{"cliches", len(l.Cliches), 25},
		{"complex words", len(l.ComplexWords), 21},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %d entries, want %d", c.name, c.got, c.want)
		}
	}
	for _, tone := range schema.Tones {
		if len(l.ToneWords[tone]) == 0 {
			t.Errorf("no tone words for %q", tone)
		}
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a.WeakWords[0] = "mutated"
	a.ToneWords[schema.ToneFormal][0] = "mutated"
	b := Default()
	if b.WeakWords[0] == "mutated" || b.ToneWords[schema.ToneFormal][0] == "mutated" {
		t.Error("Default shares backing storage between calls")
	}
}

func TestExtend(t *testing.T) {
	base := Default()
	ext := base.Extend(Extras{
		WeakWords:     []string{"Very", " kinda ", ""},
		FillerPhrases: []string{"at the end of the day"},
		ComplexWords: map[string]string{
			"Utilize":   "use",
			"endeavour": "try",
			"commence":  "start",
			"aforesaid": "this",
		},
	})

	if got, want := len(ext.WeakWords), len(base.WeakWords)+1; got != want {
		t.Errorf("weak words = %d, want %d", got, want)
	}
	if !ext.IsWeak("KINDA") {
		t.Error("added weak word not found")
	}
	if base.IsWeak("kinda") {
		t.Error("Extend modified the receiver")
	}
	if got, want := len(ext.FillerPhrases), len(base.FillerPhrases)+1; got != want {
		t.Errorf("filler phrases = %d, want %d", got, want)
	}

	added := ext.ComplexWords[len(base.ComplexWords):]
	want := []Replacement{{From: "aforesaid", To: "this"}, {From: "endeavour", To: "try"}}
	if len(added) != len(want) {
		t.Fatalf("added complex words = %+v, want %+v", added, want)
	}
	for i := range want {
		if added[i] != want[i] {
			t.Errorf("added[%d] = %+v, want %+v", i, added[i], want[i])
		}
	}
}

func TestIsWeak(t *testing.T) {
	l := Default()
	for _, w := range []string{"very", "Really", "MAYBE"} {
		if !l.IsWeak(w) {
			t.Errorf("IsWeak(%q) = false, want true", w)
		}
	}
	if l.IsWeak("clear") {
		t.Error("IsWeak(\"clear\") = true, want false")
	}
}

func TestSimpleAlternative(t *testing.T) {
	cases := map[string]string{
		"use":          "use",
		"help/ease":    "help",
		"carry out/do": "carry out",
		" still / but": "still",
	}
	for in, want := range cases {
		if got := SimpleAlternative(in); got != want {
			t.Errorf("SimpleAlternative(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStopWordSet(t *testing.T) {
	set := Default().StopWordSet()
	if !set["the"] || !set["would"] {
		t.Error("common stop words missing")
	}
	if set["writing"] {
		t.Error("content word in stop set")
	}
}
