// Package transform generates alternative phrasings of a text. Every tool is
// a single pass over its input; the rewrite tool's starter choice is the only
// random element and is drawn from an injectable RandomSource.
package transform

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/prosecheck/internal/detect"
	"github.com/dshills/prosecheck/internal/lexicon"
	"github.com/dshills/prosecheck/internal/profile"
	"github.com/dshills/prosecheck/internal/schema"
)

// Tool names one of the six generators.
type Tool string

const (
	ToolRewrite    Tool = "rewrite"
	ToolExpand     Tool = "expand"
	ToolShorten    Tool = "shorten"
	ToolGrammarFix Tool = "grammar-fix"
	ToolSimplify   Tool = "simplify"
	ToolHeadlines  Tool = "headlines"
)

// Tools lists every tool in display order.
var Tools = []Tool{ToolRewrite, ToolExpand, ToolShorten, ToolGrammarFix, ToolSimplify, ToolHeadlines}

// ErrUnknownTool is returned for tool names that do not match any generator.
var ErrUnknownTool = errors.New("transform: unknown tool")

// NoChangesLabel labels the fallback result returned when a tool has nothing
// to change.
const NoChangesLabel = "No changes"

// ParseTool converts a name such as "grammar-fix", "grammarFix" or
// "GRAMMAR_FIX" to a Tool.
func ParseTool(s string) (Tool, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for _, t := range Tools {
		if strings.ReplaceAll(string(t), "-", "") == norm {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTool, s)
}

// RandomSource returns a uniform value in [0, 1).
type RandomSource func() float64

// SeededSource returns a reproducible RandomSource. The returned function is
// not safe for concurrent use.
func SeededSource(seed uint64) RandomSource {
	r := rand.New(rand.NewPCG(seed, seed))
	return r.Float64
}

// Options configures a single Apply call.
type Options struct {
	// Tone selects the rewrite profile; empty means profile.Default.
	Tone string
	// Rand picks the rewrite starter; nil uses math/rand/v2.
	Rand RandomSource
}

type rule struct {
	re   *regexp.Regexp
	from string
	to   string
}

var rand64 RandomSource = rand.Float64

// Transformer holds compiled rules for one lexicon. It is safe for
// concurrent use.
type Transformer struct {
	lex     *lexicon.Lexicon
	fillers []*regexp.Regexp
	weak    []*regexp.Regexp
	complex []rule
	typos   []rule
}

// New compiles the rules in lex.
func New(lex *lexicon.Lexicon) *Transformer {
	t := &Transformer{lex: lex}
	for _, p := range lex.FillerPhrases {
		t.fillers = append(t.fillers, detect.WordPattern(p))
	}
	for _, w := range lex.WeakWords {
		t.weak = append(t.weak, detect.WordPattern(w))
	}
	for _, r := range lex.ComplexWords {
		t.complex = append(t.complex, rule{re: detect.WordPattern(r.From), from: r.From, to: lexicon.SimpleAlternative(r.To)})
	}
	for _, r := range lex.Typos {
		t.typos = append(t.typos, rule{re: detect.WordPattern(r.From), from: r.From, to: r.To})
	}
	return t
}

// Apply runs tool over text. Text that is empty after trimming yields an
// empty list; otherwise at least one result is returned.
func (t *Transformer) Apply(tool Tool, text string, opts Options) ([]schema.TransformResult, error) {
	tool, err := ParseTool(string(tool))
	if err != nil {
		return nil, err
	}
	if tool == ToolRewrite {
		if _, err := profile.Load(opts.Tone); err != nil {
			return nil, err
		}
	}
	body := strings.TrimSpace(text)
	if body == "" {
		return []schema.TransformResult{}, nil
	}
	switch tool {
	case ToolRewrite:
		return t.Rewrite(body, opts)
	case ToolExpand:
		return t.Expand(body), nil
	case ToolShorten:
		return t.Shorten(body), nil
	case ToolGrammarFix:
		return t.GrammarFix(body), nil
	case ToolSimplify:
		return t.Simplify(body), nil
	case ToolHeadlines:
		return t.Headlines(body), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownTool, tool)
}

func fallback(text string) []schema.TransformResult {
	return []schema.TransformResult{{Text: text, Label: NoChangesLabel}}
}

var (
	spaceRunRe      = regexp.MustCompile(`[ \t]{2,}`)
	spaceBeforePunc = regexp.MustCompile(`[ \t]+([,.!?;:])`)
	leadingPuncRe   = regexp.MustCompile(`^[,;:\s]+`)
)

// stripFillerAndWeak removes filler phrases and then weak words.
func (t *Transformer) stripFillerAndWeak(text string) string {
	s := text
	for _, re := range t.fillers {
		s = re.ReplaceAllString(s, "")
	}
	for _, re := range t.weak {
		s = re.ReplaceAllString(s, "")
	}
	return tidy(s)
}

// tidy collapses whitespace left behind by deletions and recapitalizes the
// first letter.
func tidy(s string) string {
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = spaceBeforePunc.ReplaceAllString(s, "$1")
	s = leadingPuncRe.ReplaceAllString(s, "")
	return upperFirst(strings.TrimSpace(s))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// lowerFirst lowercases the first letter unless the first word is "I" or
// looks like an acronym.
func lowerFirst(s string) string {
	first := s
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		first = s[:i]
	}
	first = strings.TrimRightFunc(first, unicode.IsPunct)
	if first == "I" || strings.HasPrefix(first, "I'") || (utf8.RuneCountInString(first) > 1 && strings.ToUpper(first) == first) {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// matchCase shapes repl after the casing of orig: all caps, leading capital
// or unchanged.
func matchCase(orig, repl string) string {
	if utf8.RuneCountInString(orig) > 1 && strings.ToUpper(orig) == orig && strings.ToLower(orig) != orig {
		return strings.ToUpper(repl)
	}
	r, _ := utf8.DecodeRuneInString(orig)
	if unicode.IsUpper(r) {
		return upperFirst(repl)
	}
	return repl
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
