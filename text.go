package faqdoc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	styleRe    = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	scriptRe   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	tagRe      = regexp.MustCompile(`<[^>]*>`)
	danglingRe = regexp.MustCompile(`<[^>]*$`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// entities is the fixed entity set supported by the extractor, applied as
// ordered literal replacements. Any other entity sequence is left literal;
// full entity decoding is a documented non-goal.
var entities = [][2]string{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&lt;", "<"},
	{"&gt;", ">"},
}

// StripTags removes markup from an HTML fragment, returning bare text.
// Style and script blocks are dropped wholesale; every remaining tag is
// replaced with a single space so adjacent text nodes don't fuse. An
// unclosed tag at the end of the fragment, the usual residue of a
// byte-capped capture, is dropped too. Runs of whitespace collapse to one
// space. Malformed input degrades to an empty or near-empty string, never
// an error.
func StripTags(html string) string {
	s := styleRe.ReplaceAllString(html, " ")
	s = scriptRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, " ")
	s = danglingRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// DecodeEntities replaces the six supported named entities with their
// literal characters. Unrecognized entities pass through unchanged.
func DecodeEntities(s string) string {
	for _, e := range entities {
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	return s
}

// CleanText strips markup and decodes the supported entity set, collapsing
// whitespace once more since entity decoding can introduce new spaces.
func CleanText(html string) string {
	s := DecodeEntities(StripTags(html))
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// Truncate returns s cut to at most n bytes, backing off to the nearest
// rune boundary so the result is always valid UTF-8. Used to cap captured
// answer fragments at MaxAnswerLen before cleaning.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
