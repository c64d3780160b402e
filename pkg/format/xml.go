package format

import (
	"regexp"
	"strings"
)

var (
	wsRun  = regexp.MustCompile(`\s+`)
	tagRe  = regexp.MustCompile(`^<\s*(/?)\s*([\w:.\-]+)((?s).*?)(/?)\s*>$`)
	attrRe = regexp.MustCompile(`([\w:.\-]+)\s*=\s*("[^"]*"|'[^']*')`)
)

// normalizeProlog collapses internal whitespace in an XML declaration or
// DOCTYPE and repairs split delimiters.
func normalizeProlog(raw string) string {
	s := wsRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	s = strings.ReplaceAll(s, "< ?", "<?")
	s = strings.ReplaceAll(s, "? >", "?>")
	return s
}

// normalizeComment collapses a comment onto one line. XML comments also get
// a split terminator repaired; -- line comments are left alone beyond the
// whitespace collapse.
func normalizeComment(raw string) string {
	s := wsRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	if strings.HasPrefix(s, "<!--") {
		s = strings.ReplaceAll(s, "-- >", "-->")
	}
	return s
}

// normalizeTag rewrites a tag into canonical form: lowercased name
// (resultMap keeps its camel case), attributes single-spaced with values
// trimmed inside their quotes, and attribute equals signs tightened.
func normalizeTag(raw string) (text string, closing, selfClosing bool) {
	m := tagRe.FindStringSubmatch(raw)
	if m == nil {
		// The lexer only produces well-formed tags; anything else passes
		// through with its whitespace collapsed.
		s := wsRun.ReplaceAllString(strings.TrimSpace(raw), " ")
		return s, strings.HasPrefix(raw, "</"), strings.HasSuffix(raw, "/>")
	}

	closing = m[1] == "/"
	selfClosing = m[4] == "/"
	name := canonicalTagName(m[2])
	attrs := normalizeAttrs(m[3])

	var b strings.Builder
	b.WriteByte('<')
	if closing {
		b.WriteByte('/')
	}
	b.WriteString(name)
	if attrs != "" {
		b.WriteByte(' ')
		b.WriteString(attrs)
	}
	if selfClosing {
		b.WriteString("/>")
	} else {
		b.WriteByte('>')
	}
	return b.String(), closing, selfClosing
}

// canonicalTagName lowercases a tag name. resultMap is the one MyBatis
// element whose canonical spelling is camel case.
func canonicalTagName(name string) string {
	lower := strings.ToLower(name)
	if lower == "resultmap" {
		return "resultMap"
	}
	return lower
}

func normalizeAttrs(body string) string {
	s := wsRun.ReplaceAllString(strings.TrimSpace(body), " ")
	return strings.TrimSpace(attrRe.ReplaceAllStringFunc(s, func(attr string) string {
		m := attrRe.FindStringSubmatch(attr)
		quoted := m[2]
		quote := quoted[:1]
		value := strings.TrimSpace(quoted[1 : len(quoted)-1])
		return m[1] + "=" + quote + value + quote
	}))
}
