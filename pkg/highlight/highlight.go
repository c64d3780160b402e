package highlight

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/mybatis-tools/mapperfmt/pkg/token"
)

var (
	keywordStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}).Bold(true)
	functionStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"})
	stringStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"})
	bindStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9333EA", Dark: "#C084FC"}).Bold(true)
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"})
	commentStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}).Italic(true)
)

// Theme maps token kinds to the styles they render with.
type Theme map[token.Kind]lipgloss.Style

// DefaultTheme returns the standard color scheme.
func DefaultTheme() Theme {
	return Theme{
		token.Keyword:       keywordStyle,
		token.Function:      functionStyle,
		token.StringLiteral: stringStyle,
		token.BindVariable:  bindStyle,
		token.XMLTag:        tagStyle,
		token.XMLProlog:     tagStyle,
		token.XMLCData:      stringStyle,
		token.EntityRef:     tagStyle,
		token.XMLComment:    commentStyle,
	}
}

// Span is a styled region of the token stream, measured in bytes over the
// concatenation of all token texts.
type Span struct {
	Start int
	End   int
	Kind  token.Kind
}

// Spans returns one span per token, skipping whitespace and line breaks.
func Spans(tokens token.Tokens) []Span {
	spans := make([]Span, 0, len(tokens))

	offset := 0
	for _, tok := range tokens {
		end := offset + len(tok.Text)
		if tok.Kind != token.Whitespace && tok.Kind != token.Newline {
			spans = append(spans, Span{Start: offset, End: end, Kind: tok.Kind})
		}
		offset = end
	}

	return spans
}

// Highlight writes the tokens to w, styling each one according to theme.
func Highlight(w io.Writer, tokens token.Tokens, theme Theme) error {
	for _, tok := range tokens {
		text := tok.Text
		if style, ok := theme[tok.Kind]; ok {
			text = style.Render(text)
		}

		if _, err := io.WriteString(w, text); err != nil {
			return errors.Wrap(err, "failed to write highlighted output")
		}
	}

	return nil
}
