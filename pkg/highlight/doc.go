// Package highlight renders lexed mapper tokens with terminal colors.
//
// Styling is driven by a Theme, a mapping from token kind to a lipgloss
// style. Kinds absent from the theme pass through unstyled, so the written
// output always concatenates back to the original token text. For editor
// style integrations, Spans exposes the styled regions as byte offsets
// instead of ANSI sequences.
package highlight
