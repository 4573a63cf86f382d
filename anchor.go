package smartkeys

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

const anchorPrefix = "sk-"

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// newAnchorToken mints an id for one insertion. It starts with a letter so
// it is also a valid CSS identifier.
func newAnchorToken() string {
	return anchorPrefix + uuid.NewString()
}

// anchorMarkup wraps already-escaped inner markup in an inline container
// tagged with token.
func anchorMarkup(token, inner string) string {
	var sb strings.Builder
	sb.WriteString(`<span id="`)
	sb.WriteString(html.EscapeString(token))
	sb.WriteString(`">`)
	sb.WriteString(inner)
	sb.WriteString(`</span>`)
	return sb.String()
}

// textToHTML escapes text and turns each run of line breaks into one <br>.
func textToHTML(text string) string {
	parts := lineBreaks.Split(text, -1)
	for i, p := range parts {
		parts[i] = html.EscapeString(p)
	}
	return strings.Join(parts, "<br>")
}
