package pickle

import (
	"fmt"
	"strings"
)

// The list sublanguage. A list is a string of elements separated by runs of
// whitespace; an element is a brace-delimited span (nested unescaped braces
// balance, content verbatim), a double-quoted span, or a bare run of
// non-whitespace with backslash escapes. FormatList produces canonical
// lists: ParseList(FormatList(elems)) == elems for any elems.

func isListSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// ParseList splits a list string into its elements. Hand-written lists need
// not be canonical, but unterminated braces and quotes are errors.
func ParseList(s string) ([]string, error) {
	elems := []string{}
	i := 0
	for {
		for i < len(s) && isListSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			return elems, nil
		}
		var elem string
		var err error
		switch s[i] {
		case '{':
			elem, i, err = parseBraceElem(s, i)
		case '"':
			elem, i, err = parseQuoteElem(s, i)
		default:
			elem, i = parseBareElem(s, i)
		}
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

func parseBraceElem(s string, i int) (string, int, error) {
	depth := 1
	start := i + 1
	for j := start; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start:j], j + 1, nil
			}
		}
	}
	return "", i, fmt.Errorf("unterminated brace in list")
}

func parseQuoteElem(s string, i int) (string, int, error) {
	var sb strings.Builder
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			if j+1 < len(s) {
				sb.WriteByte(decodeEscape(s[j+1]))
				j++
			}
		case '"':
			return sb.String(), j + 1, nil
		default:
			sb.WriteByte(s[j])
		}
	}
	return "", i, fmt.Errorf("unterminated quote in list")
}

func parseBareElem(s string, i int) (string, int) {
	var sb strings.Builder
	j := i
	for ; j < len(s) && !isListSpace(s[j]); j++ {
		if s[j] == '\\' && j+1 < len(s) {
			sb.WriteByte(decodeEscape(s[j+1]))
			j++
		} else {
			sb.WriteByte(s[j])
		}
	}
	return sb.String(), j
}

// FormatList joins elements into a canonical list string, re-quoting any
// element containing whitespace or list syntax so the result parses back to
// exactly the same elements.
func FormatList(elems []string) string {
	quoted := make([]string, len(elems))
	for i, e := range elems {
		quoted[i] = quoteElem(e)
	}
	return strings.Join(quoted, " ")
}

func quoteElem(e string) string {
	if e == "" {
		return "{}"
	}
	if !needsQuote(e) {
		return e
	}
	if braceQuotable(e) {
		return "{" + e + "}"
	}
	return escapeQuote(e)
}

func needsQuote(e string) bool {
	for i := 0; i < len(e); i++ {
		switch e[i] {
		case ' ', '\t', '\n', '\r', '{', '}', '"', '\\', '[', ']', '$', ';':
			return true
		}
	}
	return false
}

// braceQuotable reports whether wrapping e in braces parses back verbatim:
// its braces must balance with no close brace dipping below depth zero, and
// it must not end in a backslash (which would escape the closing brace).
func braceQuotable(e string) bool {
	depth := 0
	for i := 0; i < len(e); i++ {
		switch e[i] {
		case '\\':
			if i == len(e)-1 {
				return false
			}
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// escapeQuote writes e as a bare element with every separator and syntax
// byte backslash-escaped. Newlines, tabs and carriage returns use their
// named escapes since a raw escaped newline is a line continuation.
func escapeQuote(e string) string {
	var sb strings.Builder
	for i := 0; i < len(e); i++ {
		switch b := e[i]; b {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case ' ', '{', '}', '"', '\\', '[', ']', '$', ';':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
