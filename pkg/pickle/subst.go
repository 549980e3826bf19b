package pickle

import (
	"strings"

	"github.com/pickle-lang/pickle/pkg/pickle/errs"
)

// The substitution engine turns one raw word into its final argument
// string. It scans left to right replacing $name (and ${name}) with the
// variable's value, [script] with the result of evaluating script in the
// current frame, and backslash sequences with the bytes they stand for.
// Brace-quoted words skip all of this.

// decodeEscape maps the byte following a backslash to the byte it stands
// for. The recognized set is exactly n, t and r; any other escaped byte,
// including backslash and quote characters, stands for itself. A newline
// after a backslash collapses to a single space (line continuation).
func decodeEscape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '\n':
		return ' '
	}
	return b
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// substWord substitutes one raw word, leaving the result in in.result on OK.
// Any non-OK signal from a nested [script] evaluation propagates unchanged.
func (in *Interp) substWord(w word) Status {
	if w.kind == wordBrace {
		return in.SetResult(w.text)
	}
	var sb strings.Builder
	src := w.text
	for i := 0; i < len(src); {
		switch src[i] {
		case '\\':
			if i+1 < len(src) {
				sb.WriteByte(decodeEscape(src[i+1]))
				i += 2
			} else {
				sb.WriteByte('\\')
				i++
			}
		case '$':
			name, rest, ok := scanVarName(src[i+1:])
			if !ok {
				// A dollar not followed by a name is literal.
				sb.WriteByte('$')
				i++
				continue
			}
			val, err := in.Var(name)
			if err != nil {
				return in.Fail(err)
			}
			sb.WriteString(val)
			i = len(src) - len(rest)
		case '[':
			script, rest, ok := cutBracket(src[i:])
			if !ok {
				return in.Errorf("unterminated command substitution")
			}
			if s := in.evalScript(script); s != OK {
				return s
			}
			sb.WriteString(in.result)
			i = len(src) - len(rest)
		default:
			sb.WriteByte(src[i])
			i++
		}
		if sb.Len() > in.limits.MaxString {
			return in.Fail(errs.LimitExceeded{What: "string length", Limit: in.limits.MaxString})
		}
	}
	return in.SetResult(sb.String())
}

// scanVarName scans a variable name at the start of s: either a braced form
// ${name} for names containing special characters, or a run of letters,
// digits and underscores. It reports failure for an empty name.
func scanVarName(s string) (name, rest string, ok bool) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 || end == 1 {
			return "", s, false
		}
		return s[1:end], s[end+1:], true
	}
	i := 0
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	if i == 0 {
		return "", s, false
	}
	return s[:i], s[i:], true
}

// cutBracket cuts a [script] span at the start of s, returning the inner
// script and the remainder. The word parser has already verified that the
// brackets balance, but a word may also be fed in directly by a host.
func cutBracket(s string) (script, rest string, ok bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], true
			}
		}
	}
	return "", s, false
}
