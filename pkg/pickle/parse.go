package pickle

import (
	"fmt"

	"github.com/pickle-lang/pickle/pkg/pickle/errs"
)

// The word parser splits one logical command's text into raw words. It does
// no substitution; brace words are verbatim, and bare or quoted words keep
// their $, [ and backslash sequences for the substitution pass.

type wordKind int

const (
	wordBare wordKind = iota
	wordBrace
	wordQuote
)

type word struct {
	text string
	kind wordKind
	line int // line the word started on, 1-based
}

type parseError struct {
	line int
	msg  string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.line, e.msg)
}

// parser scans a script for one evaluation. Word boundaries are structural:
// an escaped byte never terminates a word and never counts toward brace or
// bracket balancing.
type parser struct {
	src    string
	pos    int
	line   int
	limits Limits
}

func newParser(src string, limits Limits) *parser {
	return &parser{src: src, line: 1, limits: limits}
}

func (p *parser) errorf(format string, args ...any) error {
	return &parseError{p.line, fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) advance() byte {
	b := p.src[p.pos]
	p.pos++
	if b == '\n' {
		p.line++
	}
	return b
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

func isTerminator(b byte) bool { return b == '\n' || b == ';' }

// nextCommand returns the raw words of the next non-empty command, or nil
// at the end of the script. Comments and runs of terminators are consumed
// silently.
func (p *parser) nextCommand() ([]word, error) {
	for !p.eof() {
		words, err := p.scanCommand()
		if err != nil {
			return nil, err
		}
		if len(words) > 0 {
			return words, nil
		}
	}
	return nil, nil
}

// scanCommand scans up to the next command terminator. It may return zero
// words for empty commands and comment lines.
func (p *parser) scanCommand() ([]word, error) {
	var words []word
	for {
		p.skipSpace()
		if p.eof() {
			return words, nil
		}
		b := p.peek()
		if isTerminator(b) {
			p.advance()
			return words, nil
		}
		if b == '#' && len(words) == 0 {
			p.skipComment()
			return nil, nil
		}
		w, err := p.scanWord()
		if err != nil {
			return nil, err
		}
		words = append(words, w)
		if len(words) > p.limits.MaxArgs {
			return nil, &parseError{p.line,
				errs.LimitExceeded{What: "argument", Limit: p.limits.MaxArgs}.Error()}
		}
	}
}

// skipSpace consumes whitespace between words, treating an escaped newline
// as whitespace so a command can continue on the next line.
func (p *parser) skipSpace() {
	for !p.eof() {
		if isSpace(p.peek()) {
			p.advance()
			continue
		}
		if p.peek() == '\\' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '\n' {
			p.advance()
			p.advance()
			continue
		}
		return
	}
}

func (p *parser) skipComment() {
	for !p.eof() && p.peek() != '\n' {
		p.advance()
	}
}

func (p *parser) scanWord() (word, error) {
	switch p.peek() {
	case '{':
		return p.scanBrace()
	case '"':
		return p.scanQuote()
	default:
		return p.scanBare()
	}
}

// scanBrace consumes a brace-quoted word up to its matching close brace,
// counting nested unescaped braces. The body is kept verbatim; this is the
// language's quoting mechanism and no substitution is applied later.
func (p *parser) scanBrace() (word, error) {
	startLine := p.line
	p.advance() // opening brace
	start := p.pos
	depth := 1
	for !p.eof() {
		switch b := p.advance(); b {
		case '\\':
			if !p.eof() {
				p.advance()
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return p.word(p.src[start:p.pos-1], wordBrace, startLine)
			}
		}
	}
	return word{}, &parseError{startLine, "unterminated brace"}
}

// scanQuote consumes a double-quoted word up to the first unescaped quote.
// Substitution is applied to it later.
func (p *parser) scanQuote() (word, error) {
	startLine := p.line
	p.advance() // opening quote
	start := p.pos
	for !p.eof() {
		switch p.advance() {
		case '\\':
			if !p.eof() {
				p.advance()
			}
		case '[':
			if err := p.skipBracket(startLine); err != nil {
				return word{}, err
			}
		case '"':
			return p.word(p.src[start:p.pos-1], wordQuote, startLine)
		}
	}
	return word{}, &parseError{startLine, "unterminated quote"}
}

// scanBare consumes a bare word up to whitespace or a terminator. Bracketed
// spans are consumed atomically so a command substitution may contain
// spaces, semicolons and newlines.
func (p *parser) scanBare() (word, error) {
	startLine := p.line
	start := p.pos
	for !p.eof() {
		b := p.peek()
		if isSpace(b) || isTerminator(b) {
			break
		}
		p.advance()
		switch b {
		case '\\':
			if !p.eof() {
				p.advance()
			}
		case '[':
			if err := p.skipBracket(startLine); err != nil {
				return word{}, err
			}
		}
	}
	return p.word(p.src[start:p.pos], wordBare, startLine)
}

// skipBracket consumes a bracketed command substitution whose opening
// bracket has already been consumed, honoring nesting and escapes.
func (p *parser) skipBracket(startLine int) error {
	depth := 1
	for !p.eof() {
		switch p.advance() {
		case '\\':
			if !p.eof() {
				p.advance()
			}
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
	return &parseError{startLine, "unterminated command substitution"}
}

func (p *parser) word(text string, kind wordKind, line int) (word, error) {
	if len(text) > p.limits.MaxString {
		return word{}, &parseError{line,
			errs.LimitExceeded{What: "string length", Limit: p.limits.MaxString}.Error()}
	}
	return word{text: text, kind: kind, line: line}, nil
}

// Check parses the whole script without evaluating it and returns the first
// syntax error, if any. Hosts use it for diagnostics.
func Check(script string, limits *Limits) error {
	l := DefaultLimits
	if limits != nil {
		l = *limits
	}
	p := newParser(script, l)
	for {
		words, err := p.nextCommand()
		if err != nil {
			return err
		}
		if words == nil {
			return nil
		}
	}
}

// ErrorLine reports the line number carried by a parse error, or 0.
func ErrorLine(err error) int {
	if pe, ok := err.(*parseError); ok {
		return pe.line
	}
	return 0
}
