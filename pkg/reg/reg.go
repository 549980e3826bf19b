// Package reg implements a small byte-oriented regular expression language:
// literal bytes, . for any byte, the postfix quantifiers * + and ?, with ^
// and $ anchoring the start and end, and backslash escaping a literal byte.
//
// Quantifier behavior is a property of the whole match, not of individual
// quantifiers: greedy (longest, the default), lazy (shortest), or
// possessive (longest with no backtracking, so a failed possessive match
// does not retry shorter alternatives).
//
// Matchers are pure functions over (pattern, subject); a compiled Pattern
// may be used freely from multiple goroutines.
package reg

import (
	"errors"
	"strings"
)

// Policy selects how quantifiers consume input.
type Policy int

const (
	Greedy Policy = iota
	Lazy
	Possessive
)

// Options modify a single Find call.
type Options struct {
	NoCase bool   // fold ASCII case on both pattern and subject
	Start  int    // byte offset to begin the search at
	Policy Policy
}

type quant int

const (
	qOne quant = iota
	qStar
	qPlus
	qOpt
)

type node struct {
	any   bool // matches any byte
	ch    byte
	quant quant
}

// Pattern is a compiled pattern.
type Pattern struct {
	nodes                  []node
	anchorBegin, anchorEnd bool
}

var errDanglingQuantifier = errors.New("quantifier with nothing to repeat")

// Compile compiles a pattern. ^ is an anchor only at the start of the
// pattern and $ only at its end; elsewhere they are literal.
func Compile(pattern string) (*Pattern, error) {
	p := &Pattern{}
	src := pattern
	if strings.HasPrefix(src, "^") {
		p.anchorBegin = true
		src = src[1:]
	}
	if strings.HasSuffix(src, "$") && !strings.HasSuffix(src, `\$`) {
		p.anchorEnd = true
		src = src[:len(src)-1]
	}
	for i := 0; i < len(src); i++ {
		switch b := src[i]; b {
		case '*', '+', '?':
			n := len(p.nodes)
			if n == 0 || p.nodes[n-1].quant != qOne {
				return nil, errDanglingQuantifier
			}
			switch b {
			case '*':
				p.nodes[n-1].quant = qStar
			case '+':
				p.nodes[n-1].quant = qPlus
			case '?':
				p.nodes[n-1].quant = qOpt
			}
		case '\\':
			if i+1 >= len(src) {
				return nil, errors.New("trailing backslash in pattern")
			}
			i++
			p.nodes = append(p.nodes, node{ch: src[i]})
		case '.':
			p.nodes = append(p.nodes, node{any: true})
		default:
			p.nodes = append(p.nodes, node{ch: b})
		}
	}
	return p, nil
}

// Find returns the span [begin, end) of the leftmost match at or after
// opts.Start, or ok=false when the subject does not match.
func (p *Pattern) Find(s string, opts Options) (begin, end int, ok bool) {
	m := matcher{p: p, s: s, opts: opts}
	start := opts.Start
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		return -1, -1, false
	}
	for b := start; b <= len(s); b++ {
		if e := m.matchHere(p.nodes, b); e >= 0 {
			return b, e, true
		}
		if p.anchorBegin {
			break
		}
	}
	return -1, -1, false
}

// Find compiles pattern and finds it in s.
func Find(pattern, s string, opts Options) (begin, end int, ok bool, err error) {
	p, err := Compile(pattern)
	if err != nil {
		return -1, -1, false, err
	}
	begin, end, ok = p.Find(s, opts)
	return begin, end, ok, nil
}

type matcher struct {
	p    *Pattern
	s    string
	opts Options
}

func fold(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

func (m *matcher) byteMatches(n node, i int) bool {
	if i >= len(m.s) {
		return false
	}
	if n.any {
		return true
	}
	if m.opts.NoCase {
		return fold(n.ch) == fold(m.s[i])
	}
	return n.ch == m.s[i]
}

// matchHere matches the remaining nodes at offset i, returning the end
// offset of the match or -1.
func (m *matcher) matchHere(ns []node, i int) int {
	if len(ns) == 0 {
		if m.p.anchorEnd && i != len(m.s) {
			return -1
		}
		return i
	}
	n := ns[0]
	if n.quant == qOne {
		if !m.byteMatches(n, i) {
			return -1
		}
		return m.matchHere(ns[1:], i+1)
	}

	min := 0
	if n.quant == qPlus {
		min = 1
	}
	max := len(m.s) - i
	if n.quant == qOpt && max > 1 {
		max = 1
	}
	run := 0
	for run < max && m.byteMatches(n, i+run) {
		run++
	}
	if run < min {
		return -1
	}

	switch m.opts.Policy {
	case Lazy:
		for k := min; k <= run; k++ {
			if e := m.matchHere(ns[1:], i+k); e >= 0 {
				return e
			}
		}
	case Possessive:
		return m.matchHere(ns[1:], i+run)
	default: // Greedy
		for k := run; k >= min; k-- {
			if e := m.matchHere(ns[1:], i+k); e >= 0 {
				return e
			}
		}
	}
	return -1
}
