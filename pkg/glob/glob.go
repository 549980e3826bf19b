// Package glob implements the pattern language of string match: * matches
// any run of bytes including the empty run, ? matches exactly one byte, and
// % escapes the following byte. Patterns are byte-oriented and implicitly
// anchored to the whole subject.
package glob

// Escape is the escape byte of the pattern language.
const Escape = '%'

type segKind int

const (
	literal segKind = iota
	star
	question
)

type segment struct {
	kind segKind
	data string // literal text; empty for wildcards
}

// Parse compiles a pattern into segments. Adjacent stars collapse into one,
// and a trailing escape byte stands for itself.
func parse(p string) []segment {
	var segs []segment
	lit := []byte{}
	flushLit := func() {
		if len(lit) > 0 {
			segs = append(segs, segment{literal, string(lit)})
			lit = lit[:0]
		}
	}
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case Escape:
			if i+1 < len(p) {
				i++
			}
			lit = append(lit, p[i])
		case '*':
			flushLit()
			if len(segs) == 0 || segs[len(segs)-1].kind != star {
				segs = append(segs, segment{kind: star})
			}
		case '?':
			flushLit()
			segs = append(segs, segment{kind: question})
		default:
			lit = append(lit, p[i])
		}
	}
	flushLit()
	return segs
}

// Match reports whether s matches the whole pattern p.
func Match(p, s string) bool {
	return matchSegs(parse(p), s)
}

func matchSegs(segs []segment, s string) bool {
	if len(segs) == 0 {
		return s == ""
	}
	seg, rest := segs[0], segs[1:]
	switch seg.kind {
	case literal:
		if len(s) < len(seg.data) || s[:len(seg.data)] != seg.data {
			return false
		}
		return matchSegs(rest, s[len(seg.data):])
	case question:
		if s == "" {
			return false
		}
		return matchSegs(rest, s[1:])
	case star:
		// Shortcut: a trailing star matches any remainder.
		if len(rest) == 0 {
			return true
		}
		for i := 0; i <= len(s); i++ {
			if matchSegs(rest, s[i:]) {
				return true
			}
		}
		return false
	}
	return false
}
