package shell

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// editor reads input one line at a time.
type editor interface {
	readLine(prompt string) (string, error)
	appendHistory(line string)
	close()
}

// newEditor returns a line editor when the input is a terminal and a plain
// buffered reader otherwise.
func newEditor(fds [3]*os.File, cfg *config) editor {
	if isatty.IsTerminal(fds[0].Fd()) {
		return newLinerEditor(fds, cfg)
	}
	return &pipeEditor{bufio.NewReader(fds[0]), fds[1]}
}

// linerEditor wraps a liner state. liner works on the process-wide
// standard files, so they are swapped for the fd triple for the lifetime
// of the editor.
type linerEditor struct {
	state    *liner.State
	histFile string
	restore  func()
}

func newLinerEditor(fds [3]*os.File, cfg *config) *linerEditor {
	savedIn, savedOut := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = fds[0], fds[1]
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			st.ReadHistory(f)
			f.Close()
		}
	}
	return &linerEditor{st, cfg.History, func() {
		os.Stdin, os.Stdout = savedIn, savedOut
	}}
}

func (ed *linerEditor) readLine(prompt string) (string, error) {
	return ed.state.Prompt(prompt)
}

func (ed *linerEditor) appendHistory(line string) {
	ed.state.AppendHistory(line)
}

func (ed *linerEditor) close() {
	if ed.histFile != "" {
		if f, err := os.Create(ed.histFile); err == nil {
			ed.state.WriteHistory(f)
			f.Close()
		}
	}
	ed.state.Close()
	ed.restore()
}

// pipeEditor reads lines from a non-terminal input, still printing the
// prompt so piped sessions look like interactive ones.
type pipeEditor struct {
	r *bufio.Reader
	w *os.File
}

func (ed *pipeEditor) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(ed.w, prompt)
	}
	line, err := ed.r.ReadString('\n')
	if err != nil {
		// A final line without a newline is still a line.
		if line != "" {
			return line, nil
		}
		return "", err
	}
	return line[:len(line)-1], nil
}

func (ed *pipeEditor) appendHistory(string) {}

func (ed *pipeEditor) close() {}
