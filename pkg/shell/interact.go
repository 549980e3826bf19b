package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/pickle-lang/pickle/pkg/pickle"
	"github.com/pickle-lang/pickle/pkg/store"
)

// interact runs the read-eval-print loop until the input ends. Each line
// is one evaluation; the loop echoes "[status] result" for every
// evaluation whose result is non-empty, and the prompt is re-read from the
// prompt variable so scripts can change it.
func interact(in *pickle.Interp, fds [3]*os.File, cfg *config) {
	ed := newEditor(fds, cfg)
	defer ed.close()

	db := openHistory(fds[2], cfg, ed)
	if db != nil {
		defer db.Close()
	}

	for {
		prompt, _ := in.Var("prompt")
		line, err := ed.readLine(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(fds[2], err)
			}
			return
		}
		if line == "" {
			continue
		}
		ed.appendHistory(line)
		if db != nil {
			if _, err := db.AddCmd(line); err != nil {
				logger.Println("adding to history:", err)
			}
		}

		status := in.Eval(line)
		if res := in.Result(); res != "" {
			fmt.Fprintf(fds[1], "[%d] %s\n", int(status), res)
		}
	}
}

// openHistory opens the command history database and seeds the editor with
// its most recent entries. A nil return means history is off.
func openHistory(stderr *os.File, cfg *config, ed editor) *store.Store {
	if cfg.DB == "" {
		return nil
	}
	db, err := store.NewStore(cfg.DB)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open history database:", err)
		return nil
	}
	next, err := db.NextCmdSeq()
	if err != nil {
		return db
	}
	from := next - historySeedSize
	if from < 1 {
		from = 1
	}
	cmds, err := db.Cmds(from, next)
	if err != nil {
		return db
	}
	for _, c := range cmds {
		ed.appendHistory(c.Text)
	}
	return db
}

const historySeedSize = 100
