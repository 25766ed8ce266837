package main

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/liner"
	"github.com/platinasystems/log"
)

const PROMPT = "clkctl> "

var commands = []string{"DISABLE", "DOMAINS", "DUMP", "ENABLE", "ENABLED", "PARENT", "QUIT", "RATE", "SET"}

// console reads commands from in until QUIT or EOF. On a terminal it uses
// liner, with history and completion; otherwise it reads plain lines.
func (s *Server) console(in *os.File, out io.Writer) {
	w := bufio.NewWriter(out)
	if !isatty.IsTerminal(in.Fd()) {
		r := bufio.NewScanner(in)
		for r.Scan() {
			if s.runLine(r.Text(), w) {
				return
			}
		}
		if err := r.Err(); err != nil {
			log.Print("err", "console: ", err)
		}
		return
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(s.complete)
	for {
		l, err := line.Prompt(PROMPT)
		if err == io.EOF || err == liner.ErrPromptAborted {
			return
		}
		if err != nil {
			log.Print("err", "console: ", err)
			return
		}
		line.AppendHistory(l)
		if s.runLine(l, w) {
			return
		}
	}
}

// complete offers command names for the first word and clock names for the
// ones after it.
func (s *Server) complete(l string) []string {
	t := strings.Fields(l)
	if strings.HasSuffix(l, " ") || len(t) == 0 {
		t = append(t, "")
	}
	last := t[len(t)-1]
	head := l[:len(l)-len(last)]

	var cands []string
	if len(t) == 1 {
		for _, c := range commands {
			if strings.HasPrefix(c, strings.ToUpper(last)) {
				cands = append(cands, head+c+" ")
			}
		}
		return cands
	}
	s.mu.Lock()
	names := append(s.g.Inputs(), s.g.Names()...)
	s.mu.Unlock()
	sort.Strings(names)
	for _, n := range names {
		if strings.HasPrefix(n, last) {
			cands = append(cands, head+n)
		}
	}
	return cands
}
