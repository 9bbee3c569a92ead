// Command symrepl is an interactive read-eval-print loop over the
// symkernel package, grounded on the teacher's cmd/repl: a readline
// instance for interactive terminals, a line-scanning fallback for
// piped input, and a small set of colon-commands.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	"golang.org/x/term"

	"github.com/client9/symkernel"
)

func main() {
	r := newREPL()
	if err := r.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type repl struct {
	ctx    symkernel.Context
	prompt string
}

func newREPL() *repl {
	return &repl{ctx: symkernel.NewContext(), prompt: "symkernel> "}
}

func (r *repl) isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (r *repl) run() error {
	if r.isInteractive() {
		return r.runInteractive()
	}
	return r.runPiped()
}

func (r *repl) runInteractive() error {
	rl := readline.NewInstance()
	rl.SetPrompt(r.prompt)
	for {
		line, err := rl.Readline()
		if err != nil {
			return err
		}
		r.processLine(strings.TrimSpace(line))
	}
}

func (r *repl) runPiped() error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		r.processLine(strings.TrimSpace(scanner.Text()))
	}
	return scanner.Err()
}

func (r *repl) processLine(line string) {
	if line == "" {
		return
	}
	if r.handleCommand(line) {
		return
	}
	h, err := symkernel.Parse(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return
	}
	result, err := symkernel.EvaluateWithContext(symkernel.Simplify(h), r.ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluate error: %v\n", err)
		return
	}
	fmt.Println(symkernel.FormatSimple(result))
}

func (r *repl) handleCommand(line string) bool {
	switch {
	case line == "quit" || line == "exit":
		os.Exit(0)
	case line == "clear":
		r.ctx = symkernel.NewContext()
		return true
	case strings.HasPrefix(line, ":let "):
		return r.handleLet(strings.TrimPrefix(line, ":let "))
	case line == ":domain on":
		r.ctx = r.ctx.WithDomainCheck(true)
		return true
	case line == ":domain off":
		r.ctx = r.ctx.WithDomainCheck(false)
		return true
	}
	return false
}

// handleLet parses "name = expr" and binds name in the context for
// subsequent substitution, e.g. ":let x = 3".
func (r *repl) handleLet(rest string) bool {
	parts := strings.SplitN(rest, "=", 2)
	if len(parts) != 2 {
		fmt.Fprintln(os.Stderr, "usage: :let name = expr")
		return true
	}
	name := strings.TrimSpace(parts[0])
	h, err := symkernel.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return true
	}
	r.ctx = r.ctx.WithVariable(name, symkernel.Simplify(h))
	return true
}
