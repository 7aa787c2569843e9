package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lmorg/readline/v4"

	"github.com/client9/termrw"
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/evaluator"
)

// REPL is a read-eval-print loop over the kernel, accumulating
// multi-line input until it parses as a complete expression.
type REPL struct {
	evaluator *evaluator.Evaluator
	input     io.Reader
	output    io.Writer
	prompt    string
}

func NewREPL() *REPL {
	return &REPL{
		evaluator: termrw.NewEvaluator(),
		input:     os.Stdin,
		output:    os.Stdout,
		prompt:    "cardinal> ",
	}
}

func NewREPLWithIO(input io.Reader, output io.Writer) *REPL {
	r := NewREPL()
	r.input = input
	r.output = output
	return r
}

func (r *REPL) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *REPL) isInteractive() bool {
	if r.input == os.Stdin {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
	return false
}

// Run starts the loop, choosing an interactive readline session over a
// terminal or a plain line scanner over a pipe/file.
func (r *REPL) Run() error {
	if r.isInteractive() {
		return r.runInteractive()
	}
	return r.runScripted()
}

func (r *REPL) runInteractive() error {
	rl := readline.NewInstance()
	var currentExpr strings.Builder
	var emptyLineCount int

	for {
		if currentExpr.Len() == 0 {
			rl.SetPrompt(r.prompt)
		} else {
			rl.SetPrompt("... ")
		}
		line, err := rl.Readline()
		if err != nil {
			return err
		}

		if line == "" {
			if currentExpr.Len() == 0 {
				continue
			}
			emptyLineCount++
			if emptyLineCount >= 2 {
				fmt.Fprintf(r.output, "Expression abandoned.\n")
				currentExpr.Reset()
				emptyLineCount = 0
				continue
			}
		} else {
			emptyLineCount = 0
			if line == ":reset" || line == ":clear" {
				if currentExpr.Len() > 0 {
					fmt.Fprintf(r.output, "Expression abandoned.\n")
					currentExpr.Reset()
				}
				continue
			}
			if currentExpr.Len() == 0 && r.handleSpecialCommand(line) {
				continue
			}
			if currentExpr.Len() > 0 {
				currentExpr.WriteString("\n")
			}
			currentExpr.WriteString(line)
		}

		if currentExpr.Len() > 0 && r.tryProcessExpression(currentExpr.String()) {
			currentExpr.Reset()
		}
	}
}

func (r *REPL) runScripted() error {
	scanner := bufio.NewScanner(r.input)
	var currentExpr strings.Builder

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if currentExpr.Len() > 0 {
			currentExpr.WriteString("\n")
		}
		currentExpr.WriteString(line)

		if r.tryProcessExpression(currentExpr.String()) {
			currentExpr.Reset()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	if currentExpr.Len() > 0 {
		fmt.Fprintf(r.output, "Error: unterminated expression at end of input\n")
	}
	return nil
}

// tryProcessExpression parses and evaluates expr, returning false
// (meaning: keep accumulating lines) only when the parse failure looks
// like an unclosed list rather than a genuine error.
func (r *REPL) tryProcessExpression(expr string) bool {
	result, err := termrw.Parse(expr)
	if err != nil {
		if strings.Contains(err.Error(), "unterminated list") {
			return false
		}
		fmt.Fprintf(r.output, "Parse error: %v\n", err)
		return true
	}
	value := r.evaluator.Eval(result)
	fmt.Fprintf(r.output, "%s\n", value.String())
	return true
}

func (r *REPL) handleSpecialCommand(line string) bool {
	switch line {
	case "quit", "exit":
		os.Exit(0)
		return true
	case "help":
		r.printHelp()
		return true
	default:
		return false
	}
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.output, `
cardinal — a term-rewriting symbolic kernel

Commands:
  quit, exit     - exit the REPL
  help           - show this message
  :reset, :clear - abandon the current multi-line expression

Enter any S-expression; unbalanced parens continue on the next line.
`)
}

// ExecuteString parses and evaluates a single expression, printing its
// result.
func (r *REPL) ExecuteString(expr string) error {
	result, err := termrw.Parse(expr)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	value := r.evaluator.Eval(result)
	fmt.Fprintf(r.output, "%s\n", value.String())
	return nil
}

// ExecuteFile runs a script file through the Get builtin's semantics:
// parse every top-level expression, evaluate in order, print only the
// final result.
func (r *REPL) ExecuteFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	exprs, err := termrw.ParseAll(string(data))
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	var result core.Expr = core.SymNull
	for _, e := range exprs {
		result = r.evaluator.Eval(e)
	}
	fmt.Fprintf(r.output, "%s\n", result.String())
	return nil
}
