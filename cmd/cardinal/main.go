// Command cardinal is the interactive and scripted front end for the
// term-rewriting kernel: a REPL over readline when attached to a
// terminal, a line-at-a-time evaluator over a pipe otherwise, and a
// one-shot file or expression runner via flags.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	var (
		prompt = flag.String("prompt", "cardinal> ", "REPL prompt string")
		cmd    = flag.String("c", "", "evaluate a single expression and exit")
		help   = flag.Bool("help", false, "show usage")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	repl := NewREPL()
	repl.SetPrompt(*prompt)

	if *cmd != "" {
		if err := repl.ExecuteString(*cmd); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if args := flag.Args(); len(args) > 0 {
		if err := repl.ExecuteFile(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "error executing file: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := repl.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "repl error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println(`cardinal — a term-rewriting symbolic kernel

Usage:
  cardinal [flags] [file]

Flags:
  -prompt string   set the REPL prompt (default "cardinal> ")
  -c expression    evaluate a single expression and exit
  -help            show this message

Examples:
  cardinal                                  start the interactive REPL
  cardinal -c '(sameq (Plus 1 2) 3)'        evaluate and exit
  cardinal script.cas                       run a script file`)
}
