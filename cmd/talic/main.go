// Command talic parses Tali source files and prints their syntax trees.
//
// Usage:
//
//	talic [flags] file.tali
//	talic -repl
//
// With no file argument talic starts an interactive session.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/tali-lang/tali/internal/syntax"
)

const version = "0.1.0"

var (
	emitTokens  = flag.Bool("emit-tokens", false, "print the token stream and exit")
	emitAST     = flag.Bool("emit-ast", false, "print the syntax tree after parsing")
	astFormat   = flag.String("ast-format", "text", "syntax tree output format: text or json")
	repl        = flag.Bool("repl", false, "start an interactive session")
	showVersion = flag.Bool("version", false, "print version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: talic [flags] [file.tali]\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println("talic", version)
		return
	}
	if *astFormat != "text" && *astFormat != "json" {
		fmt.Fprintf(os.Stderr, "talic: unknown -ast-format %q\n", *astFormat)
		os.Exit(2)
	}

	if *repl || flag.NArg() == 0 {
		os.Exit(runREPL())
	}
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	os.Exit(runFile(flag.Arg(0)))
}

func runFile(path string) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "talic: %v\n", err)
		return 1
	}
	defer f.Close()

	errCount := 0
	if *emitTokens {
		s := syntax.NewScanner(path, f, func(line, col uint32, msg string) {
			errCount++
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, line, col, msg)
		})
		for {
			s.Next()
			fmt.Printf("%s\t%s\t%q\n", s.Pos(), s.Token(), s.Literal())
			if s.Token().IsEOF() {
				break
			}
		}
		if errCount > 0 {
			return 1
		}
		return 0
	}

	p := syntax.NewParser(path, f, func(pos syntax.Pos, msg string) {
		errCount++
		fmt.Fprintf(os.Stderr, "%s: %s\n", pos, msg)
	})
	prog := p.Parse()
	if prog == nil || errCount > 0 {
		return 1
	}

	if *emitAST {
		if *astFormat == "json" {
			if err := syntax.FprintJSON(os.Stdout, prog); err != nil {
				fmt.Fprintf(os.Stderr, "talic: %v\n", err)
				return 1
			}
		} else {
			syntax.Fprint(os.Stdout, prog)
		}
	}
	return 0
}

// isIncomplete reports whether the parse failed only because input ended
// inside a statement, meaning the interactive session should keep
// reading continuation lines.
func isIncomplete(err error) bool {
	switch e := err.(type) {
	case *syntax.UnterminatedBlockError:
		return true
	case *syntax.UnexpectedTokenError:
		return e.Actual.IsEOF()
	}
	return false
}

func runREPL() int {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, ".talic_history")
		if f, err := os.Open(histPath); err == nil {
			rl.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Printf("talic %s (Ctrl-D to exit)\n", version)

	var buf strings.Builder
	for {
		prompt := ">>> "
		if buf.Len() > 0 {
			prompt = "... "
		}
		input, err := rl.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			buf.Reset()
			continue
		}
		if err != nil {
			// io.EOF: done
			break
		}
		if strings.TrimSpace(input) == "" && buf.Len() == 0 {
			continue
		}
		rl.AppendHistory(input)

		buf.WriteString(input)
		buf.WriteString("\n")
		src := buf.String()

		// Quiet probe: keep reading while the statement is unfinished.
		probe := syntax.NewParser("repl", strings.NewReader(src), nil)
		if probe.Parse() == nil && isIncomplete(probe.FirstError()) {
			continue
		}
		buf.Reset()

		p := syntax.NewParser("repl", strings.NewReader(src), func(pos syntax.Pos, msg string) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", pos, msg)
		})
		if prog := p.Parse(); prog != nil {
			syntax.Fprint(os.Stdout, prog)
		}
	}
	fmt.Println()

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			rl.WriteHistory(f)
			f.Close()
		}
	}
	return 0
}
