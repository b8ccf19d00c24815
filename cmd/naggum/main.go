package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/naggum/ast"
	"github.com/xiam/naggum/parser"
)

const (
	appName     = "naggum"
	historyFile = ".naggum_history"
	promptMain  = "naggum> "
	promptCont  = "...     "
)

var (
	flagRepl     = flag.Bool("repl", false, "start an interactive session")
	flagTree     = flag.Bool("tree", false, "print values as indented trees")
	flagMaxDepth = flag.Int("max-depth", parser.DefaultMaxDepth, "maximum list nesting, 0 for no limit")
	flagVerbose  = flag.Bool("v", false, "trace the reader")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  %s [-tree] [-max-depth n] [-v] [file ...]   Read values from files (stdin if none) and print them.
  %s -repl                                    Start an interactive session.

`, appName, appName)
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(appName + ": ")

	flag.Usage = usage
	flag.Parse()

	opts := []parser.Option{parser.WithMaxDepth(*flagMaxDepth)}
	if *flagVerbose {
		opts = append(opts, parser.WithLogger(log.New(os.Stderr, "trace: ", 0)))
	}

	if *flagRepl {
		os.Exit(cmdRepl(opts))
	}

	if flag.NArg() == 0 {
		if err := dump(os.Stdout, os.Stdin, *flagTree, opts...); err != nil {
			log.Fatalf("<stdin>:%v", err)
		}
		return
	}

	status := 0
	for _, name := range flag.Args() {
		if err := dumpFile(os.Stdout, name, *flagTree, opts...); err != nil {
			log.Print(err)
			status = 1
		}
	}
	os.Exit(status)
}

func dumpFile(w io.Writer, name string, tree bool, opts ...parser.Option) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := dump(w, f, tree, opts...); err != nil {
		return fmt.Errorf("%s:%w", name, err)
	}
	return nil
}

// dump prints every value read from r, one per line.
func dump(w io.Writer, r io.Reader, tree bool, opts ...parser.Option) error {
	p := parser.New(r, opts...)
	for {
		v, err := p.Read()
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
		if tree {
			ast.Fprint(w, v)
			continue
		}
		fmt.Fprintf(w, "%s\n", ast.Encode(v))
	}
}

func cmdRepl(opts []parser.Option) int {
	fmt.Printf("%s reader\nCtrl+C cancels input, Ctrl+D exits.\n", appName)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readComplete(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		values, err := parser.Parse([]byte(src), opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		for _, v := range values {
			ast.Print(v)
		}
	}
}

// readComplete keeps prompting until the collected lines no longer end
// inside an open list or string.
func readComplete(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			log.Printf("prompt: %v", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !incomplete(b.String()) {
			return b.String(), true
		}
	}
}

// incomplete reports whether src ends before an open list or string is
// closed.
func incomplete(src string) bool {
	_, err := parser.Parse([]byte(src))
	return errors.Is(err, parser.ErrUnexpectedEOF)
}
