package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/lispy"
	"golang.org/x/term"
)

func repl(cfg *Config) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, cfg.Prompt)
	if !cfg.Quiet {
		for _, line := range cfg.Banner {
			fmt.Fprintln(t, line)
		}
	}
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			fmt.Fprintln(t)
			return nil
		}
		if err != nil {
			return err
		}
		if err := lispy.EvalLine(t, "<stdin>", line); err != nil {
			return err
		}
	}
}

func main() {
	var (
		configFile = flag.String("config", "", "YAML config file")
		prompt     = flag.String("prompt", "", "prompt shown by the REPL")
		quiet      = flag.Bool("quiet", false, "do not print the banner")
		expr       = flag.String("e", "", "evaluate `expr` and exit")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("lispy: ")

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *prompt != "" {
		cfg.Prompt = *prompt
	}
	if *quiet {
		cfg.Quiet = true
	}

	if *expr != "" {
		if err := lispy.EvalLine(os.Stdout, "<expr>", *expr); err != nil {
			log.Fatal(err)
		}
		return
	}

	var f *os.File
	name := "<stdin>"

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			if err := repl(cfg); err != nil {
				log.Fatal(err)
			}
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		name = flag.Arg(0)
		f, err = os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if err := lispy.EvalLines(f, os.Stdout, name); err != nil {
		log.Fatal(err)
	}
}
