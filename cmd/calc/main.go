package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		consts       []calc.Option
		echo         bool
	)
	addconst := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`constant definitions must be "name=value", not %q`, s)
		}
		nm := strings.TrimSpace(d[0])
		// Constants may be defined in terms of earlier ones.
		v, err := calc.Eval(d[1], consts...)
		if err != nil {
			return fmt.Errorf("setting %s: %w", nm, err)
		}
		opt, err := constopt(nm, v)
		if err != nil {
			return err
		}
		consts = append(consts, opt)
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("const", "name=expr constant definition (any number of times)", addconst)
	flag.BoolVar(&echo, "echo", false, "print postfix sequences")
	flag.Parse()

	var ins []source
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, *f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, source{r: strings.NewReader(arg)})
	}

	c := calculator{
		opts: []calc.Option{calc.Preset(consts...)},
		verb: verb + "\n",
		echo: echo,
		out:  os.Stdout,
		errs: os.Stderr,
	}
	if !c.runAll(ins) {
		os.Exit(1)
	}
}

// constopt creates a constant option, converting the panic for an invalid
// name to an error.
func constopt(name string, v float64) (opt calc.Option, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid constant name %s", strconv.Quote(name))
		}
	}()
	return calc.WithConst(name, v), nil
}

// source is an input of expressions, one per line.
type source struct {
	r io.Reader
	// prompt is printed before reading each line when non-empty.
	prompt string
	// closer, if not nil, is closed once r is exhausted.
	closer io.Closer
}

type calculator struct {
	opts []calc.Option
	verb string
	echo bool
	out  io.Writer
	errs io.Writer
}

// runAll runs each source in order, closing each one that needs it, and
// reports whether every line of every source succeeded.
func (c *calculator) runAll(ins []source) bool {
	ok := true
	for _, in := range ins {
		if !c.run(in) {
			ok = false
		}
		if in.closer != nil {
			if err := in.closer.Close(); err != nil {
				fmt.Fprintln(c.errs, err)
				ok = false
			}
		}
	}
	return ok
}

// run evaluates each non-blank line of in and reports whether all of them
// succeeded.
func (c *calculator) run(in source) bool {
	ok := true
	sc := bufio.NewScanner(in.r)
	for {
		if in.prompt != "" {
			fmt.Fprint(c.out, in.prompt)
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !c.eval(line) {
			ok = false
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(c.errs, err)
		return false
	}
	return ok
}

// eval evaluates one expression and prints its result or error.
func (c *calculator) eval(src string) bool {
	in, err := calc.Tokenize(src, c.opts...)
	if err != nil {
		fmt.Fprintln(c.errs, err)
		return false
	}
	p, err := calc.ToPostfix(in)
	if err != nil {
		fmt.Fprintln(c.errs, err)
		return false
	}
	if c.echo {
		fmt.Fprintf(c.out, "%v : ", p)
	}
	r, err := p.Eval()
	if err != nil {
		if c.echo {
			fmt.Fprintln(c.out)
		}
		fmt.Fprintln(c.errs, err)
		return false
	}
	fmt.Fprintf(c.out, c.verb, r)
	return true
}

func infile(inname string, std bool) (*source, error) {
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return &source{r: in, closer: in}, nil
	case inname == "-", std:
		s := source{r: os.Stdin}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			s.prompt = "> "
		}
		return &s, nil
	}
	return nil, nil
}
