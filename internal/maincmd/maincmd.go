// Package maincmd implements the CLI command dispatch for the lox binary,
// grounded on the teacher's own internal/maincmd: a flag-tagged Cmd struct
// driven by github.com/mna/mainer's Parser, with one exported method per
// subcommand resolved via reflection (buildCmds).
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"

	"github.com/mna/lox/internal/config"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<command>] [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<path>]
       %[1]s <command> <path>
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

With no arguments, starts an interactive REPL. With a single path
argument, runs that file.

The <command> can be one of:
       tokenize <path>           Run only the scanner and print the
                                 resulting tokens.
       parse <path>              Run the scanner and parser and print
                                 the syntax tree of each top-level
                                 expression statement (other
                                 statements print their node type).
       resolve <path>            Run the scanner, parser, and resolver
                                 and print the resolved variable scope
                                 distances.
       run <path>                Run a file (the default when a single
                                 non-flag argument is given).

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// exitError lets a subcommand request a specific process exit code
// without the Cmd dispatch layer having to know what went wrong.
type exitError struct {
	code mainer.ExitCode
}

func (e *exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

var (
	errCompileFailed = &exitError{code: 65}
	errRuntimeFailed = &exitError{code: 70}
)

// Cmd holds parsed CLI flags and dispatches to the matching subcommand.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	Config config.Config

	args     []string
	cmdName  string
	cmdFn    func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)      { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	commands := buildCmds(c)

	if len(c.args) == 0 {
		c.cmdName, c.cmdFn = "repl", c.Repl
		return nil
	}

	if fn, ok := commands[c.args[0]]; ok {
		if len(c.args[1:]) == 0 {
			return fmt.Errorf("%s: a file path is required", c.args[0])
		}
		c.cmdName, c.cmdFn = c.args[0], fn
		c.args = c.args[1:]
		return nil
	}

	if len(c.args) == 1 {
		c.cmdName, c.cmdFn = "run", c.Run
		return nil
	}
	return errors.New("too many arguments")
}

// Main is the entry point invoked from cmd/lox/main.go.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: strings.ToUpper(binName) + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid configuration: %s\n", err)
		return mainer.Failure
	}
	c.Config = cfg

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds mirrors the teacher's reflection-based dispatch: any exported
// method matching the (ctx, stdio, []string) error shape becomes a
// subcommand named after its lowercased method name.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
