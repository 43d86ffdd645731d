// Command arith is the arith expression engine demo CLI.
//
// It builds the sample expression ((2 + x) * 5) through the engine's
// interning pool, evaluates it under a context assembled from flags,
// a stored context, and interactive prompts, and prints the result.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"nickandperla.net/arith/pkg/arith"
)

func main() {
	var (
		dbPath  = flag.String("db", "", "SQLite database path for named contexts")
		ctxName = flag.String("ctx", "", "Load the named context from the database")
		vars    = flag.String("vars", "", "Inline bindings, e.g. \"x=3,y=4\"")
		save    = flag.String("save", "", "Persist the effective context under this name")
		list    = flag.Bool("list", false, "List stored context names and exit")
	)

	flag.Parse()

	// Build options
	opts := []arith.Option{}
	if *dbPath != "" {
		opts = append(opts, arith.WithSQLiteStore(*dbPath))
	}

	engine := arith.New(opts...)
	defer engine.Close()

	if *list {
		names, err := engine.Contexts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing contexts: %v\n", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	// Assemble the evaluation context: stored context first, then
	// inline bindings on top.
	ctx := make(arith.Context)
	if *ctxName != "" {
		loaded, err := engine.LoadContext(*ctxName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading context: %v\n", err)
			os.Exit(1)
		}
		if loaded == nil {
			fmt.Fprintf(os.Stderr, "No context named %q\n", *ctxName)
			os.Exit(1)
		}
		for name, value := range loaded {
			ctx[name] = value
		}
	}
	if err := parseBindings(*vars, ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -vars: %v\n", err)
		os.Exit(1)
	}

	// The sample expression: (2 + x) * 5.
	sum := engine.Binary(arith.Add, engine.Constant(2), engine.Variable("x"))
	root := engine.Binary(arith.Mul, sum, engine.Constant(5))
	defer root.Release()

	// Prompt for bindings the context is missing, when interactive.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		stdin := bufio.NewReader(os.Stdin)
		for _, name := range engine.Vars(root) {
			if _, ok := ctx[name]; ok {
				continue
			}
			fmt.Printf("%s = ", name)
			line, err := stdin.ReadString('\n')
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
				os.Exit(1)
			}
			value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Not an integer: %q\n", strings.TrimSpace(line))
				os.Exit(1)
			}
			ctx[name] = value
		}
	}

	if *save != "" {
		if err := engine.SaveContext(*save, ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving context: %v\n", err)
			os.Exit(1)
		}
	}

	value, err := engine.Evaluate(root, ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s = %d\n", engine.Render(root), value)
}

// parseBindings parses "x=3,y=4" into ctx.
func parseBindings(s string, ctx arith.Context) error {
	if s == "" {
		return nil
	}
	for _, pair := range strings.Split(s, ",") {
		name, raw, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" {
			return fmt.Errorf("bad binding %q (want name=value)", pair)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("bad value in %q: %w", pair, err)
		}
		ctx[strings.TrimSpace(name)] = value
	}
	return nil
}
