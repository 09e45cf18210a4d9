// Package cli is an interactive shell over a string-keyed B-tree.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/btree-query-bench/bmark/index/btree"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
)

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    *btree.BTree[string]
}

func NewCli(s *bufio.Scanner, out io.Writer, t *btree.BTree[string]) *Cli {
	return &Cli{scanner: s, out: out, tree: t}
}

// Start runs the read-eval loop until EXIT or end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

// Seed inserts n random words and returns how many were new.
func (c *Cli) Seed(n int) int {
	added := 0
	for i := 0; i < n; i++ {
		if c.tree.Insert(faker.Word() + faker.Word()) {
			added++
		}
	}
	return added
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B-Tree CLI (t=%d)

Available Commands:
  INSERT <key>... Insert keys into the B-Tree
  DEL <key>       Remove a key from the B-Tree
  GET <key>       Look a key up
  DUMP            Print the tree level by level
  DOT <file>      Write the tree as a Graphviz graph
  SEED <n>        Insert n random words
  CHECK           Verify the tree invariants
  STATS           Print size and height
  HELP            Print this message
  EXIT            Terminate this session
`, c.tree.Degree())
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput executes one command line and reports whether the
// session goes on.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		errColor.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "insert", "set":
		c.processInsertCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "dump":
		c.printTree()
	case "dot":
		c.processDotCommand(fields[1:])
	case "seed":
		c.processSeedCommand(fields[1:])
	case "check":
		c.processCheckCommand()
	case "stats":
		infoColor.Fprintf(c.out, "keys: %d  height: %d  t: %d\n", c.tree.Len(), c.tree.Height(), c.tree.Degree())
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: INSERT <key>...")
		return
	}
	for _, k := range args {
		if !c.tree.Insert(k) {
			infoColor.Fprintf(c.out, "Key %q already present.\n", k)
		}
	}
	c.printTree()
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>")
		return
	}
	err := c.tree.Delete(args[0])
	switch {
	case errors.Is(err, btree.ErrEmptyTree):
		errColor.Fprintln(c.out, "Tree is empty.")
		return
	case errors.Is(err, btree.ErrKeyNotFound):
		errColor.Fprintln(c.out, "Key not found.")
		return
	case err != nil:
		errColor.Fprintln(c.out, err)
		return
	}
	c.printTree()
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	x, i, ok := c.tree.Search(args[0])
	if !ok {
		errColor.Fprintln(c.out, "Key not found.")
		return
	}
	okColor.Fprintf(c.out, "Found in node %v at index %d.\n", x.Keys(), i)
}

func (c *Cli) processDotCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DOT <file>")
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		errColor.Fprintln(c.out, err)
		return
	}
	err = c.tree.WriteDOT(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		errColor.Fprintln(c.out, err)
		return
	}
	okColor.Fprintf(c.out, "Wrote %s.\n", args[0])
}

func (c *Cli) processSeedCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SEED <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		errColor.Fprintf(c.out, "Bad count %q.\n", args[0])
		return
	}
	okColor.Fprintf(c.out, "Inserted %d new keys.\n", c.Seed(n))
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Validate(); err != nil {
		errColor.Fprintln(c.out, err)
		return
	}
	okColor.Fprintln(c.out, "OK")
}

func (c *Cli) printTree() {
	if err := c.tree.Dump(c.out); err != nil {
		errColor.Fprintln(c.out, err)
	}
}
