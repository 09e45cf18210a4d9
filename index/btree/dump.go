package btree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dump writes a level-order listing of the tree, one line per level and
// one bracketed group per node:
//
//	L0: [Q]
//	L1: [L N] [V]
func (bt *BTree[K]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	level := []*Node[K]{bt.root}
	for depth := 0; len(level) > 0; depth++ {
		fmt.Fprintf(bw, "L%d:", depth)

		var next []*Node[K]
		for _, x := range level {
			bw.WriteString(" [")
			for i, k := range x.keys {
				if i > 0 {
					bw.WriteByte(' ')
				}
				fmt.Fprint(bw, k)
			}
			bw.WriteByte(']')
			next = append(next, x.children...)
		}
		bw.WriteByte('\n')

		level = next
	}

	return bw.Flush()
}

// String returns the Dump output.
func (bt *BTree[K]) String() string {
	var b strings.Builder
	_ = bt.Dump(&b)
	return b.String()
}

// WriteDOT renders the tree as a Graphviz digraph, one record per node.
// Render it with e.g. `dot -Tpng tree.dot -o tree.png`.
func (bt *BTree[K]) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph BTree {")
	fmt.Fprintln(bw, "  graph [ranksep=0.8, nodesep=0.5, bgcolor=\"#ffffff\", rankdir=TB];")
	fmt.Fprintln(bw, "  node [shape=none, fontname=\"Helvetica\", fontsize=10];")
	fmt.Fprintln(bw, "  edge [arrowsize=0.8, color=\"#444444\"];")

	var counter int
	var export func(x *Node[K]) string
	export = func(x *Node[K]) string {
		name := fmt.Sprintf("node%d", counter)
		counter++

		header, color := "INTERNAL", "#DAE8FC"
		if x.leaf {
			header, color = "LEAF", "#D5E8D4"
		}

		var label strings.Builder
		label.WriteString(`<<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0" CELLPADDING="4">`)
		fmt.Fprintf(&label, `<TR><TD COLSPAN="%d" BGCOLOR="%s"><B>%s</B><BR/><FONT POINT-SIZE="8">%d/%d keys</FONT></TD></TR><TR>`,
			2*len(x.keys)+1, color, header, len(x.keys), 2*bt.t-1)
		for i, k := range x.keys {
			fmt.Fprintf(&label, `<TD PORT="f%d" BGCOLOR="#E1F5FE"> </TD><TD BGCOLOR="#FFFFFF"><B>%s</B></TD>`, i, htmlEscape(fmt.Sprint(k)))
		}
		fmt.Fprintf(&label, `<TD PORT="f%d" BGCOLOR="#E1F5FE"> </TD></TR></TABLE>>`, len(x.keys))

		fmt.Fprintf(bw, "  %s [label=%s];\n", name, label.String())

		for i, c := range x.children {
			child := export(c)
			fmt.Fprintf(bw, "  %s:f%d -> %s;\n", name, i, child)
		}
		return name
	}
	export(bt.root)

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

var dotEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func htmlEscape(s string) string { return dotEscaper.Replace(s) }
