package blocks

import (
	"fmt"
	"io"
	"strings"
)

// ListToDot outputs the internal structure of a List in Graphviz DOT format
// (for debugging purposes).
//
// Every block is drawn as a record node, labelled with its start position and
// its fill state; the list header points to the chain of blocks.
func ListToDot[T any](list *List[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	nodelist, edgelist := "", ""
	nodelist += fmt.Sprintf("\t\"list\" [label=\"%d\" %s];\n", list.Len(), nodeDotStyles(false, false))
	prev := "list"
	for bi, b := range list.blocks {
		ID := fmt.Sprintf("b%d", bi)
		fields := make([]string, 0, b.Cap())
		for _, v := range b.Items() {
			fields = append(fields, dotEscape(fmt.Sprintf("%v", v)))
		}
		for range b.Cap() - b.Len() {
			fields = append(fields, " ")
		}
		label := fmt.Sprintf("@%d|%s", list.positions[bi], strings.Join(fields, "|"))
		open := bi == len(list.blocks)-1
		nodelist += fmt.Sprintf("\t\"%s\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(true, open))
		edgelist += fmt.Sprintf("\t\"%s\" -> \"%s\";\n", prev, ID)
		prev = ID
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isblock bool, highlight bool) string {
	s := ",style=filled"
	if isblock {
		s += ",shape=record"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[2])
	} else if isblock {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[1])
	}
	return s
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`)

func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF"}
