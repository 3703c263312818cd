package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/foundation/multimap"
)

// nodeids allocates Graphviz node ids for labels. Equal labels share an id.
type nodeids struct {
	idTable map[string]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[string]int),
		max:     1,
	}
}

func (ids nodeids) find(label string) int {
	return ids.idTable[label]
}

func (ids *nodeids) alloc(label string) (id int, isNew bool) {
	if id := ids.find(label); id > 0 {
		return id, false
	}
	ids.idTable[label] = ids.max
	ids.max++
	return ids.max - 1, true
}

// Dot outputs m in Graphviz DOT format, for debugging purposes. Keys and
// values are nodes, every value of a bucket is connected to its key by an
// edge. Values with equal printed form share a node, which makes values
// held by more than one key visible.
func Dot[K comparable, V any](w io.Writer, m *multimap.Map[K, V]) error {
	var nodes, edges strings.Builder
	keyids, valueids := newtable(), newtable()
	for k, bucket := range m.Buckets() {
		kid, _ := keyids.alloc(fmt.Sprint(k))
		fmt.Fprintf(&nodes, "\"k%d\" [label=%q %s];\n", kid, fmt.Sprint(k), keyStyles)
		for _, v := range bucket {
			label := fmt.Sprint(v)
			vid, isNew := valueids.alloc(label)
			if isNew {
				fmt.Fprintf(&nodes, "\"v%d\" [label=%q %s];\n", vid, label, valueStyles)
			}
			fmt.Fprintf(&edges, "\"k%d\" -> \"v%d\";\n", kid, vid)
		}
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodes.String())
	write(edges.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("dump DOT: %v", err)
	}
	return err
}

const (
	keyStyles   = ",style=filled,fillcolor=\"#9ab3d1\",shape=box"
	valueStyles = ",shape=ellipse"
)
