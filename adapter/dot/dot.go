// Package dot renders an argument graph and a labelling as Graphviz DOT
// source. It is an optional adapter external to the core: it reads the
// graph and labelling once, builds a string, and returns — it never keeps
// a pointer into either after Render returns.
//
// Grounded on _examples/other_examples/4bda0e02_dcjones-mk__graph.go.go's
// graph.visualize (fmt.Fprintf "digraph" + quoted-node arcs) for the DOT
// emission shape. Node labels wrap long rule text with
// rosed.Edit(...).Wrap(40).
package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arglab/defarg/internal/argument"
	"github.com/arglab/defarg/internal/label"
	"github.com/dekarrin/rosed"
)

// Options controls rendering detail. The zero value renders every argument
// with its name and conclusion and colors nodes by label when a Labelling
// is given to Render.
type Options struct {
	// GraphName is the name given to the DOT digraph. Defaults to "args".
	GraphName string

	// ShowRule includes each argument's top rule in its node label in
	// addition to its name and conclusion.
	ShowRule bool
}

// Render builds the DOT source for g, colored according to lab if lab is
// non-nil. It reads g and lab only for the duration of the call and holds
// no reference to either in its return value.
func Render(g *argument.Graph, lab *label.Labelling, opts Options) string {
	name := opts.GraphName
	if name == "" {
		name = "args"
	}

	args := append([]*argument.Argument(nil), g.Arguments()...)
	sort.Slice(args, func(i, j int) bool { return args[i].Name() < args[j].Name() })

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", quote(name))
	fmt.Fprintln(&b, "    rankdir=LR;")

	for _, a := range args {
		fmt.Fprintf(&b, "    %s [%s];\n", quote(a.Name()), nodeAttrs(a, lab, opts))
	}
	for _, a := range args {
		for _, victim := range a.Attacks() {
			fmt.Fprintf(&b, "    %s -> %s;\n", quote(a.Name()), quote(victim.Name()))
		}
	}

	fmt.Fprintln(&b, "}")
	return b.String()
}

func nodeAttrs(a *argument.Argument, lab *label.Labelling, opts Options) string {
	text := a.Name() + "\\n" + a.Conclusion().String()
	if opts.ShowRule {
		wrapped := rosed.Edit(a.Proof().Rule().String()).Wrap(40).String()
		text += "\\n" + strings.ReplaceAll(wrapped, "\n", "\\n")
	}

	attrs := fmt.Sprintf(`label=%s, shape=box`, quote(text))
	if lab != nil {
		attrs += fmt.Sprintf(`, style=filled, fillcolor=%s`, quote(fillColor(lab.LabelFor(a))))
	}
	return attrs
}

func fillColor(labelValue string) string {
	switch labelValue {
	case "IN":
		return "lightgreen"
	case "OUT":
		return "lightpink"
	case "UNDEC":
		return "lightgray"
	default:
		return "white"
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
