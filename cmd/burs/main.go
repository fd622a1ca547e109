// Command burs drives the BURS matcher core over a grammar file and an
// operator-tree file, printing the chosen cover as a diagnostic table to
// stdout (spec §6 CLI surface). Grounded on nex/main.go's
// flag.FlagSet-based CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"burslex/internal/burs"
	"burslex/internal/bursgrammar"
	"burslex/internal/diagnostics"
	"burslex/internal/optreefile"
)

func main() {
	goal := flag.String("goal", "goal", "non-terminal the match is driven from")
	variant := flag.String("variant", "table", "matcher variant: naive, table, or rep")
	verbose := flag.Bool("v", false, "emit construction diagnostics to stderr")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: burs [-goal NAME] [-variant naive|table|rep] <grammar-file> <op-tree-file>")
		os.Exit(2)
	}
	grammarPath, treePath := flag.Arg(0), flag.Arg(1)

	sink := diagnostics.Sink(diagnostics.NopSink{})
	if *verbose {
		sink = diagnostics.NewLogrusSink(nil)
	}

	grammarSrc, err := os.ReadFile(grammarPath)
	dieErr(err, "burs: reading grammar file")
	treeSrc, err := os.ReadFile(treePath)
	dieErr(err, "burs: reading op-tree file")

	rules, err := bursgrammar.Parse(string(grammarSrc))
	dieErr(err, "burs: parsing grammar")
	sink.Note("parsed %d rules", len(rules.List))
	tree, err := optreefile.Parse(string(treeSrc))
	dieErr(err, "burs: parsing operator tree")
	sink.Note("parsed %d operator-tree nodes", len(tree.Nodes()))

	lookup, root := buildMatcher(*variant, rules, tree)
	dumpStateTable(sink, root)

	err = burs.Apply(tree, lookup, *goal, func(ev burs.Event, n *burs.OpNode, r *burs.Rule, g string) {
		if ev != burs.Before {
			return
		}
		fmt.Printf("node %d (goal %s): %s\n", n.Index, g, r.String())
	})
	dieErr(err, "burs: matching")
}

// buildMatcher runs the requested variant over tree and returns a lookup
// usable with burs.Apply plus the root node's final State (for the
// diagnostic dump).
func buildMatcher(variant string, rules *burs.Rules, tree *burs.OpTree) (burs.StateLookup, *burs.State) {
	switch variant {
	case "naive":
		m := burs.NewNaiveMatcher(rules)
		root := m.MatchTree(tree)
		return m.Lookup(), root
	case "rep":
		rt := burs.BuildRepTable(rules)
		m := burs.NewRepTableMatcher(rt)
		root := m.MatchTree(tree)
		return m.Lookup(), root
	default:
		tb := burs.BuildTable(rules)
		m := burs.NewTableMatcher(tb)
		root := m.MatchTree(tree)
		return m.Lookup(), root
	}
}

func dumpStateTable(sink diagnostics.Sink, root *burs.State) {
	headers := []string{"non-terminal", "cost"}
	var rows [][]string
	for _, name := range root.Names() {
		_, cost := root.GetMatch(name)
		rows = append(rows, []string{name, fmt.Sprintf("%d", cost)})
	}
	sink.Table("root state", headers, rows)
	for _, row := range rows {
		fmt.Printf("%-20s cost=%s\n", row[0], row[1])
	}
}

func dieErr(err error, msg string) {
	if err != nil {
		log.Fatalln(msg+":", err)
	}
}
