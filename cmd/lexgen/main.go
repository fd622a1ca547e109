// Command lexgen drives the lexer core over a rule file and an input
// file, printing one token per line (spec §6 CLI surface). Grounded on
// nex/main.go's flag.FlagSet-based CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"burslex/internal/alphabet"
	"burslex/internal/diagnostics"
	"burslex/internal/lexdriver"
	"burslex/internal/lexrules"
)

func main() {
	verbose := flag.Bool("v", false, "emit construction diagnostics to stderr")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: lexgen [-v] <rules-file> <input-file>")
		os.Exit(2)
	}
	rulesPath, inputPath := flag.Arg(0), flag.Arg(1)

	sink := diagnostics.Sink(diagnostics.NopSink{})
	if *verbose {
		sink = diagnostics.NewLogrusSink(nil)
	}

	rulesSrc, err := os.ReadFile(rulesPath)
	dieErr(err, "lexgen: reading rules file")
	inputSrc, err := os.ReadFile(inputPath)
	dieErr(err, "lexgen: reading input file")

	rules, err := lexrules.Parse(string(rulesSrc))
	dieErr(err, "lexgen: parsing rules")

	a := alphabet.New()
	d, err := lexrules.Compile(a, rules)
	dieErr(err, "lexgen: compiling rules")
	sink.Note("compiled %d rules into %d DFA states", len(rules), len(d.Nodes))

	drv := lexdriver.New(d, lexdriver.NewStream(string(inputSrc)))
	for {
		tok, err := drv.Next()
		if err != nil {
			fmt.Println("ERR")
			return
		}
		fmt.Printf("%s: `%s`\n", tok.Tag, tok.Text)
		if tok.Tag == "EOF" || drv.AtEOF() {
			return
		}
	}
}

func dieErr(err error, msg string) {
	if err != nil {
		log.Fatalln(msg+":", err)
	}
}
