// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/regtype/expr"
	"github.com/ezrec/regtype/internal/syncctrl"
)

// demo walks the synchronization control register through its whole-value
// operations and a single bit field, printing the value after each step.
func demo(out io.Writer, reg *syncctrl.Register) {
	data := reg.Data()

	steps := [](struct {
		title  string
		action func()
	}){
		{"clear all bits", data.ClearAllBits},
		{"set all bits", data.SetAllBits},
		{"set defaults", data.SetAllDefaults},
		{"set CE_PLL bit", data.Bits().CE_PLL.Enable},
		{"clear CE_PLL bit", data.Bits().CE_PLL.Disable},
	}

	fmt.Fprintf(out, "%v:\n", reg.Schema().Name())
	fmt.Fprintf(out, "\tregister addr   0x%x\n", reg.Address())
	fmt.Fprintf(out, "\tregister value  0x%x\n", reg.Value())

	for _, step := range steps {
		step.action()
		fmt.Fprintf(out, "%v:\n", step.title)
		fmt.Fprintf(out, "\tregister value  0x%x\n", reg.Value())
	}
}

func main() {
	var value string
	var expression string
	var verbose bool

	flag.StringVar(&value, "s", "", "Initial register value, base 10")
	flag.StringVar(&expression, "e", "", "Expression for the initial register value")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	reg := syncctrl.New()
	reg.Verbose = verbose

	if len(value) != 0 {
		err := reg.Parse(value)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	if len(expression) != 0 {
		err := expr.Apply(reg, expression)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	demo(os.Stdout, reg)
}
