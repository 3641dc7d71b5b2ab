// Command rpn is an interactive stack-based calculator/controller shell:
// a REPL over pkg/rpn, optionally wired to the simulated CNC controller in
// internal/machinestub.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/elh/rpn/internal/machinestub"
	"github.com/elh/rpn/internal/rpnconfig"
	"github.com/elh/rpn/pkg/rpn"
)

func main() {
	configPath := flag.String("config", "", "path to an rpn.yaml config file")
	machineFlag := flag.Bool("machine", false, "register the simulated machine word set")
	flag.Parse()

	cfg := &rpnconfig.Config{Prompt: rpnconfig.DefaultPrompt}
	if *configPath != "" {
		loaded, err := rpnconfig.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *machineFlag {
		cfg.Machine = true
	}

	in := rpn.NewInterpreter(
		rpn.WithOutput(os.Stdout),
		rpn.WithLogger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "rpn: "+format+"\n", args...)
		}),
	)

	if cfg.Machine {
		machinestub.Register(in, &machinestub.Machine{})
	}

	for _, v := range cfg.Push {
		if v == float64(int64(v)) {
			in.Stack.Push(rpn.NewInteger(int64(v)))
		} else {
			in.Stack.Push(rpn.NewDouble(v))
		}
	}

	for _, path := range cfg.Startup {
		if res := in.ParseFile(path); res != rpn.ResultOK {
			fmt.Fprintf(os.Stderr, "rpn: %s: %s\n", path, in.Status())
			os.Exit(1)
		}
	}

	for _, path := range flag.Args() {
		if res := in.ParseFile(path); res != rpn.ResultOK {
			fmt.Fprintf(os.Stderr, "rpn: %s: %s\n", path, in.Status())
			os.Exit(1)
		}
	}

	runREPL(in, cfg.Prompt)
}
