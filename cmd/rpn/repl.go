package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/elh/rpn/pkg/rpn"
)

// runREPL reads lines and feeds each to in.Parse, printing the resulting
// status on any non-ok Result. It uses a raw-mode line reader on a real
// terminal (so Ctrl+C/Ctrl+D behave as an interactive shell's should) and
// falls back to line-buffered input otherwise — piped scripts, redirected
// files, tests.
func runREPL(in *rpn.Interpreter, prompt string) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		runLineREPL(in, prompt, os.Stdin)
		return
	}

	oldState, err := term.MakeRaw(int(fd))
	if err != nil {
		runLineREPL(in, prompt, os.Stdin)
		return
	}
	defer term.Restore(int(fd), oldState)

	for {
		fmt.Print(prompt)
		line, eof := readLineRaw(int(fd))
		if eof {
			fmt.Print("\r\n")
			return
		}
		evalLine(in, line)
	}
}

// runLineREPL is the non-TTY path: bufio.Scanner over r, one line at a
// time, no editing.
func runLineREPL(in *rpn.Interpreter, prompt string, r *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		evalLine(in, scanner.Text())
	}
}

func evalLine(in *rpn.Interpreter, line string) {
	if res := in.Parse(line); res != rpn.ResultOK {
		fmt.Printf("%s: %s\r\n", res, in.Status())
	}
}

// readLineRaw reads one line of raw-mode terminal input with basic editing
// (backspace, Ctrl+C to abort the line, Ctrl+D on an empty line to signal
// EOF). Grounded on the fuller editor in _examples/nperez-losp's repl.go;
// this shell has no multi-line or Alt-key input to support, so it keeps
// only what a single-line RPN prompt needs.
func readLineRaw(fd int) (line string, eof bool) {
	var buf []byte
	one := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(one)
		if err != nil || n == 0 {
			return string(buf), true
		}
		switch b := one[0]; b {
		case 0x04: // Ctrl+D
			if len(buf) == 0 {
				return "", true
			}
		case 0x03: // Ctrl+C
			fmt.Print("^C\r\n")
			return "", false
		case 0x0d, 0x0a: // Enter
			fmt.Print("\r\n")
			return string(buf), false
		case 0x7f, 0x08: // Backspace
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Print("\b \b")
			}
		default:
			if b >= 0x20 && b < 0x7f {
				buf = append(buf, b)
				os.Stdout.Write(one)
			}
		}
	}
}
