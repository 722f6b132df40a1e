package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"csgx"
	"csgx/internal/config"
)

var interactive bool

func runFiles(_ *cobra.Command, args []string) error {
	limits, err := config.Load(configPath)
	if err != nil {
		return err
	}

	intp := csgx.NewInterpreter(os.Stdout)
	intp.MaxOps = limits.MaxOps
	intp.MaxOperandStackDepth = limits.MaxOperandStackDepth

	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("csgx: %w", err)
		}
		err = intp.Execute(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("csgx: %s: %w", name, err)
		}
	}

	if interactive {
		repl(intp, limits.Prompt)
	}
	return nil
}

// repl reads lines from stdin and feeds them to intp one at a time.
// An engine error is reported and the loop continues: the execution
// stack and procedure builder are left exactly as the failing line
// left them, so the next line can inspect or recover from the error.
func repl(intp *csgx.Interpreter, prompt string) {
	showPrompt := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if showPrompt {
			fmt.Fprint(os.Stdout, prompt)
		}
		if !scanner.Scan() {
			return
		}
		if err := intp.ReplLine(scanner.Text()); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
