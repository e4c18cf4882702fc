// Interactive console for exploring a sales dataset: load a CSV,
// inspect and clean it, compute statistics, and render charts.
//
// Usage:
//
//	go run ./cmd/repl
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ergochat/readline"
)

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          choicePrompt,
		HistoryFile:     historyPath(),
		HistoryLimit:    200,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	sess := NewSession(rl)
	_ = rl.SetConfig(&readline.Config{
		Prompt:          choicePrompt,
		HistoryFile:     historyPath(),
		HistoryLimit:    200,
		AutoComplete:    &replCompleter{sess: sess},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})

	fmt.Println()
	fmt.Println("Salescope — sales data analysis & visualization")
	fmt.Println()

	for {
		printMenu(sess.out, mainMenu)
		rl.SetPrompt(choicePrompt)
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			break
		}
		n, perr := parseChoice(line, len(mainMenu.options))
		if perr != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", perr)
			continue
		}
		cmd := mainMenu.options[n-1].cmd
		if cmd == cmdExit {
			fmt.Fprintln(sess.out, "Exiting. Goodbye!")
			break
		}
		if err := sess.Dispatch(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	fmt.Println()
}

const choicePrompt = "Enter your choice: "

// prompt prints a label with an optional default and returns the user's
// input (or the default if they press enter).
func prompt(rl *readline.Instance, label, defaultVal string) string {
	if rl == nil {
		return defaultVal
	}
	if defaultVal != "" {
		rl.SetPrompt(fmt.Sprintf("  %s [%s]: ", label, defaultVal))
	} else {
		rl.SetPrompt(fmt.Sprintf("  %s: ", label))
	}
	defer rl.SetPrompt(choicePrompt)
	line, err := rl.ReadLine()
	if err != nil {
		return defaultVal
	}
	val := trimmed(line)
	if val == "" {
		return defaultVal
	}
	return val
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".salescope_history")
}
