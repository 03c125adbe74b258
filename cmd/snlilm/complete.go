package main

import (
	"fmt"
	"strings"
)

var commands = []string{
	"preprocess",
	"stat",
	"import",
	"export",
	"query",
	"bash",
	"version",
	"help",
}

var commandFlags = map[string][]string{
	"preprocess": {"-in", "-out", "-prefix", "-keep-bracket", "-quiet"},
	"stat":       {"-in", "-prefix", "-keep-bracket", "-format", "-no-color", "-quiet"},
	"import":     {"-from", "-to", "-prefix", "-quiet"},
	"export":     {"-from", "-to", "-prefix"},
	"query":      {"-keep-bracket"},
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	// the script separates its own arguments with --
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	for _, c := range getCompletions(args) {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) < 2 {
		return nil
	}

	// args[0] is the binary name from COMP_WORDS[0]
	commandIndex := 1
	cursorIndex := len(args) - 1
	lastWord := args[cursorIndex]

	candidates := commands
	if cursorIndex > commandIndex {
		candidates = commandFlags[args[commandIndex]]
	}

	var completions []string
	for _, c := range candidates {
		if strings.HasPrefix(c, lastWord) {
			completions = append(completions, c)
		}
	}
	return completions
}
