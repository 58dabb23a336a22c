/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/quill-lang/quill/pkg/diagnostic"
	"github.com/quill-lang/quill/pkg/repl"
	"github.com/quill-lang/quill/pkg/scanner"
	"github.com/quill-lang/quill/pkg/source"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt that tokenizes each entered line",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)
		output := viper.GetString("quill.output")

		if err := readlinePrompt(output); err != nil {
			log.Fatal().Err(err).Msg("unable to start prompt")
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of the token stream [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("quill.output", Command.Flags().Lookup("output"))
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func makeCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{}
	for _, kw := range scanner.Keywords() {
		items = append(items, readline.PcItem(kw))
	}
	items = append(items, readline.PcItem("exit"))
	return readline.NewPrefixCompleter(items...)
}

func readlinePrompt(output string) error {
	completer := makeCompleter()

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// Configure output writer
	writer := repl.NewOutputWriter(os.Stdout, output)

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		if strings.ToUpper(line) == "EXIT" {
			os.Exit(0)
		}

		mgr := source.NewManager()
		buffer := mgr.Buffer(mgr.AddBuffer("repl", line))

		bag := diagnostic.NewBag()
		writer.Write(repl.Scan(buffer, bag))

		for _, d := range bag.Diagnostics() {
			fmt.Printf("%s: %s (offset %d)\n", d.Severity.String(), d.Message, d.Pos)
		}
	}

	return nil
}
