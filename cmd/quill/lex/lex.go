/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lex

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/quill-lang/quill/pkg/common/parse"
	"github.com/quill-lang/quill/pkg/diagnostic"
	"github.com/quill-lang/quill/pkg/repl"
	"github.com/quill-lang/quill/pkg/source"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "lex [files...]",
	Short: "Tokenize source files and print the token stream",
	Args:  cobra.MinimumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)
		output := viper.GetString("quill.output")
		stats := viper.GetBool("quill.stats")

		mgr := source.NewManager()
		writer := repl.NewOutputWriter(os.Stdout, output)

		sawErrors := false
		for _, path := range args {
			id, err := mgr.AddFile(path)
			if err != nil {
				log.Fatal().Err(err).Msg("unable to open source file")
			}
			buffer := mgr.Buffer(id)

			bag := diagnostic.NewBag()
			start := time.Now()
			listing := repl.Scan(buffer, bag)
			elapsed := time.Since(start)

			writer.Write(listing)
			printDiagnostics(buffer, bag)

			if bag.HasErrors() {
				sawErrors = true
			}

			if stats {
				fmt.Printf("%s: %s tokens from %s in %s\n",
					buffer.Name,
					humanize.Comma(int64(len(listing.Tokens))),
					humanize.Bytes(uint64(len(buffer.Contents))),
					elapsed,
				)
			}
		}

		if sawErrors {
			os.Exit(1)
		}
	},
}

// printDiagnostics renders each collected diagnostic with a caret
// under the offending byte of its source line.
func printDiagnostics(buffer *source.Buffer, bag *diagnostic.Bag) {
	for _, d := range bag.Diagnostics() {
		line, col := buffer.Position(d.Pos)

		sourceError := parse.NewSourceError(
			parse.Location{Start: col - 1, End: col},
			d.Severity.String(),
			fmt.Sprintf("%s:%d:%d: %s", buffer.Name, line, col, d.Message),
		)
		fmt.Fprint(os.Stderr, sourceError.FormatError(buffer.Line(line)))
	}
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of the token stream [csv, json, text]")
	Command.Flags().Bool("stats", false, "Print token and byte counts after lexing")

	// Bind flags to viper
	viper.BindPFlag("quill.output", Command.Flags().Lookup("output"))
	viper.BindPFlag("quill.stats", Command.Flags().Lookup("stats"))
}
