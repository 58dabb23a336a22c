/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/quill-lang/quill/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Serve the lexer as an HTTP endpoint",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		// Initialize the lex server
		srv := server.New(
			logger,
			viper.GetInt("quill.port"),
			viper.GetInt("quill.prom-port"),
		)

		// Serve the lex endpoint
		go srv.ServeLexer()

		// Serve the metrics endpoint
		srv.ServeMetrics()
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Port for the /lex endpoint")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")

	// Bind flags to viper
	viper.BindPFlag("quill.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("quill.prom-port", Command.Flags().Lookup("prom-port"))
}
