package main

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
	With().Timestamp().Str("component", "FpsDisplay").Logger()

func panicIf(err error) {
	if err != nil {
		log.Panic().Err(err).Send()
	}
}

func formatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64) + "%"
}
