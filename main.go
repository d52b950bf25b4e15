package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jcorbin/gostax/internal/fileinput"
)

func main() {
	ctx := context.Background()

	var (
		timeout    time.Duration
		trace      bool
		expr       string
		configPath string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&expr, "e", "", "evaluate one line and exit")
	flag.StringVar(&configPath, "config", "", "load limits from a yaml file")
	flag.Parse()

	opts := []Option{
		WithInput(fileinput.NamedReader("stdin", os.Stdin)),
		WithOutput(os.Stdout),
	}
	if configPath != "" {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, cfg)
	}
	if trace {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
		opts = append(opts, WithLogf(func(mess string, args ...interface{}) {
			logger.Debug().Msgf(mess, args...)
		}))
	}
	session := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if expr != "" {
		out, err := session.Eval(ctx, expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if out != "" {
			fmt.Println(out)
		}
		return
	}

	if err := session.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}
