// Command gongo runs the engine as a GTP controller, reading commands
// from stdin and writing responses to stdout. Grounded on
// skybrian-Gongo/main.go's shape (parse args, build a robot, run the
// driver loop, report I/O errors to stderr).
package main

import (
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"

	"github.com/haigo/gongo/internal/config"
	"github.com/haigo/gongo/internal/engine"
	"github.com/haigo/gongo/internal/gologger"
	"github.com/haigo/gongo/internal/gtp"
	"github.com/haigo/gongo/internal/telemetry"
)

func main() {
	cfg, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gongo: %v\n", err)
		os.Exit(1)
	}

	log := gologger.New("gongo", cfg.LogVerbosity)

	eng, err := engine.NewEngine(cfg.BoardSize)
	if err != nil {
		log.Error(err, "failed to allocate board")
		os.Exit(1)
	}
	eng.SetKomi(cfg.Komi)
	eng.SetWeights(cfg.Weights())
	if err := eng.SetSearchDepth(cfg.SearchDepth); err != nil {
		log.Error(err, "invalid search depth")
		os.Exit(1)
	}

	meter := otel.GetMeterProvider().Meter("github.com/haigo/gongo")
	recorder, err := telemetry.NewRecorder(meter)
	if err != nil {
		log.Error(err, "failed to initialize telemetry")
		os.Exit(1)
	}

	dispatcher := gtp.NewDispatcher(eng, log, recorder)
	if err := dispatcher.Run(os.Stdin, os.Stdout); err != nil && err != io.EOF {
		log.Error(err, "controller loop exited with error")
		os.Exit(1)
	}
}
