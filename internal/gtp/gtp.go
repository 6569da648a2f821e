// Package gtp implements the line-oriented controller protocol named
// in spec.md §6, dispatching commands to an engine.Engine. The
// dispatcher shape — a name-to-handler map, a request/response pair,
// success/error constructors and a trailing-blank-line response
// format — follows skybrian-Gongo/gongo_gtp.go; the handlers
// themselves are rewritten against the Engine façade instead of the
// teacher's GoRobot interface.
package gtp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/haigo/gongo/internal/engine"
	"github.com/haigo/gongo/internal/sgf"
	"github.com/haigo/gongo/internal/telemetry"
)

const programName = "gongo"

var wordRegexp = regexp.MustCompile(`\S+`)

// Dispatcher drives an engine.Engine through GTP commands read from an
// io.Reader and writes protocol responses to an io.Writer.
type Dispatcher struct {
	Engine   *engine.Engine
	Log      logr.Logger
	Recorder *telemetry.Recorder

	handlers map[string]handlerFunc
}

type request struct {
	args []string
}

type response struct {
	text    string
	success bool
}

func success(text string) response { return response{text: text, success: true} }
func failure(text string) response { return response{text: text, success: false} }

func (r response) String() string {
	prefix := "="
	if !r.success {
		prefix = "?"
	}
	return prefix + " " + r.text + "\n\n"
}

type handlerFunc func(d *Dispatcher, req request) response

// NewDispatcher builds a Dispatcher with the full command table wired
// against eng.
func NewDispatcher(eng *engine.Engine, log logr.Logger, recorder *telemetry.Recorder) *Dispatcher {
	d := &Dispatcher{Engine: eng, Log: log, Recorder: recorder}
	d.handlers = map[string]handlerFunc{
		"protocol_version": func(*Dispatcher, request) response { return success("2") },
		"name":             func(*Dispatcher, request) response { return success(programName) },
		"version":          func(*Dispatcher, request) response { return success("1.0") },
		"known_command":    handleKnownCommand,
		"list_commands":    handleListCommands,
		"quit":             func(*Dispatcher, request) response { return success("") },
		"boardsize":        handleBoardSize,
		"clear_board":      handleClearBoard,
		"komi":             handleKomi,
		"fixed_handicap":   handleFixedHandicap,
		"play":             handlePlay,
		"genmove":          handleGenMove,
		"undo":             handleUndo,
		"loadsgf":          handleLoadSGF,
		"savesgf":          handleSaveSGF,
		"showboard":        handleShowBoard,
		"stats":            handleStats,
	}
	return d
}

// Run reads commands from in until "quit" is handled or in is
// exhausted, writing each response to out. It returns nil on a clean
// quit or EOF, and a non-nil error only for an I/O failure on in.
func (d *Dispatcher) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words := wordRegexp.FindAllString(line, -1)
		cmd, args := words[0], words[1:]

		handler, ok := d.handlers[cmd]
		if !ok {
			d.Log.V(1).Info("unknown command", "command", cmd)
			fmt.Fprint(out, failure("unknown command"))
			continue
		}

		resp := handler(d, request{args: args})
		fmt.Fprint(out, resp)

		if cmd == "quit" {
			return nil
		}
	}
	return scanner.Err()
}

func handleKnownCommand(d *Dispatcher, req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	_, ok := d.handlers[req.args[0]]
	return success(fmt.Sprintf("%v", ok))
}

func handleListCommands(d *Dispatcher, req request) response {
	if len(req.args) != 0 {
		return failure("wrong number of arguments")
	}
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return success(strings.Join(names, "\n"))
}

func handleBoardSize(d *Dispatcher, req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	size, err := strconv.Atoi(req.args[0])
	if err != nil {
		return failure("unacceptable size")
	}
	if err := d.Engine.SetBoardSize(size); err != nil {
		return failure("unacceptable size")
	}
	return success("")
}

func handleClearBoard(d *Dispatcher, req request) response {
	if len(req.args) != 0 {
		return failure("wrong number of arguments")
	}
	if err := d.Engine.ClearBoard(); err != nil {
		return failure(err.Error())
	}
	return success("")
}

func handleKomi(d *Dispatcher, req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	komi, err := strconv.ParseFloat(req.args[0], 64)
	if err != nil {
		return failure("syntax error")
	}
	d.Engine.SetKomi(komi)
	return success("")
}

func handleFixedHandicap(d *Dispatcher, req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	k, err := strconv.Atoi(req.args[0])
	if err != nil {
		return failure("syntax error")
	}
	points, err := d.Engine.FixedHandicap(k)
	if err != nil {
		return failure(err.Error())
	}
	vertices := make([]string, len(points))
	for i, p := range points {
		vertices[i] = engine.FormatVertex(p)
	}
	return success(strings.Join(vertices, " "))
}

func handlePlay(d *Dispatcher, req request) response {
	if len(req.args) != 2 {
		return failure("wrong number of arguments")
	}
	color, ok := engine.ParseColor(req.args[0])
	if !ok {
		return failure("invalid color")
	}
	vertex, err := engine.ParseVertex(req.args[1], d.Engine.BoardSize())
	if err != nil {
		return failure("invalid coordinate")
	}
	if err := d.Engine.Play(color, vertex); err != nil {
		return failure("illegal move")
	}
	return success("")
}

func handleGenMove(d *Dispatcher, req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	color, ok := engine.ParseColor(req.args[0])
	if !ok {
		return failure("invalid color")
	}
	point, stats, err := d.Engine.GenMove(color)
	if err != nil {
		return failure(err.Error())
	}
	if d.Recorder != nil {
		d.Recorder.Observe(context.Background(), stats.Move, stats.Depth, stats.NodeCount, stats.Duration.Seconds())
	}
	if point.IsPass() {
		return success("pass")
	}
	return success(engine.FormatVertex(point))
}

func handleUndo(d *Dispatcher, req request) response {
	if len(req.args) != 0 {
		return failure("wrong number of arguments")
	}
	if err := d.Engine.Undo(); err != nil {
		return failure("cannot undo")
	}
	return success("")
}

func handleLoadSGF(d *Dispatcher, req request) response {
	if len(req.args) < 1 || len(req.args) > 2 {
		return failure("wrong number of arguments")
	}
	data, err := readFile(req.args[0])
	if err != nil {
		return failure("cannot load file")
	}
	nodes, err := sgf.Parse(string(data))
	if err != nil {
		return failure("cannot load file")
	}
	moveNumber := 0
	if len(req.args) == 2 {
		moveNumber, err = strconv.Atoi(req.args[1])
		if err != nil {
			return failure("syntax error")
		}
	}
	if err := sgf.Apply(d.Engine, nodes, moveNumber); err != nil {
		return failure("cannot load file")
	}
	return success("")
}

func handleSaveSGF(d *Dispatcher, req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	if err := sgf.Save(req.args[0], d.Engine); err != nil {
		return failure("cannot save file")
	}
	return success("")
}

func handleShowBoard(d *Dispatcher, req request) response {
	if len(req.args) != 0 {
		return failure("wrong number of arguments")
	}
	return success(d.Engine.Render())
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func handleStats(d *Dispatcher, req request) response {
	if len(req.args) != 0 {
		return failure("wrong number of arguments")
	}
	if d.Recorder == nil {
		return success("telemetry disabled")
	}
	return success(d.Recorder.LastSummary())
}
