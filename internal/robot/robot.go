// Package robot drives one self-play game to completion against a
// single engine.Engine, alternating genmove between colors. Grounded
// on skybrian-Gongo's robot.go/gongo_robot.go self-play driver shape
// (a Config struct, a constructor, a play loop with a move cap); the
// move-choice algorithm is replaced with the core's fixed-depth
// minimax (spec.md §4.6) instead of the teacher's random-sampling
// estimator, since that is the search this repository's core
// implements.
package robot

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/haigo/gongo/internal/engine"
	"github.com/haigo/gongo/internal/openingbook"
)

// Config configures one self-play game.
type Config struct {
	BoardSize int
	MaxMoves  int // 0 means engine.MoveHistoryMax
	Depth     int
	Log       logr.Logger
	Book      *openingbook.Book // nil disables book priming
}

// Robot plays one game against itself.
type Robot struct {
	cfg    Config
	engine *engine.Engine
}

// New builds a Robot with a freshly allocated board.
func New(cfg Config) (*Robot, error) {
	if cfg.MaxMoves <= 0 {
		cfg.MaxMoves = engine.MoveHistoryMax
	}
	eng, err := engine.NewEngine(cfg.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("robot: %w", err)
	}
	if cfg.Depth > 0 {
		if err := eng.SetSearchDepth(cfg.Depth); err != nil {
			return nil, err
		}
	}
	return &Robot{cfg: cfg, engine: eng}, nil
}

// Engine exposes the underlying engine, e.g. for rendering after the
// game ends.
func (r *Robot) Engine() *engine.Engine { return r.engine }

// PlayGame alternates genmove between Black and White until both pass
// consecutively or MaxMoves is reached, returning the number of moves
// played.
func (r *Robot) PlayGame() (int, error) {
	toMove := engine.Black
	consecutivePasses := 0
	played := 0

	for played < r.cfg.MaxMoves {
		if move, ok := r.bookMove(toMove); ok {
			if err := r.engine.Play(toMove, move); err != nil {
				return played, fmt.Errorf("robot: book move %d: %w", played+1, err)
			}
			consecutivePasses = 0
		} else {
			point, _, err := r.engine.GenMove(toMove)
			if err != nil {
				return played, fmt.Errorf("robot: genmove %d: %w", played+1, err)
			}
			if point.IsPass() {
				consecutivePasses++
			} else {
				consecutivePasses = 0
			}
		}
		played++
		r.cfg.Log.V(2).Info("move played", "number", played, "color", toMove.String())

		if consecutivePasses >= 2 {
			break
		}
		toMove = toMove.Opponent()
	}

	return played, nil
}

func (r *Robot) bookMove(toMove engine.Color) (engine.Point, bool) {
	if r.cfg.Book == nil {
		return engine.Point{}, false
	}
	hash := openingbook.Hash(r.engine.Board(), toMove)
	point, err := r.cfg.Book.Lookup(hash)
	if err != nil {
		return engine.Point{}, false
	}
	return point, true
}
