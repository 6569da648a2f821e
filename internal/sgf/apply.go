package sgf

import (
	"fmt"

	"github.com/haigo/gongo/internal/engine"
)

// sgfPoint decodes an SGF coordinate pair ("aa".."ss", one letter per
// axis, 'a' == 0): distinct from GTP vertex notation, which skips 'I'
// and numbers rows from the bottom. An empty value denotes a pass.
func sgfPoint(value string) (engine.Point, error) {
	if value == "" {
		return engine.PassPoint, nil
	}
	if len(value) != 2 {
		return engine.Point{}, fmt.Errorf("sgf: invalid coordinate %q", value)
	}
	i := int(value[0] - 'a')
	j := int(value[1] - 'a')
	if i < 0 || i >= engine.MaxBoardSize || j < 0 || j >= engine.MaxBoardSize {
		return engine.Point{}, fmt.Errorf("sgf: invalid coordinate %q", value)
	}
	return engine.Point{I: i, J: j}, nil
}

// Apply walks the main line of nodes in document order, applying SZ,
// AB/AW setup stones and B/W moves to eng. stopAtMoveNumber, if
// positive, stops application after that many B/W moves have been
// played (loadsgf's optional move-number argument); 0 applies every
// main-line node.
func Apply(eng *engine.Engine, nodes []*Node, stopAtMoveNumber int) error {
	played := 0
	for _, n := range nodes {
		if !n.IsMain {
			continue
		}
		for _, prop := range n.Properties {
			switch prop.Name {
			case "SZ":
				size, err := parseInt(prop.Values[0])
				if err != nil {
					return fmt.Errorf("sgf: SZ: %w", err)
				}
				if err := eng.SetBoardSize(size); err != nil {
					return fmt.Errorf("sgf: SZ %d: %w", size, err)
				}
			case "KO":
				// Recognized, no behavior: the engine only implements
				// simple ko, so there is no rule variant to toggle.
			case "AB":
				if err := setupStones(eng, engine.Black, prop.Values); err != nil {
					return err
				}
			case "AW":
				if err := setupStones(eng, engine.White, prop.Values); err != nil {
					return err
				}
			case "B", "W":
				if stopAtMoveNumber > 0 && played >= stopAtMoveNumber {
					return nil
				}
				color := engine.Black
				if prop.Name == "W" {
					color = engine.White
				}
				p, err := sgfPoint(prop.Values[0])
				if err != nil {
					return err
				}
				if err := eng.Play(color, p); err != nil {
					return fmt.Errorf("sgf: move %d (%s): %w", played+1, prop.Name, err)
				}
				played++
			}
		}
	}
	return nil
}

func setupStones(eng *engine.Engine, color engine.Color, values []string) error {
	for _, v := range values {
		p, err := sgfPoint(v)
		if err != nil {
			return err
		}
		if p.IsPass() {
			continue
		}
		eng.Board().SetStone(color, p.I, p.J)
	}
	return nil
}

func parseInt(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}
