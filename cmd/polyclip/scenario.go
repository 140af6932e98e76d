package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/vatti-sweep/polyclip"
)

// scenario is the decoded shape of a YAML scenario file: a named set
// of subject/clip paths plus the Boolean operation to run over them.
type scenario struct {
	ClipType string      `yaml:"clipType"`
	FillRule string      `yaml:"fillRule"`
	Subjects [][][2]int64 `yaml:"subjects"`
	Clips    [][][2]int64 `yaml:"clips"`
}

func loadScenario(path string) (*scenario, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s scenario
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}

func (s *scenario) toPaths(rings [][][2]int64) polyclip.Paths64 {
	paths := make(polyclip.Paths64, 0, len(rings))
	for _, ring := range rings {
		path := make(polyclip.Path64, 0, len(ring))
		for _, xy := range ring {
			path = append(path, polyclip.Point64{X: xy[0], Y: xy[1]})
		}
		paths = append(paths, path)
	}
	return paths
}

func (s *scenario) clipType() (polyclip.ClipType, error) {
	switch s.ClipType {
	case "intersection":
		return polyclip.Intersection, nil
	case "union":
		return polyclip.Union, nil
	case "difference":
		return polyclip.Difference, nil
	case "xor":
		return polyclip.Xor, nil
	default:
		return polyclip.None, fmt.Errorf("%w: clipType %q", polyclip.ErrInvalidClipType, s.ClipType)
	}
}

func (s *scenario) fillRule() (polyclip.FillRule, error) {
	switch s.FillRule {
	case "", "evenodd":
		return polyclip.EvenOdd, nil
	case "nonzero":
		return polyclip.NonZero, nil
	case "positive":
		return polyclip.Positive, nil
	case "negative":
		return polyclip.Negative, nil
	default:
		return polyclip.EvenOdd, fmt.Errorf("%w: fillRule %q", polyclip.ErrInvalidFillRule, s.FillRule)
	}
}
