package tileset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// The YAML document mirrors the Definition structure, one entry per object
// set, keyed by set number:
//
//	1:
//	  name: Plains
//	  spans:
//	    - {first: 0x00, last: 0x5f, length: 3}
//	    - {first: 0x60, last: 0x7f, length: 4, axis: width}
//
// Unlisted axis means none. Every set from 0 to 11 must appear and cover
// all 256 ids, the same rule NewTable enforces.

type yamlSpan struct {
	First  uint8  `yaml:"first"`
	Last   uint8  `yaml:"last"`
	Length int    `yaml:"length"`
	Axis   string `yaml:"axis"`
}

type yamlSet struct {
	Name  string     `yaml:"name"`
	Spans []yamlSpan `yaml:"spans"`
}

// LoadTable reads a shape table definition from a YAML document. It is the
// escape hatch for ROM hacks that rewrite the game's generator tables.
func LoadTable(r io.Reader) (*Table, error) {
	var doc map[int]yamlSet
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("tileset: parsing definition: %w", err)
	}

	var defs [Count]Definition
	for set := 0; set < Count; set++ {
		ys, ok := doc[set]
		if !ok {
			return nil, fmt.Errorf("tileset: definition is missing set %d", set)
		}

		def := Definition{Name: ys.Name}
		for _, s := range ys.Spans {
			axis, err := parseAxis(s.Axis)
			if err != nil {
				return nil, fmt.Errorf("tileset: set %d: %w", set, err)
			}
			def.Spans = append(def.Spans, Span{
				First: s.First,
				Last:  s.Last,
				Shape: Shape{ByteLength: s.Length, Axis: axis},
			})
		}
		defs[set] = def
	}

	return NewTable(defs)
}

func parseAxis(s string) (Axis, error) {
	switch s {
	case "", "none":
		return AxisNone, nil
	case "height":
		return AxisHeight, nil
	case "width":
		return AxisWidth, nil
	default:
		return AxisNone, fmt.Errorf("unknown axis %q", s)
	}
}
