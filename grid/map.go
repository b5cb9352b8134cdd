package grid

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rogpeppe/gridpath/graph"
)

// ErrInvalidLayout is returned, wrapped, when a map layout cannot be parsed.
var ErrInvalidLayout = errors.New("invalid map layout")

// Map is a grid read from a map file, together with the
// start and goal markers found in it.
type Map struct {
	Name     string
	Grid     *Grid
	Start    graph.Coord
	HasStart bool
	Goal     graph.Coord
	HasGoal  bool
}

// Config is the JSON form of a map.
type Config struct {
	Name string `json:"name"`
	// Layout holds one string per row, using the characters
	// described in Parse.
	Layout []string `json:"layout"`
	// Penalties maps additional single-character cell types to
	// the cost of entering them.
	Penalties map[string]float64 `json:"penalties,omitempty"`
}

// Parse reads a map in text form: one line per row, one character
// per cell. The characters are:
//
//	.      open cell
//	#      blocked cell
//	0-9    open cell with that penalty cost
//	S      start cell, open
//	G      goal cell, open
//
// Trailing blank lines are ignored. All rows must be the same width.
func Parse(r io.Reader) (*Map, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read map: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return fromLayout(rows, nil)
}

// ParseConfig reads a map in JSON form; see Config.
func ParseConfig(r io.Reader) (*Map, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("cannot parse map config: %w", err)
	}
	penalties := make(map[rune]float64)
	for k, v := range cfg.Penalties {
		c, size := utf8.DecodeRuneInString(k)
		if size != len(k) || size == 0 {
			return nil, fmt.Errorf("%w: penalty key %q is not a single character", ErrInvalidLayout, k)
		}
		if c == '#' {
			return nil, fmt.Errorf("%w: cannot set a penalty for blocked cells", ErrInvalidLayout)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative penalty %v for %q", ErrInvalidLayout, v, k)
		}
		penalties[c] = v
	}
	m, err := fromLayout(cfg.Layout, penalties)
	if err != nil {
		return nil, err
	}
	m.Name = cfg.Name
	return m, nil
}

// Load reads the map file at path. Files with a .json extension are
// read with ParseConfig, others with Parse. If the map has no name,
// it is named after the file.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parse = ParseConfig
	}
	m, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

func fromLayout(rows []string, penalties map[rune]float64) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidLayout)
	}
	m := &Map{
		Grid: New(width, len(rows)),
	}
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, y, n, width)
		}
		x := 0
		for _, ch := range row {
			c := graph.Coord{X: x, Y: y}
			x++
			if p, ok := penalties[ch]; ok {
				m.Grid.SetPenalty(c, p)
				continue
			}
			switch {
			case ch == '.':
			case ch == '#':
				m.Grid.SetBlocked(c, true)
			case ch >= '0' && ch <= '9':
				m.Grid.SetPenalty(c, float64(ch-'0'))
			case ch == 'S':
				if m.HasStart {
					return nil, fmt.Errorf("%w: more than one start at %v", ErrInvalidLayout, c)
				}
				m.Start, m.HasStart = c, true
			case ch == 'G':
				if m.HasGoal {
					return nil, fmt.Errorf("%w: more than one goal at %v", ErrInvalidLayout, c)
				}
				m.Goal, m.HasGoal = c, true
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at %v", ErrInvalidLayout, ch, c)
			}
		}
	}
	return m, nil
}
