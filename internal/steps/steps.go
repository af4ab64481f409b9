// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package steps numbers the nested steps of an algorithm. Each depth uses
// its own bullet style: decimal, then lowercase letters, then lowercase roman
// numerals, repeating once before the innermost style sticks.
package steps

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// unknownBullet is shown for a step beyond the end of its bullet list.
const unknownBullet = "?"

var (
	decimalBullets = func() []string {
		out := make([]string, 100)
		for i := range out {
			out[i] = strconv.Itoa(i + 1)
		}
		return out
	}()
	alphaBullets = func() []string {
		out := make([]string, 26)
		for i := range out {
			out[i] = string(rune('a' + i))
		}
		return out
	}()
	romanBullets = []string{
		"i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix", "x",
		"xi", "xii", "xiii", "xiv", "xv", "xvi", "xvii", "xviii", "xix", "xx",
		"xxi", "xxii", "xxiii", "xxiv", "xxv",
	}

	bulletsByDepth = [][]string{
		decimalBullets, alphaBullets, romanBullets,
		decimalBullets, alphaBullets, romanBullets,
	}
)

// Label returns the bullet for the step at index, a path of zero-based
// positions from the outermost list inward.
func Label(index []int) string {
	if len(index) == 0 {
		return unknownBullet
	}
	depth := min(len(index)-1, len(bulletsByDepth)-1)
	bullets := bulletsByDepth[depth]
	i := index[len(index)-1]
	if i < 0 || i >= len(bullets) {
		return unknownBullet
	}
	return bullets[i]
}

// Step is one algorithm step with its nested sub-steps. In YAML a step is
// either a plain string or a mapping with text and steps.
type Step struct {
	Text  string `yaml:"text"`
	Steps []Step `yaml:"steps,omitempty"`
}

// UnmarshalYAML accepts a bare scalar as a step without sub-steps.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Text = node.Value
		s.Steps = nil
		return nil
	}
	type plain Step
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = Step(p)
	return nil
}

// Line is one numbered step.
type Line struct {
	Index []int
	Label string
	Text  string
}

// Depth returns the nesting depth of the line, zero for top-level steps.
func (l Line) Depth() int { return len(l.Index) - 1 }

// Number flattens steps into numbered lines in document order.
func Number(steps []Step) []Line {
	var lines []Line
	var walk func(parent []int, steps []Step)
	walk = func(parent []int, steps []Step) {
		for i, s := range steps {
			index := make([]int, len(parent)+1)
			copy(index, parent)
			index[len(parent)] = i
			lines = append(lines, Line{Index: index, Label: Label(index), Text: s.Text})
			walk(index, s.Steps)
		}
	}
	walk(nil, steps)
	return lines
}

// Load reads an algorithm outline from a YAML file holding a list of steps.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading steps %s: %w", path, err)
	}
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parsing steps %s: %w", path, err)
	}
	return steps, nil
}

// Write renders lines as an indented outline.
func Write(w io.Writer, lines []Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s%s. %s\n", strings.Repeat("  ", l.Depth()), l.Label, l.Text); err != nil {
			return err
		}
	}
	return nil
}
