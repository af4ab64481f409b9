// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Element is one element of a recorded layout. Top and Bottom are document
// offsets, independent of scrolling.
type Element struct {
	Tag          string     `yaml:"tag"`
	ID           string     `yaml:"id,omitempty"`
	Number       string     `yaml:"number,omitempty"`
	Title        string     `yaml:"title,omitempty"`
	Top          float64    `yaml:"top"`
	Bottom       float64    `yaml:"bottom"`
	MarginTop    float64    `yaml:"margin_top,omitempty"`
	MarginBottom float64    `yaml:"margin_bottom,omitempty"`
	Children     []*Element `yaml:"children,omitempty"`
}

// Layout is a recorded document layout with an optional default viewport.
type Layout struct {
	// Viewport is the viewport height the layout was recorded with.
	Viewport float64 `yaml:"viewport,omitempty"`

	// Scroll is the scroll offset the layout was recorded at.
	Scroll float64 `yaml:"scroll,omitempty"`

	Root *Element `yaml:"root"`
}

// LoadLayout reads a YAML layout snapshot.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	if l.Root == nil {
		return nil, fmt.Errorf("layout %s has no root element", path)
	}
	if err := l.Root.validate(); err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return &l, nil
}

func (e *Element) validate() error {
	if e.Bottom < e.Top {
		return fmt.Errorf("element %s#%s: bottom %.0f above top %.0f", e.Tag, e.ID, e.Bottom, e.Top)
	}
	for _, c := range e.Children {
		if c == nil {
			return fmt.Errorf("element %s#%s: empty child", e.Tag, e.ID)
		}
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}

// At returns a Node view of e with the viewport scrolled to scrollY.
func (e *Element) At(scrollY float64) Node {
	return scrolled{el: e, scrollY: scrollY}
}

// Find returns the element with the given id, searching depth-first.
func (e *Element) Find(id string) (*Element, bool) {
	if e.ID == id {
		return e, true
	}
	for _, c := range e.Children {
		if found, ok := c.Find(id); ok {
			return found, true
		}
	}
	return nil, false
}

type scrolled struct {
	el      *Element
	scrollY float64
}

func (s scrolled) Tag() string { return s.el.Tag }
func (s scrolled) ID() string  { return s.el.ID }

func (s scrolled) Children() []Node {
	out := make([]Node, len(s.el.Children))
	for i, c := range s.el.Children {
		out[i] = scrolled{el: c, scrollY: s.scrollY}
	}
	return out
}

func (s scrolled) Rect() Rect {
	return Rect{Top: s.el.Top - s.scrollY, Bottom: s.el.Bottom - s.scrollY}
}

func (s scrolled) Margins() Margins {
	return Margins{Top: s.el.MarginTop, Bottom: s.el.MarginBottom}
}

// ElementOf returns the layout element behind a Node produced by At, or nil
// for other Node implementations.
func ElementOf(n Node) *Element {
	if s, ok := n.(scrolled); ok {
		return s.el
	}
	return nil
}
