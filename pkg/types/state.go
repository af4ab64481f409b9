// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PaneType identifies what the reference pane is showing.
type PaneType string

const (
	PaneReferences PaneType = "ref"
	PaneSDOs       PaneType = "sdo"
)

// PaneState is the restorable state of the reference pane. A nil *PaneState
// means the pane is closed.
type PaneState struct {
	Type PaneType `json:"type" yaml:"type"`
	ID   string   `json:"id" yaml:"id"`
}

// Snapshot captures the presentation state that survives a navigation.
type Snapshot struct {
	// ID is assigned by the state store.
	ID string `json:"id" yaml:"id"`

	// Session names the slot the snapshot belongs to.
	Session string `json:"session" yaml:"session"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// SearchValue is the text in the search box.
	SearchValue string `json:"search_value" yaml:"search_value"`

	// MenuVisible records whether the menu was open.
	MenuVisible bool `json:"menu_visible" yaml:"menu_visible"`

	// ExpandedPaths lists the expanded TOC items as child-index paths.
	ExpandedPaths [][]int `json:"expanded_paths" yaml:"expanded_paths"`

	// TOCScroll is the scroll offset of the TOC panel.
	TOCScroll int `json:"toc_scroll" yaml:"toc_scroll"`

	// Pane is the reference pane state, nil when closed.
	Pane *PaneState `json:"pane,omitempty" yaml:"pane,omitempty"`
}
