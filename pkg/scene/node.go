package scene

import (
	"strings"

	"github.com/matzehuels/handoff/pkg/geom"
)

// NodeType is the closed set of node kinds the extractor distinguishes.
type NodeType int

const (
	// TypeOther is any leaf or container that is not one of the kinds below.
	TypeOther NodeType = iota
	// TypeGroup is a pure grouping container without geometry of its own.
	TypeGroup
	// TypeComponent is a reusable component definition.
	TypeComponent
	// TypeInstance is an instance of a component.
	TypeInstance
)

var typeNames = map[NodeType]string{
	TypeOther:     "OTHER",
	TypeGroup:     "GROUP",
	TypeComponent: "COMPONENT",
	TypeInstance:  "INSTANCE",
}

// ParseNodeType maps a document type string onto a NodeType. Unknown strings
// map to TypeOther.
func ParseNodeType(s string) NodeType {
	switch strings.ToUpper(s) {
	case "GROUP":
		return TypeGroup
	case "COMPONENT":
		return TypeComponent
	case "INSTANCE":
		return TypeInstance
	default:
		return TypeOther
	}
}

// String returns the canonical document spelling of the type.
func (t NodeType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return typeNames[TypeOther]
}

// IsComponentLike reports whether nodes of this type are tagged as components.
func (t NodeType) IsComponentLike() bool {
	switch t {
	case TypeComponent, TypeInstance:
		return true
	case TypeGroup, TypeOther:
		return false
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *NodeType) UnmarshalText(b []byte) error {
	*t = ParseNodeType(string(b))
	return nil
}

// BoundingBox is an absolute box in canvas coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is one element of a document tree.
type Node struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        NodeType     `json:"type"`
	Visible     *bool        `json:"visible,omitempty"`
	BoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Children    []Node       `json:"children,omitempty"`
}

// IsVisible reports whether the node is drawn. Nodes are visible unless
// explicitly marked otherwise.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Origin is the document origin subtracted from absolute coordinates.
type Origin struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Document is a node tree together with its origin and, optionally, the page
// used to normalize measurements.
type Document struct {
	Name   string     `json:"name,omitempty"`
	Origin Origin     `json:"origin"`
	Page   *geom.Page `json:"page,omitempty"`
	Nodes  []Node     `json:"nodes"`
}

// Rects extracts the document's rectangles. See [Extract].
func (d *Document) Rects() ([]geom.Rect, error) {
	return Extract(d.Nodes, d.Origin)
}
