// Package tree renders node hierarchies as box-drawing trees. Labels
// may carry ANSI styling; width math and truncation are escape-aware.
package tree

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/outslept/whimsy/colors"
	"github.com/outslept/whimsy/runes"
)

// Node is a labeled tree node.
type Node struct {
	Label    string
	Children []*Node
}

// New creates a node with the given children.
func New(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// Add appends child nodes and returns n for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Glyphs is the set of connector strings used to draw branches. All
// four should render at the same visible width so columns line up.
type Glyphs struct {
	Branch   string // connects a child that has siblings below it
	Last     string // connects the final child
	Vertical string // continuation under an open branch
	Space    string // continuation under a closed branch
}

// DefaultGlyphs draws with light box-drawing characters.
var DefaultGlyphs = Glyphs{
	Branch:   "├─ ",
	Last:     "└─ ",
	Vertical: "│  ",
	Space:    "   ",
}

// Renderer renders nodes into an indented tree string.
type Renderer struct {
	Glyphs      Glyphs
	MaxWidth    int            // visible width limit per line, 0 = unlimited
	Suffix      string         // appended to truncated labels
	BranchStyle lipgloss.Style // applied to connector glyphs
	LabelStyle  lipgloss.Style // applied to labels
}

// NewRenderer returns a renderer with default glyphs and muted
// branches.
func NewRenderer() Renderer {
	return Renderer{
		Glyphs:      DefaultGlyphs,
		Suffix:      "…",
		BranchStyle: lipgloss.NewStyle().Foreground(colors.ColorMuted),
	}
}

// Render returns the tree rooted at root as a string, one node per
// line, terminated by a newline. The caller prints it.
func (r Renderer) Render(root *Node) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.label(root.Label, 0))
	sb.WriteByte('\n')
	r.renderChildren(&sb, root, "")
	return sb.String()
}

func (r Renderer) renderChildren(sb *strings.Builder, n *Node, prefix string) {
	for i, child := range n.Children {
		connector := r.Glyphs.Branch
		continuation := r.Glyphs.Vertical
		if i == len(n.Children)-1 {
			connector = r.Glyphs.Last
			continuation = r.Glyphs.Space
		}

		used := runes.VisibleLength(prefix) + runes.VisibleLength(connector)
		sb.WriteString(r.BranchStyle.Render(prefix + connector))
		sb.WriteString(r.label(child.Label, used))
		sb.WriteByte('\n')

		r.renderChildren(sb, child, prefix+continuation)
	}
}

// label styles a node label, truncating it first so the full line
// stays within MaxWidth. used is the visible width already consumed
// by the branch prefix.
func (r Renderer) label(label string, used int) string {
	if r.MaxWidth > 0 {
		budget := r.MaxWidth - used
		if budget < 0 {
			budget = 0
		}
		label = runes.Truncate(label, budget, r.Suffix)
	}
	return r.LabelStyle.Render(label)
}
