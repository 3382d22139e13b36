// Package scene provides the small slice of scene-graph functionality the
// presentation runtime needs from its host engine: nodes with a world
// position and rotation, direct-child enumeration, and a designated
// primary viewpoint.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects one world-space coordinate of a node's position.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis maps "x"/"y"/"z" to an Axis; anything else is AxisX.
func ParseAxis(s string) Axis {
	switch s {
	case "y", "Y":
		return AxisY
	case "z", "Z":
		return AxisZ
	default:
		return AxisX
	}
}

// Node is an entity with a world transform and an ordered child list.
type Node struct {
	name     string
	pos      mgl64.Vec3
	rot      mgl64.Quat
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{name: name, rot: mgl64.QuatIdent()}
}

func (n *Node) Name() string { return n.name }

func (n *Node) Position() mgl64.Vec3     { return n.pos }
func (n *Node) SetPosition(p mgl64.Vec3) { n.pos = p }

func (n *Node) Rotation() mgl64.Quat     { return n.rot }
func (n *Node) SetRotation(q mgl64.Quat) { n.rot = q }

// AxisValue reads a single coordinate of the node's world position.
func (n *Node) AxisValue(a Axis) float64 { return n.pos[int(a)] }

// SetAxisValue writes a single coordinate, leaving the others fixed.
func (n *Node) SetAxisValue(a Axis, v float64) { n.pos[int(a)] = v }

// AddChild appends c to the node's direct children.
func (n *Node) AddChild(c *Node) { n.children = append(n.children, c) }

// Children returns the direct children in insertion order. The returned
// slice is the node's own; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// Scene owns the node set and designates the primary viewpoint that
// components fall back to when none is configured explicitly.
type Scene struct {
	primary *Node
}

func New() *Scene { return &Scene{} }

func (s *Scene) SetPrimaryViewpoint(n *Node) { s.primary = n }
func (s *Scene) PrimaryViewpoint() *Node     { return s.primary }

// WorldUp is the up reference used for look rotations.
var WorldUp = mgl64.Vec3{0, 1, 0}

const parallelEps = 1e-6

// LookRotation builds a rotation whose forward (+Z) axis points along dir
// and whose up axis tracks the given up reference. dir need not be
// normalized but must be non-zero. When dir is near-parallel to up an
// alternate reference is substituted so the result stays finite.
func LookRotation(dir, up mgl64.Vec3) mgl64.Quat {
	f := dir.Normalize()
	if math.Abs(f.Dot(up)) > 1-parallelEps {
		up = mgl64.Vec3{0, 0, 1}
		if math.Abs(f.Dot(up)) > 1-parallelEps {
			up = mgl64.Vec3{1, 0, 0}
		}
	}
	r := up.Cross(f).Normalize()
	u := f.Cross(r)
	m := mgl64.Mat4{
		r[0], r[1], r[2], 0,
		u[0], u[1], u[2], 0,
		f[0], f[1], f[2], 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(m)
}
