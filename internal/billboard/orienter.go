// Package billboard keeps a set of flat panels facing the viewer.
package billboard

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/LiamKula/ICS-685-3D/internal/scene"
)

// minDistSq is the squared-distance floor below which a panel is treated
// as coincident with the viewpoint and skipped for the frame.
const minDistSq = 1e-8

// OffsetDegrees is the fixed rotational correction applied after the
// look rotation, in the panel's local frame. It compensates for mesh
// authoring orientation and is constant for the orienter's lifetime.
type OffsetDegrees struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// Orienter rotates each registered panel toward the viewpoint once per
// frame. It holds non-owning references; the scene owns the nodes.
type Orienter struct {
	sc        *scene.Scene
	anchor    *scene.Node
	viewpoint *scene.Node
	panels    []*scene.Node
	offset    mgl64.Quat
}

func New(sc *scene.Scene, anchor *scene.Node, off OffsetDegrees) *Orienter {
	return &Orienter{
		sc:     sc,
		anchor: anchor,
		offset: mgl64.AnglesToQuat(
			mgl64.DegToRad(off.Pitch),
			mgl64.DegToRad(off.Yaw),
			mgl64.DegToRad(off.Roll),
			mgl64.XYZ,
		),
	}
}

// SetViewpoint binds an explicit facing target; when left unset, Init
// falls back to the scene's primary viewpoint.
func (o *Orienter) SetViewpoint(n *scene.Node) { o.viewpoint = n }

// SetPanels replaces the panel collection.
func (o *Orienter) SetPanels(ps []*scene.Node) { o.panels = ps }

// Panels returns the current panel collection.
func (o *Orienter) Panels() []*scene.Node { return o.panels }

// Init resolves the setup-time defaults: an unset viewpoint binds to the
// scene's primary viewpoint, and an empty panel collection is populated
// from the anchor's direct children. Auto-fill only triggers here when
// the collection is empty.
func (o *Orienter) Init() {
	if o.viewpoint == nil && o.sc != nil {
		o.viewpoint = o.sc.PrimaryViewpoint()
	}
	if len(o.panels) == 0 && o.anchor != nil && len(o.anchor.Children()) > 0 {
		o.AutoFill()
	}
}

// AutoFill replaces the panel collection with the anchor's current
// direct children, in their existing order. Exposed for tooling; safe to
// call at any point on the frame loop.
func (o *Orienter) AutoFill() {
	if o.anchor == nil {
		return
	}
	kids := o.anchor.Children()
	o.panels = append(o.panels[:0:0], kids...)
}

// Update orients every panel toward the viewpoint. Nil panels and panels
// coincident with the viewpoint are skipped for the frame; with no
// viewpoint the whole update is skipped. No other side effects.
func (o *Orienter) Update() {
	if o.viewpoint == nil {
		return
	}
	eye := o.viewpoint.Position()
	for _, p := range o.panels {
		if p == nil {
			continue
		}
		to := eye.Sub(p.Position())
		if to.Dot(to) < minDistSq {
			continue
		}
		look := scene.LookRotation(to, scene.WorldUp)
		p.SetRotation(look.Mul(o.offset))
	}
}
