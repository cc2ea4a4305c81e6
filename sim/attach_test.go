package sim

import (
	"testing"

	"github.com/jakecoffman/cp"
)

// contactGraph is a synthetic, undirected contact graph for traversal
// tests; edges are mirrored the way real arbiters are visible from both
// bodies.
type contactGraph map[*cp.Body][]*cp.Body

func (g contactGraph) link(a, b *cp.Body) {
	g[a] = append(g[a], b)
	g[b] = append(g[b], a)
}

func (g contactGraph) contacts(b *cp.Body, fn func(*cp.Body)) {
	for _, other := range g[b] {
		fn(other)
	}
}

func dynBody() *cp.Body {
	return cp.NewBody(1, cp.MomentForBox(1, 10, 10))
}

// settledBody is a stone frozen in place, the way the settle path leaves
// them.
func settledBody() *cp.Body {
	b := dynBody()
	b.SetType(cp.BODY_STATIC)
	return b
}

func TestAttachedTo(t *testing.T) {
	cases := []struct {
		name  string
		build func() (roots []*cp.Body, g contactGraph, want []*cp.Body, not []*cp.Body)
	}{
		{
			name: "direct_contact",
			build: func() ([]*cp.Body, contactGraph, []*cp.Body, []*cp.Body) {
				base := cp.NewStaticBody()
				a := dynBody()
				g := contactGraph{}
				g.link(base, a)
				return []*cp.Body{base}, g, []*cp.Body{a}, nil
			},
		},
		{
			name: "chain_of_three",
			build: func() ([]*cp.Body, contactGraph, []*cp.Body, []*cp.Body) {
				base := cp.NewStaticBody()
				a, b, c := dynBody(), dynBody(), dynBody()
				g := contactGraph{}
				g.link(base, a)
				g.link(a, b)
				g.link(b, c)
				return []*cp.Body{base}, g, []*cp.Body{a, b, c}, nil
			},
		},
		{
			name: "branching_stack",
			build: func() ([]*cp.Body, contactGraph, []*cp.Body, []*cp.Body) {
				base := cp.NewStaticBody()
				a, b, c, d := dynBody(), dynBody(), dynBody(), dynBody()
				g := contactGraph{}
				g.link(base, a)
				g.link(a, b)
				g.link(a, c)
				g.link(c, d)
				return []*cp.Body{base}, g, []*cp.Body{a, b, c, d}, nil
			},
		},
		{
			name: "disconnected_excluded",
			build: func() ([]*cp.Body, contactGraph, []*cp.Body, []*cp.Body) {
				base := cp.NewStaticBody()
				a, b := dynBody(), dynBody()
				loose := dynBody()
				g := contactGraph{}
				g.link(base, a)
				g.link(a, b)
				// loose touches nothing reachable from the base
				return []*cp.Body{base}, g, []*cp.Body{a, b}, []*cp.Body{loose}
			},
		},
		{
			name: "settled_root_carries_rider",
			build: func() ([]*cp.Body, contactGraph, []*cp.Body, []*cp.Body) {
				// A stone resting on the frozen stack attaches even
				// though the engine keeps no base-to-settled arbiter.
				base := cp.NewStaticBody()
				frozen := settledBody()
				rider := dynBody()
				g := contactGraph{}
				g.link(frozen, rider)
				return []*cp.Body{base, frozen}, g, []*cp.Body{rider}, []*cp.Body{frozen}
			},
		},
		{
			name: "settled_root_chain",
			build: func() ([]*cp.Body, contactGraph, []*cp.Body, []*cp.Body) {
				base := cp.NewStaticBody()
				frozen := settledBody()
				a, b := dynBody(), dynBody()
				g := contactGraph{}
				g.link(frozen, a)
				g.link(a, b)
				return []*cp.Body{base, frozen}, g, []*cp.Body{a, b}, []*cp.Body{frozen}
			},
		},
		{
			name: "foreign_static_does_not_bridge",
			build: func() ([]*cp.Body, contactGraph, []*cp.Body, []*cp.Body) {
				// World geometry (walls, ground) is static but never a
				// root, so a stone leaning on it through the wall alone
				// stays unattached.
				base := cp.NewStaticBody()
				wall := cp.NewStaticBody()
				a := dynBody()
				beyond := dynBody()
				g := contactGraph{}
				g.link(base, a)
				g.link(a, wall)
				g.link(wall, beyond)
				return []*cp.Body{base}, g, []*cp.Body{a}, []*cp.Body{wall, beyond}
			},
		},
		{
			name: "static_neighbor_of_base_not_a_member",
			build: func() ([]*cp.Body, contactGraph, []*cp.Body, []*cp.Body) {
				base := cp.NewStaticBody()
				frozen := settledBody()
				g := contactGraph{}
				g.link(base, frozen)
				return []*cp.Body{base}, g, nil, []*cp.Body{frozen}
			},
		},
		{
			name: "cycle_terminates",
			build: func() ([]*cp.Body, contactGraph, []*cp.Body, []*cp.Body) {
				base := cp.NewStaticBody()
				a, b, c := dynBody(), dynBody(), dynBody()
				g := contactGraph{}
				g.link(base, a)
				g.link(a, b)
				g.link(b, c)
				g.link(c, a)
				return []*cp.Body{base}, g, []*cp.Body{a, b, c}, nil
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roots, g, want, not := tc.build()
			set := AttachedTo(roots, g.contacts)

			if len(set) != len(want) {
				t.Fatalf("expected %d attached bodies, got %d", len(want), len(set))
			}
			for _, b := range want {
				if _, ok := set[b]; !ok {
					t.Fatalf("expected body in attachment set")
				}
			}
			for _, b := range not {
				if _, ok := set[b]; ok {
					t.Fatalf("did not expect body in attachment set")
				}
			}
			for _, r := range roots {
				if _, ok := set[r]; ok {
					t.Fatalf("roots must never be members of the attachment set")
				}
			}
		})
	}
}

func TestAttachedToRecomputesFromScratch(t *testing.T) {
	base := cp.NewStaticBody()
	a, b := dynBody(), dynBody()

	g := contactGraph{}
	g.link(base, a)
	g.link(a, b)

	first := AttachedTo([]*cp.Body{base}, g.contacts)
	if len(first) != 2 {
		t.Fatalf("expected 2 attached, got %d", len(first))
	}

	// Contact between a and b disappears; b must drop out on the next
	// recomputation without any incremental bookkeeping.
	g2 := contactGraph{}
	g2.link(base, a)

	second := AttachedTo([]*cp.Body{base}, g2.contacts)
	if len(second) != 1 {
		t.Fatalf("expected 1 attached after edge removal, got %d", len(second))
	}
	if _, ok := second[b]; ok {
		t.Fatalf("body should have dropped out of the attachment set")
	}
}

func TestTranslateAttached(t *testing.T) {
	a, b := dynBody(), dynBody()
	a.SetPosition(cp.Vector{X: 100, Y: 50})
	b.SetPosition(cp.Vector{X: 130, Y: 22})

	set := map[*cp.Body]struct{}{a: {}, b: {}}
	TranslateAttached(set, 15)

	if got := a.Position(); got.X != 115 || got.Y != 50 {
		t.Fatalf("expected a at (115,50), got (%v,%v)", got.X, got.Y)
	}
	if got := b.Position(); got.X != 145 || got.Y != 22 {
		t.Fatalf("expected b at (145,22), got (%v,%v)", got.X, got.Y)
	}

	// Relative offset is preserved.
	if a.Position().X-b.Position().X != -30 {
		t.Fatalf("relative offset changed")
	}
}
