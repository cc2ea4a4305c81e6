package sim

import (
	"github.com/jakecoffman/cp"
)

// ContactFunc enumerates the bodies currently in contact with b. The
// production implementation is World.Contacts; tests substitute synthetic
// contact graphs.
type ContactFunc func(b *cp.Body, fn func(other *cp.Body))

// AttachedTo computes the attachment set: every dynamic body reachable from
// one of the roots through contact edges, excluding the roots themselves.
// The traversal is a plain work-list walk over the contact graph and is
// recomputed in full each step, because contacts appear and disappear
// between steps.
//
// The roots are the platform plus every settled stone. A settled stone is
// frozen into the stack the platform carries, but the engine keeps no
// arbiters between two static bodies, so the frozen part of the stack has
// to be seeded as roots rather than reached by traversal. Only dynamic
// bodies become members, so a stone stops moving with the platform the
// step it settles.
func AttachedTo(roots []*cp.Body, contacts ContactFunc) map[*cp.Body]struct{} {
	if len(roots) == 0 || contacts == nil {
		return nil
	}

	rootSet := make(map[*cp.Body]struct{}, len(roots))
	for _, r := range roots {
		if r != nil {
			rootSet[r] = struct{}{}
		}
	}

	attached := make(map[*cp.Body]struct{})
	var work []*cp.Body

	enqueue := func(other *cp.Body) {
		if other == nil {
			return
		}
		if _, ok := rootSet[other]; ok {
			return
		}
		if other.GetType() != cp.BODY_DYNAMIC {
			return
		}
		if _, ok := attached[other]; !ok {
			work = append(work, other)
		}
	}

	for _, r := range roots {
		if r != nil {
			contacts(r, enqueue)
		}
	}

	for len(work) > 0 {
		body := work[len(work)-1]
		work = work[:len(work)-1]
		if _, ok := attached[body]; ok {
			continue
		}
		attached[body] = struct{}{}
		contacts(body, enqueue)
	}

	return attached
}

// TranslateAttached shifts every body in the attachment set by dx,
// preserving each body's offset from the platform.
func TranslateAttached(attached map[*cp.Body]struct{}, dx float64) {
	if dx == 0 {
		return
	}
	for body := range attached {
		pos := body.Position()
		body.SetPosition(cp.Vector{X: pos.X + dx, Y: pos.Y})
	}
}
