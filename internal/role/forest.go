package role

import (
	"fmt"
	"sort"

	"hotel-pms-backend/internal/pkg/apperror"
)

// Forest is an arena of role nodes indexed by id, validated acyclic at load
// time. Once built it is immutable, so Resolve needs no locking.
type Forest struct {
	nodes map[int64]*Role
}

// LoadForest validates a flat slice of role rows and builds the forest.
// A missing parent, a level that is not parent.level+1, an unknown token,
// or a cycle is a configuration error, rejected up front.
func LoadForest(roles []*Role) (*Forest, error) {
	nodes := make(map[int64]*Role, len(roles))
	for _, r := range roles {
		if _, exists := nodes[r.ID]; exists {
			return nil, hierarchyErr("duplicate role id %d", r.ID)
		}
		nodes[r.ID] = r
	}

	for _, r := range nodes {
		if !r.Type.Valid() {
			return nil, hierarchyErr("role %d has unknown type %q", r.ID, r.Type)
		}
		if !r.Code.Valid() {
			return nil, hierarchyErr("role %d has unknown role code %q", r.ID, r.Code)
		}
		for _, c := range r.Permissions {
			if !c.Valid() {
				return nil, hierarchyErr("role %d grants unknown capability %q", r.ID, c)
			}
		}
		for _, c := range r.Restrictions {
			if c == CapAll || !c.Valid() {
				return nil, hierarchyErr("role %d restricts invalid capability %q", r.ID, c)
			}
		}

		if r.ParentID == nil {
			if r.HierarchyLevel != 0 {
				return nil, hierarchyErr("root role %d has level %d, want 0", r.ID, r.HierarchyLevel)
			}
			continue
		}

		parent, ok := nodes[*r.ParentID]
		if !ok {
			return nil, hierarchyErr("role %d references missing parent %d", r.ID, *r.ParentID)
		}
		if r.HierarchyLevel != parent.HierarchyLevel+1 {
			return nil, hierarchyErr("role %d has level %d, want parent level %d + 1",
				r.ID, r.HierarchyLevel, parent.HierarchyLevel)
		}
	}

	// Walk each node to its root; more steps than nodes means a cycle.
	for _, r := range nodes {
		steps := 0
		for cur := r; cur.ParentID != nil; cur = nodes[*cur.ParentID] {
			steps++
			if steps > len(nodes) {
				return nil, hierarchyErr("cycle detected at role %d", r.ID)
			}
		}
	}

	return &Forest{nodes: nodes}, nil
}

// Get returns the role node for id.
func (f *Forest) Get(id int64) (*Role, bool) {
	r, ok := f.nodes[id]
	return r, ok
}

// List returns every role node, sorted by id.
func (f *Forest) List() []*Role {
	out := make([]*Role, 0, len(f.nodes))
	for _, r := range f.nodes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve computes the effective permission set for a role: union of all
// grants from the role up to its root, minus restricted tokens. The nearer
// ancestor wins when grants and restrictions disagree; on the same node a
// restriction beats a grant. A wildcard grant covers every capability not
// already restricted by a nearer node.
func (f *Forest) Resolve(roleID int64) (CapabilitySet, error) {
	node, ok := f.nodes[roleID]
	if !ok {
		return nil, ErrNotFound
	}

	decided := make(map[Capability]bool)
	wildcard := false

	for cur := node; cur != nil; {
		// Restrictions first: at equal distance, restrict wins over grant.
		for _, c := range cur.Restrictions {
			if _, seen := decided[c]; !seen {
				decided[c] = false
			}
		}
		for _, c := range cur.Permissions {
			if c == CapAll {
				wildcard = true
				continue
			}
			if _, seen := decided[c]; !seen {
				decided[c] = true
			}
		}
		if wildcard {
			// Anything farther up can neither grant more nor take away
			// what this nearer wildcard grants.
			break
		}
		if cur.ParentID == nil {
			break
		}
		cur = f.nodes[*cur.ParentID]
	}

	set := make(CapabilitySet)
	if wildcard {
		for _, c := range AllCapabilities {
			if allowed, seen := decided[c]; seen && !allowed {
				continue
			}
			set.Add(c)
		}
		return set, nil
	}

	for c, allowed := range decided {
		if allowed {
			set.Add(c)
		}
	}
	return set, nil
}

func hierarchyErr(format string, args ...any) error {
	return apperror.WithMessage(ErrInvalidHierarchy, "invalid role hierarchy: "+fmt.Sprintf(format, args...))
}
