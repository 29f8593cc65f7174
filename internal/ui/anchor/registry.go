package anchor

import "slices"

// Policy configures how popups on different rows interact.
type Policy struct {
	// ExclusiveAcrossRows closes every other row's popup when one opens.
	ExclusiveAcrossRows bool
}

// Registry owns one Controller per row, keyed by row id.
type Registry struct {
	policy Policy
	rows   map[string]*Controller
}

// NewRegistry creates an empty registry with the given policy.
func NewRegistry(policy Policy) *Registry {
	return &Registry{
		policy: policy,
		rows:   make(map[string]*Controller),
	}
}

// Policy returns the registry policy.
func (r *Registry) Policy() Policy {
	return r.policy
}

// For returns the controller for row id, creating it on first use.
func (r *Registry) For(id string) *Controller {
	if c, ok := r.rows[id]; ok {
		return c
	}
	c := New()
	c.hook = func(_, to State) {
		if to.Phase == Open && r.policy.ExclusiveAcrossRows {
			r.closeOthers(id)
		}
	}
	r.rows[id] = c
	return c
}

func (r *Registry) closeOthers(id string) {
	for other, c := range r.rows {
		if other != id {
			c.Close()
		}
	}
}

// RightClick runs a right-click interaction on row id.
func (r *Registry) RightClick(id string, x, y int) State {
	return r.For(id).RightClick(x, y)
}

// Close closes the popup of row id, if the row is known.
func (r *Registry) Close(id string) {
	if c, ok := r.rows[id]; ok {
		c.Close()
	}
}

// CloseAll closes every popup.
func (r *Registry) CloseAll() {
	for _, c := range r.rows {
		c.Close()
	}
}

// Open returns the ids of rows whose popup is open, sorted.
func (r *Registry) Open() []string {
	var ids []string
	for id, c := range r.rows {
		if c.IsOpen() {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Retain closes and forgets every row not in ids.
// Call it when the rendered rows change so removed rows cannot keep a popup.
func (r *Registry) Retain(ids []string) {
	for id, c := range r.rows {
		if !slices.Contains(ids, id) {
			c.Close()
			delete(r.rows, id)
		}
	}
}

// Len returns the number of tracked rows.
func (r *Registry) Len() int {
	return len(r.rows)
}
