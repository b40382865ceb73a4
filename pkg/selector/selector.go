// Package selector models element selection as a chain of (relation, criteria)
// steps. A chain describes how to navigate from an implicit root to a target
// element; it carries no element identity and is re-resolved on the remote
// side for every call.
package selector

import (
	"fmt"
	"sort"
	"strings"
)

// Relation tags recognized by the automation service. The root step carries
// no relation; every appended step uses one of these.
const (
	RelationParent   = "parent"
	RelationAncestor = "ancestor"
	RelationChild    = "child"
	RelationSibling  = "sibling"
	RelationBottom   = "bottom"
	RelationLeft     = "left"
	RelationRight    = "right"
	RelationTop      = "top"
)

// Criteria holds matching criteria for one step (text, clazz, res, desc,
// pkg, index, and the boolean state keys). Keys are not validated here; the
// service rejects unknown keys at resolution time.
type Criteria map[string]interface{}

// copyCriteria returns a shallow copy. Values are scalars on the wire, so a
// shallow copy is an independent snapshot.
func copyCriteria(c Criteria) Criteria {
	if c == nil {
		return nil
	}
	out := make(Criteria, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Step is one link in the chain: how to move (relation) and what to match
// (criteria). The root step has an empty relation.
type Step struct {
	Relation string
	Criteria Criteria
}

// Selector is an ordered chain of steps. It is a value type: Append and Copy
// never mutate the receiver, so two chains branched from the same prefix
// cannot observe each other's extensions.
type Selector struct {
	steps []Step
}

// New creates a root chain from the criteria used to find the root element.
func New(criteria Criteria) Selector {
	return Selector{steps: []Step{{Criteria: copyCriteria(criteria)}}}
}

// Append returns a new chain with one extra step. The receiver's backing
// array is never reused, so previously handed-out chains stay intact.
func (s Selector) Append(relation string, criteria Criteria) Selector {
	steps := make([]Step, len(s.steps)+1)
	copy(steps, s.steps)
	steps[len(s.steps)] = Step{Relation: relation, Criteria: copyCriteria(criteria)}
	return Selector{steps: steps}
}

// Copy returns an independent snapshot of the chain.
func (s Selector) Copy() Selector {
	steps := make([]Step, len(s.steps))
	for i, st := range s.steps {
		steps[i] = Step{Relation: st.Relation, Criteria: copyCriteria(st.Criteria)}
	}
	return Selector{steps: steps}
}

// Len returns the number of steps in the chain.
func (s Selector) Len() int {
	return len(s.steps)
}

// Steps returns a copy of the chain's steps in order.
func (s Selector) Steps() []Step {
	return s.Copy().steps
}

// Wire serializes the chain for transport. The root step's criteria become
// the top-level keys; every following step is nested under its relation tag,
// so step order is preserved structurally:
//
//	{"text": "Settings", "child": {"clazz": "android.widget.Switch"}}
func (s Selector) Wire() map[string]interface{} {
	root := make(map[string]interface{})
	if len(s.steps) == 0 {
		return root
	}
	for k, v := range s.steps[0].Criteria {
		root[k] = v
	}
	cur := root
	for _, st := range s.steps[1:] {
		next := make(map[string]interface{}, len(st.Criteria))
		for k, v := range st.Criteria {
			next[k] = v
		}
		cur[st.Relation] = next
		cur = next
	}
	return root
}

// String renders the chain deterministically (criteria keys sorted) for log
// and error messages.
func (s Selector) String() string {
	var b strings.Builder
	b.WriteString("Selector")
	for i, st := range s.steps {
		if i > 0 {
			b.WriteString("/")
			b.WriteString(st.Relation)
		}
		b.WriteString("{")
		keys := make([]string, 0, len(st.Criteria))
		for k := range st.Criteria {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for j, k := range keys {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, st.Criteria[k])
		}
		b.WriteString("}")
	}
	return b.String()
}
