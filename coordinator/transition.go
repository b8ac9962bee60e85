package coordinator

import "fmt"

// State is the render lifecycle of a Coordinator. It only ever moves forward, one step at a time.
type State int

const (
	Unrendered State = iota
	Partitioned
	Rendering
	Complete
)

func (s State) String() string {
	return []string{
		"Unrendered", "Partitioned", "Rendering", "Complete",
	}[s]
}

// next is the only state each state may move to
var next = map[State]State{
	Unrendered:  Partitioned,
	Partitioned: Rendering,
	Rendering:   Complete,
}

func (c *Coordinator[P]) transition(to State) {
	if allowed, ok := next[c.state]; !ok || allowed != to {
		panic(fmt.Sprintf("coordinator: invalid transition %s -> %s", c.state, to))
	}
	c.logger.Debugf("State %s -> %s", c.state, to)
	c.state = to
}
