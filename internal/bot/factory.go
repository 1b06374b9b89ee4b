package bot

import (
	"fmt"
)

// BrainFirstPlayable names the reference policy.
const BrainFirstPlayable = "first_playable"

// NewBrain creates a brain by name. An empty name selects the reference policy.
func NewBrain(name string) (Brain, error) {
	switch name {
	case "", BrainFirstPlayable:
		return FirstPlayable{}, nil
	default:
		return nil, fmt.Errorf("unknown brain: %q", name)
	}
}
