package config

import (
	"fmt"
	"strings"
)

// CollisionPolicy selects how the ball resolves contact with the paddle.
type CollisionPolicy int

const (
	// CollisionSnap reflects when the ball's left edge is strictly inside the
	// paddle span and its bottom edge has passed the paddle top, then snaps
	// the ball to rest on the paddle. Prevents tunneling and sticking.
	CollisionSnap CollisionPolicy = iota
	// CollisionOverlap reflects on a loose AABB overlap without moving the
	// ball. The ball can stay inside the paddle and flip again next frame.
	CollisionOverlap
)

// LossPolicy selects what happens when the ball reaches the bottom edge.
type LossPolicy int

const (
	// LossReset respawns the ball at the top center and keeps playing.
	LossReset LossPolicy = iota
	// LossTerminate ends the game loop.
	LossTerminate
)

// InputPolicy selects how many pending input events one frame consumes.
type InputPolicy int

const (
	// InputSingle handles at most one event per frame. Bursts spill into
	// later frames.
	InputSingle InputPolicy = iota
	// InputDrain handles every pending event each frame.
	InputDrain
)

var (
	collisionNames = []string{CollisionSnap: "snap", CollisionOverlap: "overlap"}
	lossNames      = []string{LossReset: "reset", LossTerminate: "terminate"}
	inputNames     = []string{InputSingle: "single", InputDrain: "drain"}
)

func policyName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("unknown(%d)", v)
	}
	return names[v]
}

func parsePolicy(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s policy %q (want one of %s)", kind, s, strings.Join(names, ", "))
}

// String returns the policy name.
func (p CollisionPolicy) String() string { return policyName(collisionNames, int(p)) }

// ParseCollisionPolicy parses "snap" or "overlap".
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	v, err := parsePolicy("collision", collisionNames, s)
	return CollisionPolicy(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (p CollisionPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *CollisionPolicy) UnmarshalText(text []byte) error {
	v, err := ParseCollisionPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// String returns the policy name.
func (p LossPolicy) String() string { return policyName(lossNames, int(p)) }

// ParseLossPolicy parses "reset" or "terminate".
func ParseLossPolicy(s string) (LossPolicy, error) {
	v, err := parsePolicy("loss", lossNames, s)
	return LossPolicy(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (p LossPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *LossPolicy) UnmarshalText(text []byte) error {
	v, err := ParseLossPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// String returns the policy name.
func (p InputPolicy) String() string { return policyName(inputNames, int(p)) }

// ParseInputPolicy parses "single" or "drain".
func ParseInputPolicy(s string) (InputPolicy, error) {
	v, err := parsePolicy("input", inputNames, s)
	return InputPolicy(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (p InputPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *InputPolicy) UnmarshalText(text []byte) error {
	v, err := ParseInputPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
