// Package script runs scripted input scenarios against a session without any
// window: a YAML file lists pointer and key events keyed by frame number, and
// Run replays them at a fixed timestep. Used by the headless `run` command
// and anywhere a reproducible interaction sequence is needed.
package script

import (
	"context"
	"fmt"
	"os"

	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/session"
	"gopkg.in/yaml.v3"
)

type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Frames      int     `yaml:"frames"`
	Events      []Event `yaml:"events"`
}

// Event is one scripted input, applied before the tick of its frame. Events
// sharing a frame are applied in file order.
type Event struct {
	Frame  int     `yaml:"frame"`
	Event  string  `yaml:"event"` // move, down, up, key
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Action string  `yaml:"action"` // for key events
}

var actions = map[string]session.Action{
	"gravity_up":   session.ActionGravityUp,
	"gravity_down": session.ActionGravityDown,
	"mass_up":      session.ActionMassUp,
	"mass_down":    session.ActionMassDown,
	"reset":        session.ActionReset,
	"full_reset":   session.ActionFullReset,
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	if sc.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", sc.Frames)
	}
	for i, ev := range sc.Events {
		switch ev.Event {
		case "move", "down", "up":
		case "key":
			if _, ok := actions[ev.Action]; !ok {
				return fmt.Errorf("event %d: unknown action %q", i, ev.Action)
			}
		default:
			return fmt.Errorf("event %d: unknown event %q", i, ev.Event)
		}
		if ev.Frame < 0 || ev.Frame >= sc.Frames {
			return fmt.Errorf("event %d: frame %d outside run of %d frames", i, ev.Frame, sc.Frames)
		}
	}
	return nil
}

// Run replays the scenario against the host, one tick per frame. Each frame's
// events are applied before that frame's tick, so a renderer would see them
// in the same order a live session does. observe may be nil.
func Run(ctx context.Context, host session.Host, sc *Scenario, observe func(pendulum.Snapshot)) error {
	byFrame := make(map[int][]Event, len(sc.Events))
	for _, ev := range sc.Events {
		byFrame[ev.Frame] = append(byFrame[ev.Frame], ev)
	}

	for frame := 0; frame < sc.Frames; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for _, ev := range byFrame[frame] {
			apply(host, ev)
		}

		snap := host.OnFrame()
		if observe != nil {
			observe(snap)
		}
	}
	return nil
}

func apply(host session.Host, ev Event) {
	switch ev.Event {
	case "move":
		host.OnPointerMove(ev.X, ev.Y)
	case "down":
		host.OnPointerDown()
	case "up":
		host.OnPointerUp()
	case "key":
		host.OnKey(actions[ev.Action])
	}
}
