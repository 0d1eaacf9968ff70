package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"survivor/pkg/shared/components"
	"survivor/pkg/shared/config"
)

type InputSystem struct {
	Keys map[string][]ebiten.Key
}

func NewInputSystem(bindings map[string][]string) (*InputSystem, error) {
	keys, err := ResolveKeys(bindings)
	if err != nil {
		return nil, err
	}
	return &InputSystem{Keys: keys}, nil
}

// ResolveKeys turns action -> key names into ebiten keys.
func ResolveKeys(bindings map[string][]string) (map[string][]ebiten.Key, error) {
	keys := make(map[string][]ebiten.Key, len(bindings))
	for action, names := range bindings {
		for _, name := range names {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, errors.Wrapf(err, "keybinding %s: unknown key %q", action, name)
			}
			keys[action] = append(keys[action], k)
		}
	}
	return keys, nil
}

// Pressed reports whether any key bound to action is held.
func (s *InputSystem) Pressed(action string) bool {
	for _, k := range s.Keys[action] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// JustPressed reports whether any key bound to action went down this tick.
func (s *InputSystem) JustPressed(action string) bool {
	for _, k := range s.Keys[action] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Movement reads the held directions.
func (s *InputSystem) Movement() components.InputComponent {
	return components.InputComponent{
		Up:    s.Pressed(config.ActionUp),
		Down:  s.Pressed(config.ActionDown),
		Left:  s.Pressed(config.ActionLeft),
		Right: s.Pressed(config.ActionRight),
	}
}

// PickedCard returns the card index chosen from the keyboard, or -1.
func (s *InputSystem) PickedCard() int {
	for i, action := range []string{config.ActionPick1, config.ActionPick2, config.ActionPick3} {
		if s.JustPressed(action) {
			return i
		}
	}
	return -1
}
