package gui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

// KeybindingConfig is the serialized form of a Keybinding. Key is a tcell key
// name such as "Left" or "Enter"; Rune is a single character.
type KeybindingConfig struct {
	Key    string `json:"key,omitempty"`
	Rune   string `json:"rune,omitempty"`
	Action string `json:"action"`
}

var DefaultKeybindings = []*Keybinding{
	{r: 'z', a: event.ActionRotateCCW},
	{r: 'Z', a: event.ActionRotateCCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{k: tcell.KeyUp, a: event.ActionHardDrop},
	{r: 'k', a: event.ActionHardDrop},
	{r: 'K', a: event.ActionHardDrop},
	{r: ' ', a: event.ActionHardDrop},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{r: 'c', a: event.ActionHold},
	{r: 'C', a: event.ActionHold},
}

func (b *Keybinding) Action() event.GameAction {
	return b.a
}

func (b *Keybinding) matches(ev *tcell.EventKey) bool {
	k, r := ev.Key(), ev.Rune()
	if b.r != 0 && k != tcell.KeyRune {
		return false
	}
	return !((b.k != 0 && b.k != k) || (b.r != 0 && b.r != r) || (b.m != 0 && b.m != ev.Modifiers()))
}

// Match returns the action bound to ev.
func Match(bindings []*Keybinding, ev *tcell.EventKey) (event.GameAction, bool) {
	for _, bind := range bindings {
		if bind.matches(ev) {
			return bind.a, true
		}
	}
	return event.ActionUnknown, false
}

func parseKey(name string) (tcell.Key, error) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// ParseKeybindings converts configured bindings. An empty list yields the
// defaults.
func ParseKeybindings(configs []KeybindingConfig) ([]*Keybinding, error) {
	if len(configs) == 0 {
		return DefaultKeybindings, nil
	}

	bindings := make([]*Keybinding, 0, len(configs))
	for _, c := range configs {
		a, err := event.ParseAction(c.Action)
		if err != nil {
			return nil, fmt.Errorf("failed to parse keybinding: %w", err)
		}

		bind := &Keybinding{a: a}
		switch {
		case c.Rune != "" && c.Key != "":
			return nil, fmt.Errorf("failed to parse keybinding for %s: both key and rune set", a)
		case c.Rune != "":
			if utf8.RuneCountInString(c.Rune) != 1 {
				return nil, fmt.Errorf("failed to parse keybinding for %s: rune %q is not a single character", a, c.Rune)
			}
			bind.r, _ = utf8.DecodeRuneInString(c.Rune)
		case c.Key != "":
			bind.k, err = parseKey(c.Key)
			if err != nil {
				return nil, fmt.Errorf("failed to parse keybinding for %s: %w", a, err)
			}
		default:
			return nil, fmt.Errorf("failed to parse keybinding for %s: no key or rune", a)
		}

		bindings = append(bindings, bind)
	}

	return bindings, nil
}
