package event

import (
	"fmt"
)

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionRotateCCW
	ActionRotateCW
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionHold
)

// AllActions lists the actions an intent can carry.
var AllActions = []GameAction{ActionRotateCCW, ActionRotateCW, ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionHardDrop, ActionHold}

var actionNames = map[GameAction]string{
	ActionRotateCCW: "rotate-ccw",
	ActionRotateCW:  "rotate-cw",
	ActionMoveLeft:  "move-left",
	ActionMoveRight: "move-right",
	ActionSoftDrop:  "soft-drop",
	ActionHardDrop:  "hard-drop",
	ActionHold:      "hold",
}

func (a GameAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

func ParseAction(s string) (GameAction, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return ActionUnknown, fmt.Errorf("unknown action %q", s)
}
