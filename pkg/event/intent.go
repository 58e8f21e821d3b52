package event

import (
	"strings"
)

// Intent is the set of actions asserted during one frame.
type Intent uint16

func NewIntent(actions ...GameAction) Intent {
	var i Intent
	for _, a := range actions {
		i = i.With(a)
	}
	return i
}

func (i Intent) With(a GameAction) Intent {
	if a == ActionUnknown {
		return i
	}
	return i | 1<<uint(a)
}

func (i Intent) Without(a GameAction) Intent {
	return i &^ (1 << uint(a))
}

func (i Intent) Has(a GameAction) bool {
	return a != ActionUnknown && i&(1<<uint(a)) != 0
}

func (i Intent) Empty() bool {
	return i == 0
}

func (i Intent) String() string {
	var names []string
	for _, a := range AllActions {
		if i.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
