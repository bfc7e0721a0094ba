package widgets

import (
	"fmt"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

type filter struct {
	Required key.Modifiers
	Optional key.Modifiers
	names    []key.Name
}

type Shortcut struct {
	Key filter
	F   func(key.Name, key.Modifiers)
}

type Shortcuts struct {
	receiver     any
	eventFilters []event.Filter
	shortcuts    map[key.Name]Shortcut
}

func NewShortcut(required, optional key.Modifiers, names ...key.Name) filter {
	return filter{
		Required: required,
		Optional: optional,
		names:    names,
	}
}

// NewShortcuts panics on a key name bound twice,
// matching is done by name only.
func NewShortcuts(receiver any, shortcuts ...Shortcut) (ss Shortcuts) {
	if len(shortcuts) == 0 {
		panic("no shortcut provided")
	}

	ss.receiver = receiver
	ss.shortcuts = make(map[key.Name]Shortcut, len(shortcuts))
	for _, s := range shortcuts {
		for _, name := range s.Key.names {
			if _, ok := ss.shortcuts[name]; ok {
				panic(fmt.Errorf("repeated key: %s", name))
			}
			ss.shortcuts[name] = s
			ss.eventFilters = append(ss.eventFilters, key.Filter{
				Required: s.Key.Required,
				Optional: s.Key.Optional,
				Name:     name,
			})
		}
	}

	return
}

// Dispatch runs the shortcut bound to a pressed key, it reports whether one matched.
func (ss *Shortcuts) Dispatch(e key.Event) bool {
	if e.State != key.Press {
		return false
	}
	s, ok := ss.shortcuts[e.Name]
	if !ok || !e.Modifiers.Contain(s.Key.Required) {
		return false
	}
	s.F(e.Name, e.Modifiers)
	return true
}

// Match consumes the key events of this frame, it must be called before laying out
// anything else that wants keyboard focus.
func (ss *Shortcuts) Match(gtx layout.Context) error {
	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	defer area.Pop()
	event.Op(gtx.Ops, ss.receiver)

	for {
		ev, ok := gtx.Event(ss.eventFilters...)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case key.Event:
			ss.Dispatch(e)
		default:
			return fmt.Errorf("unknown key event[%T]: %v", ev, ev)
		}
	}

	return nil
}
