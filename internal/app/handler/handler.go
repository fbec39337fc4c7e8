// Package handler routes a resolved key binding to the handler for its
// context.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/curtains/internal/keymap"
)

// Result is what a handler did with a key.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled lets the router try the fallback.
var NotHandled = Result{}

// HandledNoCmd consumes the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Func handles one key. a is empty for unbound keys.
type Func func(a keymap.Action, msg tea.KeyMsg) Result

// Router dispatches keys by binding context.
type Router struct {
	resolver *keymap.Resolver
	routes   map[string]Func
	fallback Func
}

// NewRouter creates a router resolving keys with r.
func NewRouter(r *keymap.Resolver) *Router {
	return &Router{resolver: r, routes: make(map[string]Func)}
}

// On registers f for bindings of the given context.
func (r *Router) On(context string, f Func) *Router {
	r.routes[context] = f
	return r
}

// Otherwise registers the handler for unbound keys and for keys their
// context handler declined.
func (r *Router) Otherwise(f Func) *Router {
	r.fallback = f
	return r
}

// Dispatch handles msg and reports whether any handler consumed it.
func (r *Router) Dispatch(msg tea.KeyMsg) (bool, tea.Cmd) {
	b, ok := r.resolver.Lookup(msg.String())
	if ok {
		if f := r.routes[b.Context]; f != nil {
			if res := f(b.Action, msg); res.Handled {
				return true, res.Cmd
			}
		}
	}
	if r.fallback == nil {
		return false, nil
	}
	res := r.fallback(b.Action, msg)
	return res.Handled, res.Cmd
}
