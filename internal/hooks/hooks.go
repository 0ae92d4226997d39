// Package hooks implements named extension points: ordered callback
// lists that a render pipeline invokes at defined stages.
//
// Callbacks run in ascending priority. Callbacks sharing a priority run
// in the order they were added.
package hooks

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// DefaultPriority is the priority used by most callbacks.
const DefaultPriority = 10

type entry[F any] struct {
	name     string
	priority int
	seq      int
	fn       F
}

type list[F any] struct {
	name    string
	log     *zap.Logger
	entries []entry[F]
	seq     int
}

func (l *list[F]) add(priority int, name string, fn F) {
	l.seq++
	l.entries = append(l.entries, entry[F]{name: name, priority: priority, seq: l.seq, fn: fn})
	sort.SliceStable(l.entries, func(i, j int) bool {
		if l.entries[i].priority != l.entries[j].priority {
			return l.entries[i].priority < l.entries[j].priority
		}
		return l.entries[i].seq < l.entries[j].seq
	})
}

func (l *list[F]) remove(name string) bool {
	for i, e := range l.entries {
		if e.name == name {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (l *list[F]) names() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.name
	}
	return out
}

// Filter threads a value of type V through its callbacks. Each callback
// also receives a read-only context of type C.
type Filter[V, C any] struct {
	l list[func(V, C) V]
}

// NewFilter returns an empty filter called name.
func NewFilter[V, C any](name string, log *zap.Logger) *Filter[V, C] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Filter[V, C]{l: list[func(V, C) V]{name: name, log: log}}
}

// Name returns the extension point's name.
func (f *Filter[V, C]) Name() string { return f.l.name }

// Add registers fn under name at priority.
func (f *Filter[V, C]) Add(priority int, name string, fn func(V, C) V) {
	f.l.add(priority, name, fn)
}

// Remove unregisters the first callback called name.
func (f *Filter[V, C]) Remove(name string) bool { return f.l.remove(name) }

// Len returns the number of registered callbacks.
func (f *Filter[V, C]) Len() int { return len(f.l.entries) }

// Names lists the callbacks in execution order.
func (f *Filter[V, C]) Names() []string { return f.l.names() }

// Apply runs every callback over v and returns the result.
func (f *Filter[V, C]) Apply(v V, ctx C) V {
	for _, e := range f.l.entries {
		f.l.log.Debug("apply filter",
			zap.String("hook", f.l.name),
			zap.String("callback", e.name),
			zap.Int("priority", e.priority))
		v = e.fn(v, ctx)
	}
	return v
}

// Action invokes side-effecting callbacks with a context of type C.
type Action[C any] struct {
	l list[func(C) error]
}

// NewAction returns an empty action called name.
func NewAction[C any](name string, log *zap.Logger) *Action[C] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Action[C]{l: list[func(C) error]{name: name, log: log}}
}

// Name returns the extension point's name.
func (a *Action[C]) Name() string { return a.l.name }

// Add registers fn under name at priority.
func (a *Action[C]) Add(priority int, name string, fn func(C) error) {
	a.l.add(priority, name, fn)
}

// Remove unregisters the first callback called name.
func (a *Action[C]) Remove(name string) bool { return a.l.remove(name) }

// Len returns the number of registered callbacks.
func (a *Action[C]) Len() int { return len(a.l.entries) }

// Names lists the callbacks in execution order.
func (a *Action[C]) Names() []string { return a.l.names() }

// Do runs every callback and stops at the first error.
func (a *Action[C]) Do(ctx C) error {
	for _, e := range a.l.entries {
		a.l.log.Debug("do action",
			zap.String("hook", a.l.name),
			zap.String("callback", e.name),
			zap.Int("priority", e.priority))
		if err := e.fn(ctx); err != nil {
			return fmt.Errorf("%s: %s: %w", a.l.name, e.name, err)
		}
	}
	return nil
}
