// Package pipeline runs a sequence of edits over a boxed Map.
package pipeline

import (
	"errors"
	"fmt"
	"slices"

	"github.com/funvibe/boxed/pkg/boxed"
	"github.com/funvibe/boxed/pkg/text"
)

// Stage is one edit. Apply must not modify its argument; boxed Maps are
// persistent, so returning a new map is enough.
type Stage interface {
	Name() string
	Apply(m boxed.Map) (boxed.Map, error)
}

// Pipeline represents a sequence of stages.
type Pipeline struct {
	stages []Stage
}

// New returns a pipeline running stages in order. The slice is copied.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: slices.Clone(stages)}
}

// Add appends stages and returns p.
func (p *Pipeline) Add(stages ...Stage) *Pipeline {
	p.stages = append(p.stages, stages...)
	return p
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Run applies every stage in order. It stops at the first failing stage
// and returns the map produced so far along with the error.
func (p *Pipeline) Run(m boxed.Map) (boxed.Map, error) {
	for _, s := range p.stages {
		next, err := s.Apply(m)
		if err != nil {
			return m, fmt.Errorf("%s: %w", s.Name(), err)
		}
		m = next
	}
	return m, nil
}

type stageFunc struct {
	name string
	fn   func(boxed.Map) (boxed.Map, error)
}

func (s stageFunc) Name() string                         { return s.name }
func (s stageFunc) Apply(m boxed.Map) (boxed.Map, error) { return s.fn(m) }

// Func wraps fn as a named Stage.
func Func(name string, fn func(boxed.Map) (boxed.Map, error)) Stage {
	return stageFunc{name: name, fn: fn}
}

// Put binds key to v.
func Put(key boxed.Equality, v boxed.Value) Stage {
	return Func("put "+key.String(), func(m boxed.Map) (boxed.Map, error) {
		return m.Put(key, v), nil
	})
}

// Remove drops key; an absent key is not an error.
func Remove(key boxed.Equality) Stage {
	return Func("remove "+key.String(), func(m boxed.Map) (boxed.Map, error) {
		return m.Remove(key), nil
	})
}

// ErrKeyCollision is returned by UpperKeys when two distinct keys map to
// the same upper-cased key.
var ErrKeyCollision = errors.New("keys collide after case mapping")

// UpperKeys upper-cases every Str key with tx. Keys of other kinds are
// kept. Two keys that map to the same key fail with ErrKeyCollision, so
// the result never depends on iteration order.
func UpperKeys(tx text.Text) Stage {
	return Func("upper-keys", func(m boxed.Map) (boxed.Map, error) {
		out := boxed.EmptyMap()
		var err error
		m.Range(func(k boxed.Equality, v boxed.Value) bool {
			if s, ok := k.(boxed.Str); ok {
				var up boxed.Str
				if up, err = s.Upper(tx); err != nil {
					err = fmt.Errorf("key %s: %w", s, err)
					return false
				}
				k = up
			}
			if out.Contains(k) {
				err = fmt.Errorf("key %s: %w", k, ErrKeyCollision)
				return false
			}
			out = out.Put(k, v)
			return true
		})
		if err != nil {
			return m, err
		}
		return out, nil
	})
}
