// Package css collects the stylesheet rules that rendered charts rely on.
//
// Decorators contribute rules once per process: the first renderer that
// adds a decorator of a given type registers its rules, later renderers
// using the same decorator type register nothing. Markup converters read
// the collected rules back with Rules or String.
package css

import (
	"reflect"
	"strings"
	"sync"

	"github.com/hnimtadd/knitchart/chart/set"
)

// Rule is one stylesheet rule, selector and block included.
type Rule string

func (r Rule) Hash() uint64 {
	return set.HashOf(string(r))
}

func (r Rule) Equals(other set.Hashable) bool {
	o, ok := other.(Rule)
	return ok && o == r
}

// Sheet is a deduplicated, insertion-ordered list of rules. It is safe for
// concurrent use.
type Sheet struct {
	mu         sync.Mutex
	rules      *set.Set
	registered map[reflect.Type]struct{}
}

func NewSheet() *Sheet {
	return &Sheet{
		rules:      set.New(set.Options{}),
		registered: make(map[reflect.Type]struct{}),
	}
}

// Default is the process-wide sheet renderers register with unless told
// otherwise.
var Default = NewSheet()

// Insert adds rules unconditionally. A rule already present is not
// duplicated.
func (s *Sheet) Insert(rules ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insert(rules)
}

func (s *Sheet) insert(rules []string) {
	for _, r := range rules {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		s.rules.Add(Rule(r))
	}
}

// RegisterOnce inserts rules the first time it sees the dynamic type of
// key and reports whether it did.
func (s *Sheet) RegisterOnce(key any, rules ...string) bool {
	t := reflect.TypeOf(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registered[t]; ok {
		return false
	}
	s.registered[t] = struct{}{}
	s.insert(rules)
	return true
}

// Rules returns the rules in the order they were first inserted.
func (s *Sheet) Rules() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, s.rules.Count())
	s.rules.Each(func(_ set.ID, h set.Hashable) bool {
		out = append(out, string(h.(Rule)))
		return true
	})
	return out
}

// String renders the sheet as stylesheet text, one rule per line.
func (s *Sheet) String() string {
	rules := s.Rules()
	if len(rules) == 0 {
		return ""
	}
	return strings.Join(rules, "\n") + "\n"
}
