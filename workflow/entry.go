package workflow

import (
	"fmt"
	"sort"
)

// Entry is a single key/value pair written as "key=value".
type Entry struct {
	Key   string
	Value any
}

// KV builds an Entry.
func KV(key string, value any) Entry {
	return Entry{Key: key, Value: value}
}

// Mapping is an ordered set of entries. Lines are written in slice order.
type Mapping []Entry

// MappingFromMap converts a Go map into a Mapping ordered by key.
func MappingFromMap[V any](m map[string]V) Mapping {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Mapping, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Value: m[k]})
	}
	return out
}

// Collapse merges repeated keys: a key keeps the position of its first
// occurrence and the value of its last.
func (m Mapping) Collapse() Mapping {
	index := make(map[string]int, len(m))
	out := make(Mapping, 0, len(m))
	for _, e := range m {
		if i, ok := index[e.Key]; ok {
			out[i].Value = e.Value
			continue
		}
		index[e.Key] = len(out)
		out = append(out, e)
	}
	return out
}

type argsKind int

const (
	argsNone argsKind = iota
	argsPair
	argsMapping
	argsNamed
)

// Args is the argument of a key/value write: a single pair, a mapping, or a
// set of named entries. The zero Args matches none of them.
type Args struct {
	kind    argsKind
	entries Mapping
}

// Pair selects the single key/value form.
func Pair(key string, value any) Args {
	return Args{kind: argsPair, entries: Mapping{{Key: key, Value: value}}}
}

// FromMapping selects the mapping form. An empty mapping writes nothing.
func FromMapping(m Mapping) Args {
	return Args{kind: argsMapping, entries: m}
}

// Named selects the named-entry form. Names must be unique and at least one
// entry is required.
func Named(entries ...Entry) Args {
	return Args{kind: argsNamed, entries: entries}
}

func (a Args) resolve() (Mapping, error) {
	switch a.kind {
	case argsPair:
		return a.entries, nil
	case argsMapping:
		return a.entries.Collapse(), nil
	case argsNamed:
		if len(a.entries) == 0 {
			return nil, fmt.Errorf("%w: no named entries given", ErrArgument)
		}
		seen := make(map[string]struct{}, len(a.entries))
		for _, e := range a.entries {
			if _, dup := seen[e.Key]; dup {
				return nil, fmt.Errorf("%w: entry %q given more than once", ErrArgument, e.Key)
			}
			seen[e.Key] = struct{}{}
		}
		return a.entries, nil
	}
	return nil, fmt.Errorf("%w: expected a key and value, a mapping, or named entries", ErrArgument)
}
