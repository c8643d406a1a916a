package processor

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Registry is an immutable lookup of handlers by transaction type.
type Registry struct {
	handlers map[Key]Handler
}

// NewRegistry builds a registry from groups of entries. Every duplicated key is reported.
func NewRegistry(groups ...[]Entry) (*Registry, error) {
	handlers := make(map[Key]Handler)
	var result *multierror.Error
	for _, group := range groups {
		for _, e := range group {
			if _, ok := handlers[e.Key]; ok {
				result = multierror.Append(result, fmt.Errorf("%w: %s", ErrDuplicateHandler, e.Key))
				continue
			}
			if e.Handler.Apply == nil || e.Handler.Revert == nil {
				result = multierror.Append(result, fmt.Errorf("handler %s: apply and revert are required", e.Key))
				continue
			}
			handlers[e.Key] = e.Handler
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &Registry{handlers: handlers}, nil
}

// Default returns the registry of every supported transaction type.
func Default() (*Registry, error) {
	return NewRegistry(
		tokenEntries(),
		authEntries(),
		posEntries(),
		interoperabilityEntries(),
		legacyEntries(),
	)
}

// Lookup returns the handler of module:command. Unknown types have no handler.
func (r *Registry) Lookup(module, command string) (Handler, bool) {
	h, ok := r.handlers[Key{Module: module, Command: command}]
	return h, ok
}

// Keys returns the registered keys in lexical order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.handlers))
	for k := range r.handlers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
