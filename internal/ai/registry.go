package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type ResponderFactory func(ctx context.Context) (Responder, error)

type Registry struct {
	mu        sync.RWMutex
	factories map[string]ResponderFactory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]ResponderFactory)}
}

func (r *Registry) Register(name string, f ResponderFactory) {
	name = strings.ToLower(strings.TrimSpace(name))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

func (r *Registry) Get(ctx context.Context, name string) (Responder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown responder: %s", name)
	}
	return f(ctx)
}
