// Package kvstore abstracts the durable and ephemeral key-value scopes the
// booking system persists into. The record set, notification settings and
// admin credentials live in the durable scope; the public session pointer
// lives in an ephemeral scope.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for an absent key.
var ErrNotFound = errors.New("kvstore: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Scoped returns a view of base with every key prefixed. Used to carve
// per-session ephemeral scopes out of one shared in-memory store.
func Scoped(base Store, prefix string) Store {
	return &scopedStore{base: base, prefix: prefix}
}

type scopedStore struct {
	base   Store
	prefix string
}

func (s *scopedStore) Get(ctx context.Context, key string) (string, error) {
	return s.base.Get(ctx, s.prefix+key)
}

func (s *scopedStore) Set(ctx context.Context, key, value string) error {
	return s.base.Set(ctx, s.prefix+key, value)
}

func (s *scopedStore) Delete(ctx context.Context, key string) error {
	return s.base.Delete(ctx, s.prefix+key)
}
