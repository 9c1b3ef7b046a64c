// Package service serves the configured admin embeds
package service

import (
	perr "benchmarks/internal/platform/errors"
	"benchmarks/internal/services/api/admin/domain"
)

// Service lists and looks up embeds
type Service interface {
	List() []domain.Embed
	Get(slug string) (domain.Embed, error)
}

// Registry is an immutable, ordered set of embeds
type Registry struct {
	list   []domain.Embed
	bySlug map[string]int
}

// New indexes embeds by slug; later duplicates are ignored
func New(embeds []domain.Embed) *Registry {
	r := &Registry{bySlug: make(map[string]int, len(embeds))}
	for _, e := range embeds {
		if _, dup := r.bySlug[e.Slug]; dup {
			continue
		}
		r.bySlug[e.Slug] = len(r.list)
		r.list = append(r.list, e)
	}
	return r
}

// List returns a copy of every embed in configured order
func (r *Registry) List() []domain.Embed {
	return append([]domain.Embed{}, r.list...)
}

// Get returns the embed for slug
func (r *Registry) Get(slug string) (domain.Embed, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return domain.Embed{}, perr.WithField(perr.NotFoundf("embed %q not found", slug), "slug")
	}
	return r.list[i], nil
}
