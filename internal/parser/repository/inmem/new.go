package inmem

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/pkg/log"
)

const (
	pathCacheSize = 512
	pathCacheTTL  = 5 * time.Minute
)

// Repo is an in-memory implementation of the parser repository.
// Path lookups walk the project tree segment by segment, so resolved
// paths are memoized in an expiring LRU.
type Repo struct {
	l  log.Logger
	mu sync.RWMutex

	projects map[string]model.Project         // project ID → project
	tags     map[string]map[string]model.Tag  // owner ID → lowercase name → tag
	paths    *expirable.LRU[string, string]   // owner + "\x00" + lowercase path → project ID
}

// New creates an empty in-memory repository.
func New(l log.Logger) *Repo {
	return &Repo{
		l:        l,
		projects: make(map[string]model.Project),
		tags:     make(map[string]map[string]model.Tag),
		paths:    expirable.NewLRU[string, string](pathCacheSize, nil, pathCacheTTL),
	}
}
