package mapping

import (
	"sync"

	"ags/options"
	"ags/shape"
)

// Cache memoizes the plans built with one set of options, keyed by descriptor.
// The zero value is ready to use and safe for concurrent use.
type Cache struct {
	Options options.CategoryEnum

	plans sync.Map // shape.Type -> Mapping
}

// Get returns the plan for t, building it on first use. Build failures are not
// cached.
func (c *Cache) Get(t shape.Type) (Mapping, error) {
	if m, ok := c.plans.Load(t); ok {
		return m.(Mapping), nil
	}

	m, err := Build(t, c.Options)
	if err != nil {
		return nil, err
	}

	actual, _ := c.plans.LoadOrStore(t, m)
	return actual.(Mapping), nil
}
