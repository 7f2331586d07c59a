package prompt

import (
	"sort"
	"sync"
)

// Catalog holds the static layer template library. It provides
// thread-safe registration and O(1) lookup by ID. Catalogs are populated
// at startup and read thereafter; unsynchronized concurrent reads are
// safe once registration is complete, and the RWMutex keeps even mixed
// use correct.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]LayerTemplate
	order     []string // registration order, used to break priority ties
}

// NewCatalog creates an empty catalog ready for registration.
func NewCatalog() *Catalog {
	return &Catalog{
		templates: make(map[string]LayerTemplate),
	}
}

// Register adds a template to the catalog.
// The template is validated before registration; invalid templates are
// rejected. Returns ErrCodeTemplateExists if the ID is already taken.
func (c *Catalog) Register(t LayerTemplate) error {
	if err := t.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.templates[t.ID]; exists {
		return NewTemplateExistsError(t.ID)
	}

	c.templates[t.ID] = t
	c.order = append(c.order, t.ID)
	return nil
}

// Get retrieves a template by ID.
// Returns a pointer to a copy to prevent external modification.
// Returns ErrCodeTemplateNotFound if the template doesn't exist.
func (c *Catalog) Get(id string) (*LayerTemplate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, exists := c.templates[id]
	if !exists {
		return nil, NewTemplateNotFoundError(id)
	}

	cp := t
	return &cp, nil
}

// List returns all templates sorted by priority descending; templates
// with equal priority keep their registration order. The returned slice
// is a copy and can be safely modified.
func (c *Catalog) List() []LayerTemplate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	templates := make([]LayerTemplate, 0, len(c.order))
	for _, id := range c.order {
		templates = append(templates, c.templates[id])
	}

	sort.SliceStable(templates, func(i, j int) bool {
		return templates[i].Priority > templates[j].Priority
	})

	return templates
}

// GetByPurpose returns all templates with the given purpose, sorted by
// priority descending. Returns an empty slice if none match.
func (c *Catalog) GetByPurpose(purpose Purpose) []LayerTemplate {
	var matched []LayerTemplate
	for _, t := range c.List() {
		if t.Purpose == purpose {
			matched = append(matched, t)
		}
	}
	return matched
}

// Len returns the number of registered templates.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

// Unregister removes a template by ID.
// Returns ErrCodeTemplateNotFound if the template doesn't exist.
func (c *Catalog) Unregister(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.templates[id]; !exists {
		return NewTemplateNotFoundError(id)
	}

	delete(c.templates, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes all templates from the catalog.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.templates = make(map[string]LayerTemplate)
	c.order = nil
}
