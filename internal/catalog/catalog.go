// Package catalog holds the registry of technical experts and transversal
// assistants and turns project analysis into ranked recommendations.
package catalog

// Category of a catalog entry.
const (
	CategoryTechnical   = "technical"
	CategoryTransversal = "transversal"
)

// Priority buckets assigned from the match score.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Capability is one thing an agent can do, with the pain-point trigger word
// that makes it relevant.
type Capability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Trigger     string `json:"trigger"`
	Priority    int    `json:"priority"`
}

// Specialization is a technology focus within an expert domain.
type Specialization struct {
	Name         string   `json:"name"`
	Keywords     []string `json:"keywords"`
	Capabilities []string `json:"capabilities"`
	Commands     []string `json:"commands"`
}

// Entry defines one expert or assistant in the catalog.
type Entry struct {
	ID                string
	Name              string
	Icon              string
	Description       string
	Category          string
	DetectionKeywords []string
	DetectionFiles    []string
	Specializations   []Specialization
	BaseCapabilities  []Capability
}

// Catalog is the immutable registry. Entries keep their declaration order so
// ranking ties resolve the same way on every run.
type Catalog struct {
	entries []Entry
	byID    map[string]*Entry
}

// New builds the default catalog.
func New() *Catalog {
	entries := defaultEntries()
	byID := make(map[string]*Entry, len(entries))
	for i := range entries {
		byID[entries[i].ID] = &entries[i]
	}
	return &Catalog{entries: entries, byID: byID}
}

// Entries returns all entries in declaration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// TechnicalExperts returns the technical entries in declaration order.
func (c *Catalog) TechnicalExperts() []Entry {
	return c.byCategory(CategoryTechnical)
}

// TransversalAssistants returns the transversal entries in declaration order.
func (c *Catalog) TransversalAssistants() []Entry {
	return c.byCategory(CategoryTransversal)
}

func (c *Catalog) byCategory(category string) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Get looks up an entry by id.
func (c *Catalog) Get(id string) (*Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}
