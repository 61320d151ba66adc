package template

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scarff-dev/scarff/internal/target"
)

// Record is a stored template plus catalog bookkeeping. StorageID is an
// opaque internal identifier and never appears in user-facing output;
// templates are addressed by their ID.
type Record struct {
	StorageID uuid.UUID
	Template  Template
	StoredAt  time.Time
}

// Catalog is an in-memory, concurrency-safe template store with
// specificity-based resolution.
type Catalog struct {
	mu      sync.RWMutex
	records map[ID]*Record
	logger  *slog.Logger
}

// NewCatalog creates an empty catalog. A nil logger discards log output.
func NewCatalog(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Catalog{
		records: make(map[ID]*Record),
		logger:  logger,
	}
}

// Insert validates the template and stores it, replacing any template with
// the same id. It returns the record's storage id.
func (c *Catalog) Insert(tpl Template) (uuid.UUID, error) {
	if err := tpl.Validate(); err != nil {
		return uuid.Nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rec := &Record{
		StorageID: uuid.New(),
		Template:  tpl,
		StoredAt:  time.Now(),
	}
	if prev, ok := c.records[tpl.ID]; ok {
		c.logger.Debug("replacing template", "id", tpl.ID.String(), "storage_id", prev.StorageID)
	}
	c.records[tpl.ID] = rec
	return rec.StorageID, nil
}

// Get returns the template stored under the id.
func (c *Catalog) Get(id ID) (Template, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return rec.Template, nil
}

// Contains reports whether a template is stored under the id.
func (c *Catalog) Contains(id ID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.records[id]
	return ok
}

// Remove deletes the template stored under the id and reports whether one
// was present.
func (c *Catalog) Remove(id ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.records[id]
	delete(c.records, id)
	return ok
}

// Len returns the number of stored templates.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Clear removes all templates.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = make(map[ID]*Record)
}

// List returns all records sorted by id.
func (c *Catalog) List() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Record, 0, len(c.records))
	for _, rec := range c.records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Template.ID.String() < out[j].Template.ID.String()
	})
	return out
}

// Resolve returns the single most specific template matching the target.
// No matching template yields ErrNoMatch; a tie at the highest specificity
// yields an AmbiguityError naming every tied candidate.
func (c *Catalog) Resolve(t target.Target) (Template, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	best := -1
	var winners []*Record
	for _, rec := range c.records {
		if !rec.Template.Matcher.Matches(t) {
			continue
		}
		spec := rec.Template.Matcher.Specificity()
		switch {
		case spec > best:
			best = spec
			winners = winners[:0]
			winners = append(winners, rec)
		case spec == best:
			winners = append(winners, rec)
		}
	}

	switch len(winners) {
	case 0:
		return Template{}, fmt.Errorf("%w: %s", ErrNoMatch, t)
	case 1:
		c.logger.Debug("resolved template",
			"target", t.String(),
			"template", winners[0].Template.ID.String(),
			"specificity", best)
		return winners[0].Template, nil
	default:
		ids := make([]ID, len(winners))
		for i, rec := range winners {
			ids[i] = rec.Template.ID
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
		return Template{}, &AmbiguityError{Target: t.String(), Candidates: ids}
	}
}
