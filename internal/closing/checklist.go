// Package closing presents the closing-matters checklist: account and
// subscription cancellations grouped by category, with completion state
// held in the session store.
package closing

import (
	"github.com/ytlim/estatepath/internal/state"
)

// Item is one checklist entry with its completion state.
type Item struct {
	ID          string
	Name        string
	Description string
	Link        string
	Done        bool
}

// Category groups checklist items under a heading.
type Category struct {
	ID    string
	Title string
	Items []Item
}

// Checklist merges the fixed catalog with per-item completion from the
// session store.
type Checklist struct {
	store *state.Store
}

// NewChecklist creates a checklist bound to the session store.
func NewChecklist(store *state.Store) *Checklist {
	return &Checklist{store: store}
}

// Categories returns the checklist in catalog order with current
// completion flags.
func (c *Checklist) Categories() []Category {
	cats := c.store.Catalog().Closing
	out := make([]Category, 0, len(cats))
	for _, cat := range cats {
		items := make([]Item, 0, len(cat.Items))
		for _, it := range cat.Items {
			items = append(items, Item{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				Link:        it.Link,
				Done:        c.store.ClosingDone(it.ID),
			})
		}
		out = append(out, Category{ID: cat.ID, Title: cat.Title, Items: items})
	}
	return out
}

// Toggle flips one item's completion state. Unknown ids are ignored.
func (c *Checklist) Toggle(itemID string) {
	c.store.SetClosingItemDone(itemID, !c.store.ClosingDone(itemID))
}

// SetDone marks one item's completion state. Unknown ids are ignored.
func (c *Checklist) SetDone(itemID string, done bool) {
	c.store.SetClosingItemDone(itemID, done)
}

// Progress returns completed and total item counts.
func (c *Checklist) Progress() (done, total int) {
	return c.store.ClosingProgress()
}
