// Package inventory filters the vehicle listing and holds the listing's
// current search selection.
package inventory

import (
	"dealership/cmd/internal/domain"
	"dealership/cmd/internal/domain/entity"
	"strings"
	"sync"
)

// Filter is a search selection. Make and Type are compared whole unless they
// are domain.FilterAll; Model and Year match by substring, empty matches all.
// All comparisons ignore case.
type Filter struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Type  string `json:"type"`
	Year  string `json:"year"`
}

// DefaultFilter selects everything.
func DefaultFilter() Filter {
	return Filter{Make: domain.FilterAll, Type: domain.FilterAll}
}

// Normalized trims every field and treats an empty Make or Type as All.
func (f Filter) Normalized() Filter {
	n := Filter{
		Make:  strings.TrimSpace(f.Make),
		Model: strings.TrimSpace(f.Model),
		Type:  strings.TrimSpace(f.Type),
		Year:  strings.TrimSpace(f.Year),
	}
	if n.Make == "" {
		n.Make = domain.FilterAll
	}
	if n.Type == "" {
		n.Type = domain.FilterAll
	}
	return n
}

// IsDefault reports whether f selects everything.
func (f Filter) IsDefault() bool {
	return f.Normalized() == DefaultFilter()
}

// Matches reports whether item passes every criterion of f.
func (f Filter) Matches(item *entity.InventoryItem) bool {
	n := f.Normalized()
	if !isAll(n.Make) && !strings.EqualFold(n.Make, item.Make) {
		return false
	}
	if !isAll(n.Type) && !strings.EqualFold(n.Type, item.Type) {
		return false
	}
	if n.Model != "" && !containsFold(item.Model, n.Model) {
		return false
	}
	if n.Year != "" && !containsFold(item.Year, n.Year) {
		return false
	}
	return true
}

// Search returns the items matching f, in store order.
// The input slice is not modified.
func Search(items []*entity.InventoryItem, f Filter) []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// View is the listing's current selection. It is shared by every request, so
// access is serialized.
type View struct {
	mu     sync.Mutex
	filter Filter
}

func NewView() *View {
	return &View{filter: DefaultFilter()}
}

// Apply replaces the selection and returns the normalized filter now in effect.
func (v *View) Apply(f Filter) Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = f.Normalized()
	return v.filter
}

// Reset clears the selection back to DefaultFilter.
func (v *View) Reset() Filter {
	return v.Apply(DefaultFilter())
}

func (v *View) Current() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

func isAll(s string) bool {
	return strings.EqualFold(s, domain.FilterAll)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
