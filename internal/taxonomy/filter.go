package taxonomy

// Item is any catalog entry that can be evaluated against a taxonomy
// selection: it carries a primary category plus category and search tags.
type Item interface {
	ItemCategory() string
	ItemCategoryTags() []string
	ItemSearchTags() []string
}

// Selection is the set of taxonomy slugs a viewer has chosen. Parent and
// child slugs are independent entries: selecting a category never implies
// its subcategories, and vice versa.
type Selection map[string]struct{}

// NewSelection builds a selection from a slug list, ignoring blanks.
func NewSelection(slugs ...string) Selection {
	sel := make(Selection, len(slugs))
	for _, slug := range slugs {
		if slug != "" {
			sel[slug] = struct{}{}
		}
	}
	return sel
}

// Toggle adds the slug when absent and removes it when present.
func (s Selection) Toggle(slug string) {
	if slug == "" {
		return
	}
	if _, ok := s[slug]; ok {
		delete(s, slug)
		return
	}
	s[slug] = struct{}{}
}

// Contains reports whether the slug is selected.
func (s Selection) Contains(slug string) bool {
	_, ok := s[slug]
	return ok
}

// IsEmpty reports whether no filter is applied.
func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

// Matches reports whether an item passes the selection. An empty selection
// matches everything. Otherwise any selected slug matching the item's
// category, category tags or search tags is enough (OR across slugs, OR
// across the three membership checks).
func Matches(item Item, sel Selection) bool {
	if sel.IsEmpty() {
		return true
	}

	if sel.Contains(item.ItemCategory()) {
		return true
	}
	for _, tag := range item.ItemCategoryTags() {
		if sel.Contains(tag) {
			return true
		}
	}
	for _, tag := range item.ItemSearchTags() {
		if sel.Contains(tag) {
			return true
		}
	}
	return false
}
