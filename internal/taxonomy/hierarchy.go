// Package taxonomy builds the two-level category tree used to tag and
// filter catalog items, and evaluates membership of items against a set of
// selected taxonomy slugs. The hierarchy is read-only reference data: once
// built it is never mutated by filtering.
package taxonomy

import (
	"sort"

	"content-commerce-backend/internal/models"
)

// Node is one node of the category tree. Depth is two in practice
// (category -> subcategory); a childless tree is handled gracefully.
type Node struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Children []Node `json:"children"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
}

// BuildHierarchy groups flat taxonomy records into a tree. Children attach
// to their parent by ParentSlug; records referencing a missing parent are
// promoted to the top level rather than dropped. Presentation hints come
// from the slug style lookup, defaulting for unmapped slugs.
func BuildHierarchy(records []models.Taxonomy) []Node {
	ordered := make([]models.Taxonomy, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	parents := make(map[string]bool, len(ordered))
	for _, rec := range ordered {
		if rec.ParentSlug == "" {
			parents[rec.Slug] = true
		}
	}

	children := make(map[string][]Node)
	var roots []Node
	for _, rec := range ordered {
		if rec.ParentSlug != "" && parents[rec.ParentSlug] {
			children[rec.ParentSlug] = append(children[rec.ParentSlug], Node{
				Slug:     rec.Slug,
				Name:     rec.Name,
				Children: []Node{},
			})
			continue
		}

		style := StyleFor(rec.Slug)
		roots = append(roots, Node{
			Slug:     rec.Slug,
			Name:     rec.Name,
			Children: []Node{},
			Icon:     style.Icon,
			Color:    style.Color,
		})
	}

	for i := range roots {
		if kids, ok := children[roots[i].Slug]; ok {
			roots[i].Children = kids
		}
	}

	return roots
}
