package models

// Taxonomy membership accessors. Products and content expose the same
// three-way surface (category, category tags, search tags) so the taxonomy
// filter can evaluate either without knowing the concrete type.

func (p Product) ItemCategory() string       { return p.Category }
func (p Product) ItemCategoryTags() []string { return p.CategoryTags }
func (p Product) ItemSearchTags() []string   { return p.SearchTags }

func (c Content) ItemCategory() string       { return c.Category }
func (c Content) ItemCategoryTags() []string { return c.CategoryTags }
func (c Content) ItemSearchTags() []string   { return c.SearchTags }
