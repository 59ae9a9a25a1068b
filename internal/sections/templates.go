package sections

import "content-commerce-backend/internal/models"

// PageTemplates returns the predefined page layouts. Template section ids are
// placeholders; applying a template always re-identifies every section so the
// same template can be applied to any number of pages without id collisions.
func PageTemplates(reg *Registry) []models.PageTemplate {
	heroData := map[string]interface{}{}
	if desc, ok := reg.Lookup(TypeHero); ok {
		heroData = desc.CloneDefaultData()
	}

	return []models.PageTemplate{
		{
			ID:          "homepage",
			Name:        "Página Inicial",
			Description: "Template completo para página inicial",
			Sections: []models.PageSection{
				{
					ID:       "1",
					Type:     TypeHero,
					Name:     "Hero Principal",
					Position: 0,
					Data:     heroData,
				},
				{
					ID:       "2",
					Type:     TypeFeaturedContent,
					Name:     "Posts em Destaque",
					Position: 1,
					Data: map[string]interface{}{
						"title":       "Últimos Posts",
						"contentType": FeaturedBlog,
						"limit":       3,
					},
				},
				{
					ID:       "3",
					Type:     TypeFeaturedContent,
					Name:     "Produtos em Destaque",
					Position: 2,
					Data: map[string]interface{}{
						"title":       "Produtos Recomendados",
						"contentType": FeaturedProducts,
						"limit":       4,
					},
				},
			},
		},
		{
			ID:          "about",
			Name:        "Página Sobre",
			Description: "Template para página institucional",
			Sections: []models.PageSection{
				{
					ID:       "1",
					Type:     TypeHero,
					Name:     "Cabeçalho Sobre",
					Position: 0,
					Data: map[string]interface{}{
						"title":           "Sobre Nós",
						"subtitle":        "Conheça nossa história e missão",
						"backgroundImage": "https://images.unsplash.com/photo-1516627145497-ae5bf4ec4fdc?auto=format&fit=crop&w=1920&h=600",
					},
				},
				{
					ID:       "2",
					Type:     TypeContent,
					Name:     "Conteúdo Principal",
					Position: 1,
					Data: map[string]interface{}{
						"title":     "Nossa Missão",
						"content":   "Conte sua história aqui...",
						"alignment": "left",
						"variant":   VariantMission,
					},
				},
				{
					ID:       "3",
					Type:     TypeGallery,
					Name:     "Galeria de Momentos",
					Position: 2,
					Data: map[string]interface{}{
						"title":   "Momentos Especiais",
						"columns": "3",
						"images":  "",
					},
				},
			},
		},
		{
			ID:          "blank",
			Name:        "Página em Branco",
			Description: "Comece do zero",
			Sections:    []models.PageSection{},
		},
	}
}

// FindTemplate returns the template with the given id.
func FindTemplate(templates []models.PageTemplate, id string) (models.PageTemplate, bool) {
	for _, tmpl := range templates {
		if tmpl.ID == id {
			return tmpl, true
		}
	}
	return models.PageTemplate{}, false
}
