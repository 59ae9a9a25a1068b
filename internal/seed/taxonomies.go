package seed

import (
	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/service"
	"content-commerce-backend/pkg/logger"
)

type taxonomyDefinition struct {
	slug     string
	name     string
	children []taxonomyDefinition
}

// The default category tree of the store. Seeding is idempotent; names and
// positions are refreshed on every boot.
var defaultTaxonomies = []taxonomyDefinition{
	{slug: "comer-e-preparar", name: "Comer e Preparar", children: []taxonomyDefinition{
		{slug: "amamentacao", name: "Amamentação"},
		{slug: "introducao-alimentar", name: "Introdução Alimentar"},
		{slug: "cozinha", name: "Cozinha"},
	}},
	{slug: "saude-e-seguranca", name: "Saúde e Segurança", children: []taxonomyDefinition{
		{slug: "primeiros-socorros", name: "Primeiros Socorros"},
		{slug: "seguranca-domestica", name: "Segurança Doméstica"},
	}},
	{slug: "dormir-e-descansar", name: "Dormir e Descansar", children: []taxonomyDefinition{
		{slug: "rotina-de-sono", name: "Rotina de Sono"},
		{slug: "quarto-do-bebe", name: "Quarto do Bebê"},
	}},
	{slug: "higiene-e-cuidados", name: "Higiene e Cuidados", children: []taxonomyDefinition{
		{slug: "banho", name: "Banho"},
		{slug: "troca-de-fraldas", name: "Troca de Fraldas"},
	}},
	{slug: "brincar-e-aprender", name: "Brincar e Aprender", children: []taxonomyDefinition{
		{slug: "brinquedos", name: "Brinquedos"},
		{slug: "desenvolvimento", name: "Desenvolvimento"},
	}},
	{slug: "organizar-e-guardar", name: "Organizar e Guardar", children: []taxonomyDefinition{
		{slug: "organizacao", name: "Organização"},
	}},
	{slug: "vestir-e-proteger", name: "Vestir e Proteger", children: []taxonomyDefinition{
		{slug: "roupas", name: "Roupas"},
		{slug: "passeio", name: "Passeio"},
	}},
}

// EnsureDefaultTaxonomies upserts the default category tree.
func EnsureDefaultTaxonomies(taxonomyService *service.TaxonomyService) {
	if taxonomyService == nil {
		return
	}

	for i, root := range defaultTaxonomies {
		if err := taxonomyService.Upsert(&models.Taxonomy{
			Slug:     root.slug,
			Name:     root.name,
			Position: i,
		}); err != nil {
			logger.Error(err, "Failed to seed taxonomy", map[string]interface{}{"slug": root.slug})
			continue
		}

		for j, child := range root.children {
			if err := taxonomyService.Upsert(&models.Taxonomy{
				Slug:       child.slug,
				Name:       child.name,
				ParentSlug: root.slug,
				Position:   j,
			}); err != nil {
				logger.Error(err, "Failed to seed taxonomy", map[string]interface{}{"slug": child.slug})
			}
		}
	}

	logger.Info("Default taxonomies ensured", map[string]interface{}{"roots": len(defaultTaxonomies)})
}
