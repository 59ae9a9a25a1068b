package taxonomy

import (
	"testing"

	"content-commerce-backend/internal/models"
)

func TestMatches_EmptySelectionMatchesEverything(t *testing.T) {
	item := models.Product{Category: "cozinha"}

	if !Matches(item, NewSelection()) {
		t.Fatalf("expected empty selection to match every item")
	}
}

func TestMatches_ORSemanticsAcrossMembership(t *testing.T) {
	item := models.Product{
		Category:     "cozinha",
		CategoryTags: models.StringList{"organizacao"},
		SearchTags:   models.StringList{},
	}

	if !Matches(item, NewSelection("organizacao")) {
		t.Fatalf("expected category tag hit to match")
	}
	if Matches(item, NewSelection("higiene")) {
		t.Fatalf("expected unrelated slug not to match")
	}
	if !Matches(item, NewSelection("higiene", "cozinha")) {
		t.Fatalf("expected any selected slug hit to match (OR across slugs)")
	}
}

func TestMatches_SearchTagsCount(t *testing.T) {
	item := models.Content{
		Category:   "blog",
		SearchTags: models.StringList{"viagem", "bebe"},
	}

	if !Matches(item, NewSelection("bebe")) {
		t.Fatalf("expected search tag hit to match")
	}
}

func TestSelection_ToggleIsSymmetric(t *testing.T) {
	sel := NewSelection()

	sel.Toggle("saude-e-seguranca")
	if !sel.Contains("saude-e-seguranca") {
		t.Fatalf("expected toggle to add the slug")
	}

	sel.Toggle("saude-e-seguranca")
	if sel.Contains("saude-e-seguranca") {
		t.Fatalf("expected second toggle to remove the slug")
	}
	if !sel.IsEmpty() {
		t.Fatalf("expected selection to be empty after symmetric toggles")
	}
}

func TestSelection_ParentAndChildIndependent(t *testing.T) {
	sel := NewSelection("saude-e-seguranca")

	child := models.Product{Category: "primeiros-socorros"}
	if Matches(child, sel) {
		t.Fatalf("selecting a parent must not imply its children")
	}
}

func TestBuildHierarchy_TwoLevels(t *testing.T) {
	records := []models.Taxonomy{
		{Slug: "saude-e-seguranca", Name: "Saúde e Segurança", Position: 1},
		{Slug: "primeiros-socorros", Name: "Primeiros Socorros", ParentSlug: "saude-e-seguranca"},
		{Slug: "comer-e-preparar", Name: "Comer e Preparar", Position: 0},
	}

	nodes := BuildHierarchy(records)
	if len(nodes) != 2 {
		t.Fatalf("expected 2 root nodes, got %d", len(nodes))
	}
	if nodes[0].Slug != "comer-e-preparar" {
		t.Fatalf("expected roots ordered by position, got %q first", nodes[0].Slug)
	}
	if len(nodes[1].Children) != 1 || nodes[1].Children[0].Slug != "primeiros-socorros" {
		t.Fatalf("expected subcategory attached to its parent, got %+v", nodes[1].Children)
	}
}

func TestBuildHierarchy_UnknownSlugGetsDefaultStyle(t *testing.T) {
	nodes := BuildHierarchy([]models.Taxonomy{{Slug: "nunca-mapeado", Name: "Novo"}})

	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if nodes[0].Icon != defaultStyle.Icon || nodes[0].Color != defaultStyle.Color {
		t.Fatalf("expected default style for unmapped slug, got %+v", nodes[0])
	}
}

func TestBuildHierarchy_OrphanPromotedToRoot(t *testing.T) {
	nodes := BuildHierarchy([]models.Taxonomy{
		{Slug: "filho-sem-pai", Name: "Órfão", ParentSlug: "inexistente"},
	})

	if len(nodes) != 1 || nodes[0].Slug != "filho-sem-pai" {
		t.Fatalf("expected orphan record to surface at the top level, got %+v", nodes)
	}
}

func TestBuildHierarchy_EmptyInput(t *testing.T) {
	if nodes := BuildHierarchy(nil); len(nodes) != 0 {
		t.Fatalf("expected no nodes for empty input, got %d", len(nodes))
	}
}
