package models_test

import (
	"testing"

	"content-commerce-backend/internal/models"
	appvalidator "content-commerce-backend/pkg/validator"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// bindingEngine returns gin's validator with the custom rules installed,
// the same engine ShouldBindJSON runs request structs through.
func bindingEngine(t *testing.T) *validator.Validate {
	t.Helper()
	appvalidator.Init()

	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("Expected gin's binding engine to be validator/v10")
	}
	return engine
}

func TestCreatePageRequestSlugBinding(t *testing.T) {
	engine := bindingEngine(t)

	if err := engine.Struct(models.CreatePageRequest{Title: "Sobre Nós", Slug: "sobre-nos"}); err != nil {
		t.Fatalf("Expected well-formed slug to pass, got %v", err)
	}
	if err := engine.Struct(models.CreatePageRequest{Title: "Sobre Nós"}); err != nil {
		t.Fatalf("Expected empty slug to be allowed, got %v", err)
	}
	if err := engine.Struct(models.CreatePageRequest{Title: "Sobre Nós", Slug: "Sobre Nós"}); err == nil {
		t.Fatal("Expected malformed slug to be rejected")
	}
}

func TestCreatePageRequestTitleRejectsMarkup(t *testing.T) {
	engine := bindingEngine(t)

	if err := engine.Struct(models.CreatePageRequest{Title: "<script>alert(1)</script>"}); err == nil {
		t.Fatal("Expected markup in title to be rejected")
	}
}

func TestUpdatePageRequestSlugBinding(t *testing.T) {
	engine := bindingEngine(t)

	bad := "Nova Página"
	if err := engine.Struct(models.UpdatePageRequest{Slug: &bad}); err == nil {
		t.Fatal("Expected malformed slug to be rejected")
	}

	good := "nova-pagina"
	if err := engine.Struct(models.UpdatePageRequest{Slug: &good}); err != nil {
		t.Fatalf("Expected well-formed slug to pass, got %v", err)
	}
	if err := engine.Struct(models.UpdatePageRequest{}); err != nil {
		t.Fatalf("Expected empty update to pass, got %v", err)
	}
}
