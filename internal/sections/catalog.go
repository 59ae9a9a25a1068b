package sections

// Section type ids known to this system. Persisted documents may reference
// types outside this set; rendering falls back to a placeholder for those.
const (
	TypeHero            = "hero"
	TypeContent         = "content"
	TypeFeaturedContent = "featured-content"
	TypeGallery         = "gallery"
)

// Content section variants. The variant field keys the special presentational
// layouts; legacy documents without it fall back to a title match.
const (
	VariantGeneric  = "generic"
	VariantMission  = "mission"
	VariantValues   = "values"
	VariantWelcome  = "welcome"
	VariantSelfCare = "self-care"
	VariantSupport  = "support"
)

// ContentVariants lists the selectable variants of the content section.
var ContentVariants = []string{
	VariantGeneric,
	VariantMission,
	VariantValues,
	VariantWelcome,
	VariantSelfCare,
	VariantSupport,
}

// Featured content source types.
const (
	FeaturedBlog     = "blog"
	FeaturedProducts = "products"
	FeaturedVideos   = "videos"
)

// DefaultFeaturedLimit bounds featured-content sections that carry no
// explicit limit; MaxFeaturedLimit is the hard ceiling.
const (
	DefaultFeaturedLimit = 3
	MaxFeaturedLimit     = 12
)

// DefaultRegistry builds the registry with the built-in section catalog.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(heroDescriptor())
	reg.MustRegister(contentDescriptor())
	reg.MustRegister(featuredContentDescriptor())
	reg.MustRegister(galleryDescriptor())
	return reg
}

func heroDescriptor() *TypeDescriptor {
	return &TypeDescriptor{
		ID:          TypeHero,
		Name:        "Hero Section",
		Category:    "Cabeçalhos",
		Description: "Seção principal com título, subtítulo e botões",
		Fields: []FieldDefinition{
			{
				ID:          "title",
				Name:        "title",
				Type:        FieldText,
				Label:       "Título Principal",
				Placeholder: "Ex: Você Não Está Sozinha",
				Required:    true,
			},
			{
				ID:          "subtitle",
				Name:        "subtitle",
				Type:        FieldTextarea,
				Label:       "Subtítulo",
				Placeholder: "Descrição que aparece abaixo do título",
			},
			{
				ID:    "backgroundImage",
				Name:  "backgroundImage",
				Type:  FieldImage,
				Label: "Imagem de Fundo",
			},
			{
				ID:          "primaryButtonText",
				Name:        "primaryButtonText",
				Type:        FieldText,
				Label:       "Texto do Botão Principal",
				Placeholder: "Começar Jornada",
			},
			{
				ID:          "primaryButtonLink",
				Name:        "primaryButtonLink",
				Type:        FieldText,
				Label:       "Link do Botão Principal",
				Placeholder: "/blog",
			},
			{
				ID:          "secondaryButtonText",
				Name:        "secondaryButtonText",
				Type:        FieldText,
				Label:       "Texto do Botão Secundário",
				Placeholder: "Saber Mais",
			},
			{
				ID:          "secondaryButtonLink",
				Name:        "secondaryButtonLink",
				Type:        FieldText,
				Label:       "Link do Botão Secundário",
				Placeholder: "/sobre",
			},
		},
		DefaultData: map[string]interface{}{
			"title":               "Você Não Está Sozinha",
			"subtitle":            "Compartilhamos a jornada da maternidade real, com dicas práticas para o dia a dia e momentos de autocuidado que fazem toda diferença.",
			"backgroundImage":     "https://images.unsplash.com/photo-1544027993-37dbfe43562a?auto=format&fit=crop&w=1920&h=800",
			"primaryButtonText":   "Começar Jornada",
			"primaryButtonLink":   "/blog",
			"secondaryButtonText": "Saber Mais",
			"secondaryButtonLink": "/sobre",
		},
	}
}

func contentDescriptor() *TypeDescriptor {
	return &TypeDescriptor{
		ID:          TypeContent,
		Name:        "Seção de Conteúdo",
		Category:    "Conteúdo",
		Description: "Texto corrido com formatação rich text",
		Fields: []FieldDefinition{
			{
				ID:    "title",
				Name:  "title",
				Type:  FieldText,
				Label: "Título da Seção",
			},
			{
				ID:       "content",
				Name:     "content",
				Type:     FieldTextarea,
				Label:    "Conteúdo",
				Required: true,
			},
			{
				ID:      "alignment",
				Name:    "alignment",
				Type:    FieldSelect,
				Label:   "Alinhamento",
				Options: []string{"left", "center", "right"},
			},
			{
				ID:      "variant",
				Name:    "variant",
				Type:    FieldSelect,
				Label:   "Variante de Layout",
				Options: ContentVariants,
			},
		},
		DefaultData: map[string]interface{}{
			"title":     "Nossa História",
			"content":   "Escreva aqui o conteúdo da seção...",
			"alignment": "left",
			"variant":   VariantGeneric,
		},
	}
}

func featuredContentDescriptor() *TypeDescriptor {
	return &TypeDescriptor{
		ID:          TypeFeaturedContent,
		Name:        "Conteúdo em Destaque",
		Category:    "Conteúdo",
		Description: "Mostra posts ou produtos em destaque",
		Fields: []FieldDefinition{
			{
				ID:       "title",
				Name:     "title",
				Type:     FieldText,
				Label:    "Título da Seção",
				Required: true,
			},
			{
				ID:       "contentType",
				Name:     "contentType",
				Type:     FieldSelect,
				Label:    "Tipo de Conteúdo",
				Options:  []string{FeaturedBlog, FeaturedProducts, FeaturedVideos},
				Required: true,
			},
			{
				ID:    "limit",
				Name:  "limit",
				Type:  FieldNumber,
				Label: "Quantidade de Items",
				Validation: &FieldValidation{
					Min: floatPtr(1),
					Max: floatPtr(MaxFeaturedLimit),
				},
			},
		},
		DefaultData: map[string]interface{}{
			"title":       "Últimos Posts",
			"contentType": FeaturedBlog,
			"limit":       DefaultFeaturedLimit,
		},
	}
}

func galleryDescriptor() *TypeDescriptor {
	return &TypeDescriptor{
		ID:          TypeGallery,
		Name:        "Galeria de Imagens",
		Category:    "Visual",
		Description: "Grade de imagens com legendas",
		Fields: []FieldDefinition{
			{
				ID:    "title",
				Name:  "title",
				Type:  FieldText,
				Label: "Título da Galeria",
			},
			{
				ID:      "columns",
				Name:    "columns",
				Type:    FieldSelect,
				Label:   "Número de Colunas",
				Options: []string{"2", "3", "4"},
			},
			{
				ID:    "images",
				Name:  "images",
				Type:  FieldTextarea,
				Label: "URLs das Imagens (uma por linha)",
			},
		},
		DefaultData: map[string]interface{}{
			"title":   "Galeria",
			"columns": "3",
			"images":  "",
		},
	}
}
