package render

import (
	"strings"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/sections"
)

// legacyVariantTitles maps titles that historically selected a special
// layout before sections carried an explicit variant field. Only consulted
// when the variant is absent or generic.
var legacyVariantTitles = map[string]string{
	"nossa missão":         sections.VariantMission,
	"nossos valores":       sections.VariantValues,
	"você não está sozinha": sections.VariantWelcome,
	"tempo para você":      sections.VariantSelfCare,
	"como te auxiliamos":   sections.VariantSupport,
}

func resolveVariant(data map[string]interface{}) string {
	variant := strings.TrimSpace(strings.ToLower(getString(data, "variant")))
	if variant != "" && variant != sections.VariantGeneric {
		for _, known := range sections.ContentVariants {
			if variant == known {
				return variant
			}
		}
		return sections.VariantGeneric
	}

	title := strings.TrimSpace(strings.ToLower(getString(data, "title")))
	if legacy, ok := legacyVariantTitles[title]; ok {
		return legacy
	}
	return sections.VariantGeneric
}

func renderContent(rc *Context, section models.PageSection) string {
	data := section.Data
	variant := resolveVariant(data)

	title := getString(data, "title")
	body := rc.SanitizeHTML(getString(data, "content"))
	alignment := normalizeAlignment(getString(data, "alignment"))

	blockClass := classes(rc.Prefix, "content content-section")
	variantClass := "content-section--" + variant

	var sb strings.Builder
	sb.WriteString(`<section class="` + blockClass + ` ` + variantClass + `" style="text-align:` + alignment + `">`)
	if rc.Editing {
		sb.WriteString(`<span class="` + classes(rc.Prefix, "badge") + `">Conteúdo</span>`)
	}
	if title != "" {
		sb.WriteString(`<h2>` + escape(title) + `</h2>`)
	}
	sb.WriteString(`<div class="content-section__body">` + body + `</div>`)
	sb.WriteString(`</section>`)
	return sb.String()
}

func normalizeAlignment(value string) string {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "center":
		return "center"
	case "right":
		return "right"
	default:
		return "left"
	}
}
