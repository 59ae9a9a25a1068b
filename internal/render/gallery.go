package render

import (
	"strconv"
	"strings"

	"content-commerce-backend/internal/models"
)

const galleryFallbackImage = "https://placehold.co/400x300?text=Imagem+indispon%C3%ADvel"

func renderGallery(rc *Context, section models.PageSection) string {
	data := section.Data

	title := getString(data, "title")
	columns := getInt(data, "columns", 3)
	switch columns {
	case 2, 3, 4:
	default:
		columns = 3
	}

	images := splitImageList(getString(data, "images"))

	blockClass := classes(rc.Prefix, "gallery gallery")
	gridClass := classes(rc.Prefix, "gallery-grid")
	emptyClass := classes(rc.Prefix, "gallery-empty")

	var sb strings.Builder
	sb.WriteString(`<section class="` + blockClass + `">`)
	if rc.Editing {
		sb.WriteString(`<span class="` + classes(rc.Prefix, "badge") + `">Galeria</span>`)
	}
	if title != "" {
		sb.WriteString(`<h2>` + escape(title) + `</h2>`)
	}

	if len(images) == 0 {
		sb.WriteString(`<p class="` + emptyClass + `">Nenhuma imagem adicionada.</p></section>`)
		return sb.String()
	}

	sb.WriteString(`<div class="` + gridClass + ` gallery-grid--cols-` + strconv.Itoa(columns) + `">`)
	for _, src := range images {
		sb.WriteString(`<img src="` + escapeAttr(src) + `" alt="" loading="lazy" onerror="this.src='` + galleryFallbackImage + `'">`)
	}
	sb.WriteString(`</div></section>`)
	return sb.String()
}

// splitImageList parses the textarea value: one URL per line, blank lines
// dropped.
func splitImageList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	images := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			images = append(images, trimmed)
		}
	}
	return images
}
