package render

import (
	"fmt"
	"strings"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/sections"
	"content-commerce-backend/pkg/logger"
)

func renderFeaturedContent(rc *Context, section models.PageSection) string {
	data := section.Data

	contentType := strings.TrimSpace(strings.ToLower(getString(data, "contentType")))
	if contentType == "" {
		contentType = sections.FeaturedBlog
	}

	limit := rc.Limits.Clamp(getInt(data, "limit", 0))

	title := getString(data, "title")
	blockClass := classes(rc.Prefix, "featured featured-content")
	gridClass := classes(rc.Prefix, "featured-grid")
	emptyClass := classes(rc.Prefix, "featured-empty")

	var sb strings.Builder
	sb.WriteString(`<section class="` + blockClass + ` featured-content--` + escapeAttr(contentType) + `">`)
	if rc.Editing {
		sb.WriteString(`<span class="` + classes(rc.Prefix, "badge") + `">Destaques</span>`)
	}
	if title != "" {
		sb.WriteString(`<h2>` + escape(title) + `</h2>`)
	}

	if rc.Content == nil {
		sb.WriteString(`<p class="` + emptyClass + `">Conteúdo indisponível no momento.</p></section>`)
		return sb.String()
	}

	var cards []string
	var err error
	switch contentType {
	case sections.FeaturedProducts:
		cards, err = featuredProductCards(rc, limit)
	default:
		cards, err = featuredContentCards(rc, contentType, limit)
	}

	if err != nil {
		logger.Error(err, "Failed to load featured content for section", map[string]interface{}{
			"section_id":   section.ID,
			"content_type": contentType,
		})
		sb.WriteString(`<p class="` + emptyClass + `">Não foi possível carregar o conteúdo no momento.</p></section>`)
		return sb.String()
	}

	if len(cards) == 0 {
		sb.WriteString(`<p class="` + emptyClass + `">Nenhum conteúdo encontrado.</p></section>`)
		return sb.String()
	}

	sb.WriteString(`<div class="` + gridClass + `">`)
	for _, card := range cards {
		sb.WriteString(card)
	}
	sb.WriteString(`</div></section>`)
	return sb.String()
}

func featuredProductCards(rc *Context, limit int) ([]string, error) {
	products, err := rc.Content.FeaturedProducts(rc.Ctx, limit)
	if err != nil {
		return nil, err
	}

	cards := make([]string, 0, len(products))
	for i := range products {
		cards = append(cards, productCard(&products[i]))
	}
	return cards, nil
}

func featuredContentCards(rc *Context, contentType string, limit int) ([]string, error) {
	items, err := rc.Content.FeaturedContent(rc.Ctx, contentType, limit)
	if err != nil {
		return nil, err
	}

	cards := make([]string, 0, len(items))
	for i := range items {
		cards = append(cards, contentCard(&items[i], contentType))
	}
	return cards, nil
}

func productCard(product *models.Product) string {
	var sb strings.Builder
	sb.WriteString(`<article class="product-card">`)
	if product.ImageURL != "" {
		sb.WriteString(`<img src="` + escapeAttr(product.ImageURL) + `" alt="` + escapeAttr(product.Title) + `" loading="lazy">`)
	}
	sb.WriteString(`<h3>` + escape(product.Title) + `</h3>`)
	if product.CurrentPrice > 0 {
		sb.WriteString(`<span class="product-card__price">` + formatPrice(product.CurrentPrice) + `</span>`)
	}
	if product.AffiliateLink != "" {
		sb.WriteString(`<a class="product-card__link" href="` + escapeAttr(product.AffiliateLink) + `" rel="nofollow sponsored" target="_blank">Ver Oferta</a>`)
	}
	sb.WriteString(`</article>`)
	return sb.String()
}

func contentCard(item *models.Content, contentType string) string {
	var sb strings.Builder
	sb.WriteString(`<article class="content-card content-card--` + escapeAttr(contentType) + `">`)
	if contentType == models.ContentTypeVideos && item.YoutubeID != "" {
		thumb := "https://img.youtube.com/vi/" + item.YoutubeID + "/hqdefault.jpg"
		sb.WriteString(`<img src="` + escapeAttr(thumb) + `" alt="` + escapeAttr(item.Title) + `" loading="lazy">`)
	} else if item.ImageURL != "" {
		sb.WriteString(`<img src="` + escapeAttr(item.ImageURL) + `" alt="` + escapeAttr(item.Title) + `" loading="lazy">`)
	}
	sb.WriteString(`<h3>` + escape(item.Title) + `</h3>`)
	if item.Description != "" {
		sb.WriteString(`<p>` + escape(item.Description) + `</p>`)
	}
	sb.WriteString(`</article>`)
	return sb.String()
}

func formatPrice(value float64) string {
	return "R$ " + strings.ReplaceAll(fmt.Sprintf("%.2f", value), ".", ",")
}
