package render

import (
	"strings"

	"content-commerce-backend/internal/models"
)

func renderHero(rc *Context, section models.PageSection) string {
	data := section.Data

	title := getString(data, "title")
	if strings.TrimSpace(title) == "" {
		title = "Título Principal"
	}
	subtitle := getString(data, "subtitle")
	background := getString(data, "backgroundImage")

	blockClass := classes(rc.Prefix, "hero hero")
	contentClass := classes(rc.Prefix, "hero-content")
	actionsClass := classes(rc.Prefix, "hero-actions")

	var sb strings.Builder
	if background != "" {
		sb.WriteString(`<section class="` + blockClass + `" style="background-image:url('` + escapeAttr(background) + `')">`)
	} else {
		sb.WriteString(`<section class="` + blockClass + `">`)
	}
	if rc.Editing {
		sb.WriteString(`<span class="` + classes(rc.Prefix, "badge") + `">Hero</span>`)
	}
	sb.WriteString(`<div class="` + contentClass + `">`)
	sb.WriteString(`<h1>` + escape(title) + `</h1>`)
	if subtitle != "" {
		sb.WriteString(`<p>` + escape(subtitle) + `</p>`)
	}

	primaryText := getString(data, "primaryButtonText")
	primaryLink := getString(data, "primaryButtonLink")
	secondaryText := getString(data, "secondaryButtonText")
	secondaryLink := getString(data, "secondaryButtonLink")

	if primaryText != "" || secondaryText != "" {
		sb.WriteString(`<div class="` + actionsClass + `">`)
		if primaryText != "" {
			sb.WriteString(heroButton(primaryText, primaryLink, "button button--primary"))
		}
		if secondaryText != "" {
			sb.WriteString(heroButton(secondaryText, secondaryLink, "button button--secondary"))
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div></section>`)
	return sb.String()
}

func heroButton(text, link, class string) string {
	if strings.TrimSpace(link) == "" {
		link = "/"
	}
	return `<a class="` + class + `" href="` + escapeAttr(link) + `">` + escape(text) + `</a>`
}
