package service

import (
	"fmt"
	"strings"
	"time"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/sections"

	"github.com/google/uuid"
)

// DuplicatePage copies a page with fresh section ids. The copy starts as a
// draft so it never shadows the original on the public site.
func (s *PageService) DuplicatePage(pageID uint) (*models.Page, error) {
	original, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	newSlug := fmt.Sprintf("%s-copy-%d", original.Slug, time.Now().Unix())
	newTitle := fmt.Sprintf("%s (Copy)", original.Title)

	duplicate := &models.Page{
		Title:           newTitle,
		Slug:            newSlug,
		MetaDescription: original.MetaDescription,
		Layout:          original.Layout,
		Sections:        make(models.PageSections, 0, len(original.Sections)),
		Published:       false,
	}

	for _, section := range original.Sections {
		section.ID = uuid.New().String()
		section.Data = section.CloneData()
		duplicate.Sections = append(duplicate.Sections, section)
	}

	if err := s.pageRepo.Create(duplicate); err != nil {
		return nil, err
	}

	s.invalidateListings()
	return duplicate, nil
}

// AddSection appends a new section of a registered type, seeded with the
// type's default data.
func (s *PageService) AddSection(pageID uint, req models.AddSectionRequest) (*models.Page, error) {
	page, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	desc, ok := s.registry.Lookup(req.Type)
	if !ok {
		return nil, fmt.Errorf("unknown section type: %s", req.Type)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = desc.Name
	}

	newSection := models.PageSection{
		ID:       uuid.New().String(),
		Type:     desc.ID,
		Name:     name,
		Data:     desc.CloneDefaultData(),
		Position: len(page.Sections),
	}

	page.Sections = append(page.Sections, newSection)

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidatePage(page.Slug)
	return page, nil
}

// UpdateSection validates the submitted data against the section type's
// schema and replaces the section's data map with the cleaned result.
// Identity, type and position never change through this operation.
func (s *PageService) UpdateSection(pageID uint, sectionID string, req models.UpdateSectionRequest) (*models.Page, error) {
	page, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	index := indexOfSection(page.Sections, sectionID)
	if index < 0 {
		return nil, ErrSectionNotFound
	}

	section := &page.Sections[index]

	desc, ok := s.registry.Lookup(section.Type)
	if !ok {
		return nil, fmt.Errorf("unknown section type: %s", section.Type)
	}

	cleaned, err := validateSectionData(desc, req.Data)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			section.Name = name
		}
	}
	section.Data = cleaned

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidatePage(page.Slug)
	return page, nil
}

// DeleteSection removes a section and closes the position gap.
func (s *PageService) DeleteSection(pageID uint, sectionID string) (*models.Page, error) {
	page, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	if indexOfSection(page.Sections, sectionID) < 0 {
		return nil, ErrSectionNotFound
	}

	newSections := make(models.PageSections, 0, len(page.Sections)-1)
	for _, section := range page.Sections {
		if section.ID != sectionID {
			newSections = append(newSections, section)
		}
	}

	for i := range newSections {
		newSections[i].Position = i
	}

	page.Sections = newSections

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidatePage(page.Slug)
	return page, nil
}

// ReorderSections rewrites positions from the submitted id order. The order
// must be an exact permutation of the page's current section ids; partial or
// padded lists are rejected so a stale client can never drop sections.
func (s *PageService) ReorderSections(pageID uint, sectionIDs []string) (*models.Page, error) {
	page, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	if len(sectionIDs) != len(page.Sections) {
		return nil, fmt.Errorf("reorder expects %d section ids, got %d", len(page.Sections), len(sectionIDs))
	}

	sectionMap := make(map[string]models.PageSection, len(page.Sections))
	for _, section := range page.Sections {
		sectionMap[section.ID] = section
	}

	newSections := make(models.PageSections, 0, len(sectionIDs))
	for i, id := range sectionIDs {
		section, ok := sectionMap[id]
		if !ok {
			return nil, fmt.Errorf("unknown section id in reorder: %s", id)
		}
		delete(sectionMap, id)
		section.Position = i
		newSections = append(newSections, section)
	}

	page.Sections = newSections

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidatePage(page.Slug)
	return page, nil
}

// DuplicateSection inserts a copy of a section right after the original.
func (s *PageService) DuplicateSection(pageID uint, sectionID string) (*models.Page, error) {
	page, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	index := indexOfSection(page.Sections, sectionID)
	if index < 0 {
		return nil, ErrSectionNotFound
	}

	original := page.Sections[index]
	duplicate := original
	duplicate.ID = uuid.New().String()
	duplicate.Name = fmt.Sprintf("%s (Copy)", original.Name)
	duplicate.Data = original.CloneData()

	insertIndex := index + 1
	newSections := make(models.PageSections, 0, len(page.Sections)+1)
	newSections = append(newSections, page.Sections[:insertIndex]...)
	newSections = append(newSections, duplicate)
	newSections = append(newSections, page.Sections[insertIndex:]...)

	for i := range newSections {
		newSections[i].Position = i
	}

	page.Sections = newSections

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidatePage(page.Slug)
	return page, nil
}

// GetPageTemplates lists the predefined page layouts.
func (s *PageService) GetPageTemplates() []models.PageTemplate {
	return sections.PageTemplates(s.registry)
}

// ApplyTemplate replaces the page's sections with the template's. Every
// instantiation gets fresh ids and a deep-copied data map, so pages created
// from the same template never share section state.
func (s *PageService) ApplyTemplate(pageID uint, templateID string) (*models.Page, error) {
	page, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	template, ok := sections.FindTemplate(s.GetPageTemplates(), templateID)
	if !ok {
		return nil, fmt.Errorf("unknown template: %s", templateID)
	}

	page.Sections = instantiateTemplateSections(template.Sections)

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidatePage(page.Slug)
	return page, nil
}

// CreateFromTemplate creates a new draft page pre-populated from a template.
func (s *PageService) CreateFromTemplate(templateID, title, slug string) (*models.Page, error) {
	template, ok := sections.FindTemplate(s.GetPageTemplates(), templateID)
	if !ok {
		return nil, fmt.Errorf("unknown template: %s", templateID)
	}

	if strings.TrimSpace(title) == "" {
		title = template.Name
	}

	return s.Create(models.CreatePageRequest{
		Title:    title,
		Slug:     slug,
		Sections: instantiateTemplateSections(template.Sections),
	})
}

func instantiateTemplateSections(source []models.PageSection) models.PageSections {
	instantiated := make(models.PageSections, 0, len(source))
	for i, section := range source {
		section.ID = uuid.New().String()
		section.Data = section.CloneData()
		section.Position = i
		instantiated = append(instantiated, section)
	}
	return instantiated
}

func indexOfSection(list models.PageSections, sectionID string) int {
	for i := range list {
		if list[i].ID == sectionID {
			return i
		}
	}
	return -1
}
