package service

import (
	"content-commerce-backend/internal/models"
)

// GetPageBuilderConfig returns configuration for the page builder UI:
// every registered section type with its fields split into the content
// and settings tabs, plus the predefined templates.
func (s *PageService) GetPageBuilderConfig() models.PageBuilderConfig {
	descriptors := s.registry.List()

	types := make([]models.SectionTypeConfig, 0, len(descriptors))
	for _, desc := range descriptors {
		config := models.SectionTypeConfig{
			ID:            desc.ID,
			Name:          desc.Name,
			Category:      desc.Category,
			Description:   desc.Description,
			DefaultData:   desc.CloneDefaultData(),
			ContentFields: make([]string, 0, len(desc.Fields)),
			SettingFields: make([]string, 0),
		}

		for _, field := range desc.Fields {
			if field.IsContentField() {
				config.ContentFields = append(config.ContentFields, field.Name)
			} else {
				config.SettingFields = append(config.SettingFields, field.Name)
			}
		}

		types = append(types, config)
	}

	return models.PageBuilderConfig{
		SectionTypes: types,
		Templates:    s.GetPageTemplates(),
	}
}
