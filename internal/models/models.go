package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// PageSection is one composable block of a page. Data is free-form per the
// section type's field definitions; Position is a dense zero-based index
// within the owning page.
type PageSection struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Name     string                 `json:"name"`
	Data     map[string]interface{} `json:"data"`
	Position int                    `json:"position"`
}

// CloneData returns a deep copy of the section's data map so instances
// created from the same template never share nested state.
func (s PageSection) CloneData() map[string]interface{} {
	return CloneDataMap(s.Data)
}

// CloneDataMap deep-copies a section data map through a JSON round trip.
// Section data is JSON-shaped by construction, so this is lossless.
func CloneDataMap(data map[string]interface{}) map[string]interface{} {
	if data == nil {
		return map[string]interface{}{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return map[string]interface{}{}
	}
	cloned := make(map[string]interface{}, len(data))
	if err := json.Unmarshal(raw, &cloned); err != nil {
		return map[string]interface{}{}
	}
	return cloned
}

// PageSections is stored as a single jsonb column on the page row.
type PageSections []PageSection

func (s PageSections) Value() (driver.Value, error) {
	if len(s) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *PageSections) Scan(value interface{}) error {
	if value == nil {
		*s = PageSections{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan PageSections")
	}

	var decoded []PageSection
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*s = decoded
	return nil
}

type Page struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug            string       `gorm:"uniqueIndex;not null" json:"slug"`
	Title           string       `gorm:"not null" json:"title"`
	MetaDescription string       `json:"meta_description"`
	Layout          string       `gorm:"default:'default'" json:"layout"`
	Sections        PageSections `gorm:"type:jsonb" json:"sections"`
	Published       bool         `gorm:"default:false" json:"is_published"`
}

// StringList is stored as a jsonb array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan StringList")
	}

	var decoded []string
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*l = decoded
	return nil
}

// Product is a catalog item promoted through affiliate links.
type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	Category      string     `gorm:"index;not null" json:"category"`
	CategoryTags  StringList `gorm:"type:jsonb" json:"category_tags"`
	SearchTags    StringList `gorm:"type:jsonb" json:"search_tags"`
	ImageURL      string     `json:"image_url"`
	CurrentPrice  float64    `json:"current_price"`
	OriginalPrice float64    `json:"original_price"`
	AffiliateLink string     `gorm:"not null" json:"affiliate_link"`
	Rating        float64    `json:"rating"`
	Featured      bool       `gorm:"default:false;index" json:"featured"`
}

// Content covers editorial items rendered in featured-content sections:
// blog articles and videos, discriminated by Type.
type Content struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description"`
	Body         string     `gorm:"type:text" json:"body"`
	Type         string     `gorm:"index;not null" json:"type"`
	Category     string     `gorm:"index" json:"category"`
	CategoryTags StringList `gorm:"type:jsonb" json:"category_tags"`
	SearchTags   StringList `gorm:"type:jsonb" json:"search_tags"`
	ImageURL     string     `json:"image_url"`
	VideoURL     string     `json:"video_url"`
	YoutubeID    string     `json:"youtube_id"`
	Featured     bool       `gorm:"default:false;index" json:"featured"`
	Views        int        `gorm:"default:0" json:"views"`
}

// ContentTypeBlog and ContentTypeVideos are the known Content discriminators.
const (
	ContentTypeBlog   = "blog"
	ContentTypeVideos = "videos"
)

// Taxonomy is one flat record of the category tree. Top-level records have
// an empty ParentSlug; subcategories reference their parent by slug.
type Taxonomy struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug       string `gorm:"uniqueIndex;not null" json:"slug"`
	Name       string `gorm:"not null" json:"name"`
	ParentSlug string `gorm:"index" json:"parent_slug,omitempty"`
	Position   int    `gorm:"default:0" json:"position"`
}
