package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	ID          string                      `json:"id" gorm:"primaryKey;size:64"`
	Slug        string                      `json:"slug" gorm:"index"`
	Title       string                      `json:"title"`
	Description string                      `json:"description" gorm:"type:text"`
	PriceFrom   float64                     `json:"price_from"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Colors      datatypes.JSONSlice[string] `json:"colors"`
	Sizes       datatypes.JSONSlice[string] `json:"sizes"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Category    string                      `json:"category"`
	Featured    bool                        `json:"featured"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// BeforeCreate id ve slug boşsa otomatik doldurur
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.New().String()
	}
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = p.ID
	}
	return nil
}

// ProductPayload is the wire shape for product responses: the row fields
// plus a name alias and the service details kept out-of-band in settings.
type ProductPayload struct {
	Product
	Name           string   `json:"name"`
	ServiceDetails []string `json:"service_details"`
}

func NewProductPayload(p Product, details []string) ProductPayload {
	name := p.Title
	if name == "" {
		name = "Model"
	}
	if details == nil {
		details = []string{}
	}
	return ProductPayload{Product: p, Name: name, ServiceDetails: details}
}

// ProductInput carries create/update payloads. Pointer fields distinguish
// "absent" from "set to zero" so updates can merge partially.
type ProductInput struct {
	Slug           *string  `json:"slug"`
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	PriceFrom      *float64 `json:"price_from"`
	Images         []string `json:"images"`
	Colors         []string `json:"colors"`
	Sizes          []string `json:"sizes"`
	Tags           []string `json:"tags"`
	Category       *string  `json:"category"`
	Featured       *bool    `json:"featured"`
	ServiceDetails []string `json:"service_details"`
}

// Apply merges the set fields of the input onto an existing row. Image
// normalization happens in the store so both backends share it.
func (in ProductInput) Apply(p *Product) {
	if in.Slug != nil {
		p.Slug = strings.TrimSpace(*in.Slug)
	}
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.PriceFrom != nil && *in.PriceFrom >= 0 {
		p.PriceFrom = *in.PriceFrom
	}
	if in.Images != nil {
		p.Images = datatypes.NewJSONSlice(in.Images)
	}
	if in.Colors != nil {
		p.Colors = datatypes.NewJSONSlice(in.Colors)
	}
	if in.Sizes != nil {
		p.Sizes = datatypes.NewJSONSlice(in.Sizes)
	}
	if in.Tags != nil {
		p.Tags = datatypes.NewJSONSlice(in.Tags)
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
}
