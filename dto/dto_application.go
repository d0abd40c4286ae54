package dto

import (
	"github.com/arcuspath/backend/model"
)

// ===== Request =====
type ProviderDraftDTO struct {
	Name            string         `json:"name" validate:"required"`
	BusinessName    string         `json:"businessName,omitempty"`
	CategoryID      string         `json:"categoryId" validate:"required"`
	Subcategory     string         `json:"subcategory,omitempty"`
	Description     string         `json:"description,omitempty"`
	ShortBio        string         `json:"shortBio,omitempty"`
	Specialties     []string       `json:"specialties,omitempty"`
	Languages       []string       `json:"languages,omitempty"`
	Pronouns        string         `json:"pronouns,omitempty"`
	YearEstablished int            `json:"yearEstablished,omitempty"`
	Location        model.Location `json:"location"`
	LGBTQOwned      bool           `json:"lgbtqOwned,omitempty"`
	Affirmation     string         `json:"affirmationStatement,omitempty"`
}
