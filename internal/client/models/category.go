package models

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is one of the fixed gig categories.
type Category string

const (
	CategoryDesign      Category = "design"
	CategoryDevelopment Category = "development"
	CategoryMarketing   Category = "marketing"
	CategoryBusiness    Category = "business"
	CategoryWriting     Category = "writing"
	CategoryVideo       Category = "video"
	CategoryMusic       Category = "music"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryDesign,
	CategoryDevelopment,
	CategoryMarketing,
	CategoryBusiness,
	CategoryWriting,
	CategoryVideo,
	CategoryMusic,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label is the display label, e.g. "Development".
func (c Category) Label() string {
	// Casers keep state between calls, so one per call.
	return cases.Title(language.English).String(string(c))
}

// Tier names a price plan level.
type Tier string

const (
	TierBasic    Tier = "Basic"
	TierStandard Tier = "Standard"
	TierPremium  Tier = "Premium"
)

var Tiers = []Tier{TierBasic, TierStandard, TierPremium}

func (t Tier) Valid() bool {
	return t == TierBasic || t == TierStandard || t == TierPremium
}
