package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PricePlan is one priced tier of a gig.
type PricePlan struct {
	Tier         Tier     `json:"tier"`
	Price        float64  `json:"price"`
	DeliveryTime int      `json:"deliveryTime"`
	Revisions    int      `json:"revisions"`
	Features     []string `json:"features"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// OwnerRef identifies the freelancer owning a gig. The API sends either the
// bare user id or a populated user object; both decode here.
type OwnerRef struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

func (o *OwnerRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*o = OwnerRef{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return fmt.Errorf("owner id: %w", err)
		}
		*o = OwnerRef{ID: id}
		return nil
	}
	type plain OwnerRef
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	*o = OwnerRef(p)
	return nil
}

// Gig is a server-confirmed gig. The client only ever holds cached copies.
type Gig struct {
	ID           string      `json:"_id"`
	Owner        OwnerRef    `json:"user"`
	Title        string      `json:"title"`
	Desc         string      `json:"desc"`
	Category     Category    `json:"category"`
	Keywords     []string    `json:"keywords"`
	PricePlans   []PricePlan `json:"pricePlans"`
	FAQs         []FAQ       `json:"faqs"`
	Requirements []string    `json:"requirements"`
	Thumbnail    string      `json:"gigThumbnail"`
	Images       []string    `json:"gigImages"`
}

// LowestPrice is the cheapest plan's price, or 0 without plans.
func (g Gig) LowestPrice() float64 {
	if len(g.PricePlans) == 0 {
		return 0
	}
	lowest := g.PricePlans[0].Price
	for _, p := range g.PricePlans[1:] {
		if p.Price < lowest {
			lowest = p.Price
		}
	}
	return lowest
}

// OwnedBy reports whether userID owns the gig.
func (g Gig) OwnedBy(userID string) bool {
	return userID != "" && g.Owner.ID == userID
}
