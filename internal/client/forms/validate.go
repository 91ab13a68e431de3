package forms

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gigdesk/internal/common"
)

const (
	MinTitleLength = 5
	MinDescLength  = 20
	MinPrice       = 5
	MinDelivery    = 1
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every failed rule of a draft, in a stable order.
// It matches common.ErrValidation with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrValidation
}

// Message returns the message for field, or "".
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate applies the submission rules. It returns nil or a
// *ValidationError.
func (s Snapshot) Validate() error {
	v := &ValidationError{}

	title := strings.TrimSpace(s.Title)
	switch {
	case title == "":
		v.add("title", "title is required")
	case utf8.RuneCountInString(title) < MinTitleLength:
		v.add("title", "title must be at least %d characters", MinTitleLength)
	}

	desc := strings.TrimSpace(s.Desc)
	switch {
	case desc == "":
		v.add("desc", "description is required")
	case utf8.RuneCountInString(desc) < MinDescLength:
		v.add("desc", "description must be at least %d characters", MinDescLength)
	}

	if !s.Category.Valid() {
		v.add("category", "select a category")
	}

	if len(s.Plans) == 0 {
		v.add("pricePlans", "add at least one price plan")
	}
	for i, p := range s.Plans {
		validatePlan(v, i, p)
	}

	for i, f := range s.FAQs {
		if f.blank() {
			continue
		}
		if strings.TrimSpace(f.Question) == "" {
			v.add(fmt.Sprintf("faqs[%d].question", i), "question is required")
		}
		if strings.TrimSpace(f.Answer) == "" {
			v.add(fmt.Sprintf("faqs[%d].answer", i), "answer is required")
		}
	}

	if len(s.RequirementList()) == 0 {
		v.add("requirements", "add at least one requirement")
	}

	if s.Mode == ModeCreate && s.NewThumbnail == nil {
		v.add("thumbnail", "a thumbnail image is required")
	}

	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

func validatePlan(v *ValidationError, i int, p PricePlanDraft) {
	key := func(f string) string { return fmt.Sprintf("pricePlans[%d].%s", i, f) }

	if !p.Tier.Valid() {
		v.add(key("tier"), "tier must be Basic, Standard or Premium")
	}

	if price := strings.TrimSpace(p.Price); price == "" {
		v.add(key("price"), "price is required")
	} else if n, err := strconv.ParseFloat(price, 64); err != nil {
		v.add(key("price"), "price must be a number")
	} else if n < MinPrice {
		v.add(key("price"), "price must be at least %d", MinPrice)
	}

	if days := strings.TrimSpace(p.DeliveryTime); days == "" {
		v.add(key("deliveryTime"), "delivery time is required")
	} else if n, err := strconv.Atoi(days); err != nil {
		v.add(key("deliveryTime"), "delivery time must be a whole number of days")
	} else if n < MinDelivery {
		v.add(key("deliveryTime"), "delivery time must be at least %d day", MinDelivery)
	}

	if rev := strings.TrimSpace(p.Revisions); rev == "" {
		v.add(key("revisions"), "revisions are required")
	} else if n, err := strconv.Atoi(rev); err != nil || n < 0 {
		v.add(key("revisions"), "revisions must be a non-negative whole number")
	}

	if len(NormalizeList(p.Features)) == 0 {
		v.add(key("features"), "list at least one feature")
	}
}
