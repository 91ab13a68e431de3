package forms

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidDraftPasses(t *testing.T) {
	require.NoError(t, validDraft().Validate())
}

func TestValidate_EmptyDraftReportsEveryField(t *testing.T) {
	err := NewDraft().Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	for _, field := range []string{"title", "desc", "category", "pricePlans", "requirements", "thumbnail"} {
		assert.NotEmpty(t, ve.Message(field), "missing message for %s", field)
	}
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *GigDraft)
		field  string
	}{
		{name: "short title", mutate: func(d *GigDraft) { d.SetTitle("Logo") }, field: "title"},
		{name: "blank title", mutate: func(d *GigDraft) { d.SetTitle("    ") }, field: "title"},
		{name: "short description", mutate: func(d *GigDraft) { d.SetDesc("too short") }, field: "desc"},
		{name: "unknown category", mutate: func(d *GigDraft) { d.SetCategory("cooking") }, field: "category"},
		{name: "empty price", mutate: func(d *GigDraft) { _ = d.SetPlanField(0, PlanPrice, "") }, field: "pricePlans[0].price"},
		{name: "non numeric price", mutate: func(d *GigDraft) { _ = d.SetPlanField(0, PlanPrice, "cheap") }, field: "pricePlans[0].price"},
		{name: "price below minimum", mutate: func(d *GigDraft) { _ = d.SetPlanField(0, PlanPrice, "4.99") }, field: "pricePlans[0].price"},
		{name: "empty delivery", mutate: func(d *GigDraft) { _ = d.SetPlanField(0, PlanDelivery, "") }, field: "pricePlans[0].deliveryTime"},
		{name: "zero delivery", mutate: func(d *GigDraft) { _ = d.SetPlanField(0, PlanDelivery, "0") }, field: "pricePlans[0].deliveryTime"},
		{name: "empty revisions", mutate: func(d *GigDraft) { _ = d.SetPlanField(0, PlanRevisions, "") }, field: "pricePlans[0].revisions"},
		{name: "negative revisions", mutate: func(d *GigDraft) { _ = d.SetPlanField(0, PlanRevisions, "-1") }, field: "pricePlans[0].revisions"},
		{name: "blank features", mutate: func(d *GigDraft) { _ = d.SetPlanField(0, PlanFeatures, " , ") }, field: "pricePlans[0].features"},
		{name: "bad tier", mutate: func(d *GigDraft) { _ = d.SetPlanField(0, PlanTier, "Gold") }, field: "pricePlans[0].tier"},
		{name: "only blank requirements", mutate: func(d *GigDraft) { _ = d.SetRequirement(0, "  ") }, field: "requirements"},
		{name: "half-filled faq", mutate: func(d *GigDraft) { d.FAQs.Append(FAQDraft{Question: "Why?"}) }, field: "faqs[0].answer"},
		{name: "missing thumbnail", mutate: func(d *GigDraft) { d.SetThumbnail(nil) }, field: "thumbnail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			err := d.Validate()
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
			assert.NotEmpty(t, ve.Message(tt.field), "fields: %+v", ve.Fields)
			assert.Len(t, ve.Fields, 1)
		})
	}
}

func TestValidate_DuplicateTiersAllowed(t *testing.T) {
	d := validDraft()
	d.Plans.Append(PricePlanDraft{Tier: models.TierBasic, Price: "60", DeliveryTime: "2", Revisions: "0", Features: "f"})
	assert.NoError(t, d.Validate())
}

func TestValidate_EditNeedsNoThumbnail(t *testing.T) {
	d := FromGig(sampleGig())
	assert.NoError(t, d.Validate())
}

func TestValidationError_Error(t *testing.T) {
	ve := &ValidationError{Fields: []FieldError{{Field: "title", Message: "title is required"}}}
	assert.Equal(t, "validation failed: title: title is required", ve.Error())
	assert.Empty(t, ve.Message("desc"))
}
