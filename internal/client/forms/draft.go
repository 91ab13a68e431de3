package forms

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/google/uuid"
)

// Mode says whether a draft creates a new gig or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// PricePlanDraft holds a plan exactly as typed; numbers stay strings until
// submission.
type PricePlanDraft struct {
	Tier         models.Tier
	Price        string
	DeliveryTime string
	Revisions    string
	Features     string
}

// PlanField names an editable PricePlanDraft field.
type PlanField string

const (
	PlanTier      PlanField = "tier"
	PlanPrice     PlanField = "price"
	PlanDelivery  PlanField = "delivery"
	PlanRevisions PlanField = "revisions"
	PlanFeatures  PlanField = "features"
)

// Set assigns a field by name.
func (p *PricePlanDraft) Set(field PlanField, value string) error {
	switch field {
	case PlanTier:
		p.Tier = models.Tier(value)
	case PlanPrice:
		p.Price = value
	case PlanDelivery:
		p.DeliveryTime = value
	case PlanRevisions:
		p.Revisions = value
	case PlanFeatures:
		p.Features = value
	default:
		return fmt.Errorf("unknown plan field %q", field)
	}
	return nil
}

// Parse converts the typed strings into a plan. Callers validate first;
// Parse only reports the first conversion failure.
func (p PricePlanDraft) Parse() (models.PricePlan, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(p.Price), 64)
	if err != nil {
		return models.PricePlan{}, fmt.Errorf("price %q: %w", p.Price, err)
	}
	days, err := strconv.Atoi(strings.TrimSpace(p.DeliveryTime))
	if err != nil {
		return models.PricePlan{}, fmt.Errorf("delivery time %q: %w", p.DeliveryTime, err)
	}
	revisions, err := strconv.Atoi(strings.TrimSpace(p.Revisions))
	if err != nil {
		return models.PricePlan{}, fmt.Errorf("revisions %q: %w", p.Revisions, err)
	}
	return models.PricePlan{
		Tier:         p.Tier,
		Price:        price,
		DeliveryTime: days,
		Revisions:    revisions,
		Features:     NormalizeList(p.Features),
	}, nil
}

// DefaultPlan is what "add plan" appends.
func DefaultPlan() PricePlanDraft {
	return PricePlanDraft{Tier: models.TierBasic}
}

type FAQDraft struct {
	Question string
	Answer   string
}

// FAQField names an editable FAQDraft field.
type FAQField string

const (
	FAQQuestion FAQField = "question"
	FAQAnswer   FAQField = "answer"
)

func (f *FAQDraft) Set(field FAQField, value string) error {
	switch field {
	case FAQQuestion:
		f.Question = value
	case FAQAnswer:
		f.Answer = value
	default:
		return fmt.Errorf("unknown faq field %q", field)
	}
	return nil
}

func (f FAQDraft) blank() bool {
	return strings.TrimSpace(f.Question) == "" && strings.TrimSpace(f.Answer) == ""
}

// GigDraft is the editable, unsaved form state of one gig.
type GigDraft struct {
	id    uuid.UUID
	mode  Mode
	gigID string

	mu                sync.RWMutex
	title             string
	desc              string
	category          models.Category
	keywords          string
	existingThumbnail string
	newThumbnail      File

	Plans        *Group[PricePlanDraft]
	FAQs         *Group[FAQDraft]
	Requirements *Group[string]
	Media        *MediaStaging
}

// NewDraft returns an empty draft for the create flow.
func NewDraft() *GigDraft {
	return &GigDraft{
		id:           uuid.New(),
		mode:         ModeCreate,
		Plans:        NewGroup[PricePlanDraft](),
		FAQs:         NewGroup[FAQDraft](),
		Requirements: NewGroup[string](),
		Media:        NewMediaStaging(nil),
	}
}

// FromGig hydrates an edit draft from a fetched gig.
func FromGig(g models.Gig) *GigDraft {
	plans := make([]PricePlanDraft, 0, len(g.PricePlans))
	for _, p := range g.PricePlans {
		plans = append(plans, PricePlanDraft{
			Tier:         p.Tier,
			Price:        strconv.FormatFloat(p.Price, 'f', -1, 64),
			DeliveryTime: strconv.Itoa(p.DeliveryTime),
			Revisions:    strconv.Itoa(p.Revisions),
			Features:     JoinList(p.Features),
		})
	}
	faqs := make([]FAQDraft, 0, len(g.FAQs))
	for _, f := range g.FAQs {
		faqs = append(faqs, FAQDraft{Question: f.Question, Answer: f.Answer})
	}

	return &GigDraft{
		id:                uuid.New(),
		mode:              ModeEdit,
		gigID:             g.ID,
		title:             g.Title,
		desc:              g.Desc,
		category:          g.Category,
		keywords:          JoinList(g.Keywords),
		existingThumbnail: g.Thumbnail,
		Plans:             NewGroup(plans...),
		FAQs:              NewGroup(faqs...),
		Requirements:      NewGroup(g.Requirements...),
		Media:             NewMediaStaging(g.Images),
	}
}

// ID is the draft's identity, used to key in-flight submissions.
func (d *GigDraft) ID() uuid.UUID { return d.id }

func (d *GigDraft) Mode() Mode { return d.mode }

// GigID is the id of the gig being edited; empty in create mode.
func (d *GigDraft) GigID() string { return d.gigID }

func (d *GigDraft) SetTitle(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = v
}

func (d *GigDraft) SetDesc(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.desc = v
}

func (d *GigDraft) SetCategory(c models.Category) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.category = c
}

// SetKeywords stores the raw comma-separated keyword text.
func (d *GigDraft) SetKeywords(raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keywords = raw
}

// SetThumbnail stages a new thumbnail; nil clears the selection.
func (d *GigDraft) SetThumbnail(f File) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.newThumbnail = f
}

// SetPlanField edits one field of the plan at index i.
func (d *GigDraft) SetPlanField(i int, field PlanField, value string) error {
	var setErr error
	if err := d.Plans.UpdateAt(i, func(p *PricePlanDraft) { setErr = p.Set(field, value) }); err != nil {
		return err
	}
	return setErr
}

// SetFAQField edits one field of the FAQ at index i.
func (d *GigDraft) SetFAQField(i int, field FAQField, value string) error {
	var setErr error
	if err := d.FAQs.UpdateAt(i, func(f *FAQDraft) { setErr = f.Set(field, value) }); err != nil {
		return err
	}
	return setErr
}

// SetRequirement replaces the requirement at index i.
func (d *GigDraft) SetRequirement(i int, value string) error {
	return d.Requirements.UpdateAt(i, func(s *string) { *s = value })
}

// Snapshot is a consistent, read-only copy of a draft.
type Snapshot struct {
	DraftID uuid.UUID
	Mode    Mode
	GigID   string

	Title    string
	Desc     string
	Category models.Category
	Keywords string

	Plans        []PricePlanDraft
	FAQs         []FAQDraft
	Requirements []string

	ExistingThumbnail string
	NewThumbnail      File
	ExistingImages    []string
	ToDelete          []string
	NewImages         []File
}

func (d *GigDraft) Snapshot() Snapshot {
	d.mu.RLock()
	s := Snapshot{
		DraftID:           d.id,
		Mode:              d.mode,
		GigID:             d.gigID,
		Title:             d.title,
		Desc:              d.desc,
		Category:          d.category,
		Keywords:          d.keywords,
		ExistingThumbnail: d.existingThumbnail,
		NewThumbnail:      d.newThumbnail,
	}
	d.mu.RUnlock()

	s.Plans = d.Plans.Items()
	s.FAQs = d.FAQs.Items()
	s.Requirements = d.Requirements.Items()
	s.ExistingImages = d.Media.Existing()
	s.ToDelete = d.Media.ToDelete()
	s.NewImages = d.Media.Pending()
	return s
}

// Validate checks the draft as it stands right now.
func (d *GigDraft) Validate() error {
	return d.Snapshot().Validate()
}

// KeywordList is the normalized keyword list that goes on the wire.
func (s Snapshot) KeywordList() []string {
	return NormalizeList(s.Keywords)
}

// RequirementList drops blank requirements and trims the rest, keeping
// order.
func (s Snapshot) RequirementList() []string {
	out := make([]string, 0, len(s.Requirements))
	for _, r := range s.Requirements {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// FAQList drops entries where both question and answer are blank.
func (s Snapshot) FAQList() []models.FAQ {
	out := make([]models.FAQ, 0, len(s.FAQs))
	for _, f := range s.FAQs {
		if f.blank() {
			continue
		}
		out = append(out, models.FAQ{Question: strings.TrimSpace(f.Question), Answer: strings.TrimSpace(f.Answer)})
	}
	return out
}
