package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gigdesk/internal/client/client"
	"github.com/dmitrijs2005/gigdesk/internal/client/forms"
	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/common"
	"github.com/dmitrijs2005/gigdesk/internal/logging"
	"github.com/google/uuid"
)

// BuildPayload validates a draft snapshot and converts it into the typed
// request body. It never touches the network.
func BuildPayload(s forms.Snapshot) (client.GigPayload, error) {
	if err := s.Validate(); err != nil {
		return client.GigPayload{}, err
	}

	plans := make([]models.PricePlan, 0, len(s.Plans))
	for i, pd := range s.Plans {
		p, err := pd.Parse()
		if err != nil {
			return client.GigPayload{}, fmt.Errorf("plan %d: %w", i, err)
		}
		plans = append(plans, p)
	}

	p := client.GigPayload{
		Title:        s.Title,
		Desc:         s.Desc,
		Category:     s.Category,
		Keywords:     s.KeywordList(),
		PricePlans:   plans,
		FAQs:         s.FAQList(),
		Requirements: s.RequirementList(),
		Thumbnail:    s.NewThumbnail,
	}
	for _, f := range s.NewImages {
		p.Images = append(p.Images, f)
	}
	if s.Mode == forms.ModeEdit {
		p.ImagesToDelete = append([]string{}, s.ToDelete...)
	}
	return p, nil
}

// Result is the outcome of one submission.
type Result struct {
	Gig *models.Gig
	Err error
	// Applied is false when the submission failed or was detached.
	Applied bool
}

type submission struct {
	detached bool
}

// Reconciler submits gig drafts, at most one in flight per draft, and
// applies confirmed results to the owned-gig list.
type Reconciler struct {
	client client.Client
	list   *GigList
	log    logging.Logger

	mu       sync.Mutex
	inflight map[uuid.UUID]*submission
}

func NewReconciler(c client.Client, list *GigList, log logging.Logger) *Reconciler {
	if log == nil {
		log = logging.Nop()
	}
	return &Reconciler{client: c, list: list, log: log, inflight: make(map[uuid.UUID]*submission)}
}

// Pending reports whether draftID has a submission in flight.
func (r *Reconciler) Pending(draftID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.inflight[draftID]
	return ok
}

// Start validates d and, if valid, sends it in the background. The returned
// channel yields exactly one Result. Validation failures and a submission
// already in flight for d are reported synchronously.
func (r *Reconciler) Start(ctx context.Context, d *forms.GigDraft) (<-chan Result, error) {
	snap := d.Snapshot()
	payload, err := BuildPayload(snap)
	if err != nil {
		r.log.Debug(ctx, "draft rejected locally", "draft_id", snap.DraftID, "error", err)
		return nil, err
	}

	r.mu.Lock()
	if _, busy := r.inflight[snap.DraftID]; busy {
		r.mu.Unlock()
		return nil, common.ErrSubmissionPending
	}
	sub := &submission{}
	r.inflight[snap.DraftID] = sub
	r.mu.Unlock()

	out := make(chan Result, 1)
	go func() {
		out <- r.run(ctx, snap, payload, sub)
		close(out)
	}()
	return out, nil
}

// Submit is Start followed by waiting for the result.
func (r *Reconciler) Submit(ctx context.Context, d *forms.GigDraft) (Result, error) {
	ch, err := r.Start(ctx, d)
	if err != nil {
		return Result{Err: err}, err
	}
	res := <-ch
	return res, res.Err
}

// Detach abandons interest in draftID's in-flight submission. The request
// still completes, but its result is not applied.
func (r *Reconciler) Detach(draftID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sub, ok := r.inflight[draftID]; ok {
		sub.detached = true
	}
}

func (r *Reconciler) run(ctx context.Context, snap forms.Snapshot, payload client.GigPayload, sub *submission) Result {
	log := r.log.With("draft_id", snap.DraftID.String(), "mode", snap.Mode.String())

	var (
		gig *models.Gig
		err error
	)
	if snap.Mode == forms.ModeEdit {
		gig, err = r.client.UpdateGig(ctx, snap.GigID, payload)
	} else {
		gig, err = r.client.CreateGig(ctx, payload)
	}

	r.mu.Lock()
	delete(r.inflight, snap.DraftID)
	detached := sub.detached
	r.mu.Unlock()

	if err != nil {
		log.Error(ctx, "gig submission failed", "class", errorClass(err), "error", err)
		return Result{Err: err}
	}
	if detached {
		log.Info(ctx, "gig submission finished after detach, result discarded", "gig_id", gig.ID)
		return Result{Gig: gig}
	}

	if snap.Mode == forms.ModeEdit {
		r.list.ReplaceByID(*gig)
	} else {
		r.list.Prepend(*gig)
	}
	log.Info(ctx, "gig submitted", "gig_id", gig.ID, "images_added", len(payload.Images), "images_deleted", len(payload.ImagesToDelete))
	return Result{Gig: gig, Applied: true}
}
