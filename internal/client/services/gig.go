package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gigdesk/internal/client/client"
	"github.com/dmitrijs2005/gigdesk/internal/client/forms"
	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/client/session"
	"github.com/dmitrijs2005/gigdesk/internal/common"
	"github.com/dmitrijs2005/gigdesk/internal/logging"
)

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(prompt string) bool

// GigService covers browsing and the freelancer's own gigs.
type GigService interface {
	// Browse lists public gigs, optionally limited to one category.
	Browse(ctx context.Context, category models.Category) ([]models.Gig, error)
	Get(ctx context.Context, id string) (*models.Gig, error)
	// LoadMine refreshes and returns the owned-gig list.
	LoadMine(ctx context.Context) ([]models.Gig, error)
	Mine() []models.Gig
	// NewDraft starts a create-mode draft for a freelancer.
	NewDraft(ctx context.Context) (*forms.GigDraft, error)
	// OpenEditor fetches gig id and hydrates an edit draft, if the current
	// user owns it.
	OpenEditor(ctx context.Context, id string) (*forms.GigDraft, error)
	Delete(ctx context.Context, id string, confirm ConfirmFunc) error
}

type gigService struct {
	client  client.Client
	session *session.Store
	list    *GigList
	log     logging.Logger
}

func NewGigService(c client.Client, s *session.Store, list *GigList, log logging.Logger) GigService {
	if log == nil {
		log = logging.Nop()
	}
	return &gigService{client: c, session: s, list: list, log: log}
}

func (g *gigService) Browse(ctx context.Context, category models.Category) ([]models.Gig, error) {
	gigs, err := g.client.ListGigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gigs: %w", err)
	}
	if category == "" {
		return gigs, nil
	}
	out := make([]models.Gig, 0, len(gigs))
	for _, gig := range gigs {
		if gig.Category == category {
			out = append(out, gig)
		}
	}
	return out, nil
}

func (g *gigService) Get(ctx context.Context, id string) (*models.Gig, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, common.ErrNotFound
	}
	gig, err := g.client.GetGig(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get gig %s: %w", id, err)
	}
	return gig, nil
}

func (g *gigService) LoadMine(ctx context.Context) ([]models.Gig, error) {
	if _, err := g.session.Guard(ctx, models.RoleFreelancer); err != nil {
		return nil, err
	}
	gigs, err := g.client.MyGigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list my gigs: %w", err)
	}
	g.list.Set(gigs)
	return g.list.Items(), nil
}

func (g *gigService) Mine() []models.Gig {
	return g.list.Items()
}

func (g *gigService) NewDraft(ctx context.Context) (*forms.GigDraft, error) {
	if _, err := g.session.Guard(ctx, models.RoleFreelancer); err != nil {
		return nil, err
	}
	return forms.NewDraft(), nil
}

func (g *gigService) OpenEditor(ctx context.Context, id string) (*forms.GigDraft, error) {
	user, err := g.session.Guard(ctx, models.RoleFreelancer)
	if err != nil {
		return nil, err
	}
	gig, err := g.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !gig.OwnedBy(user.ID) {
		return nil, common.ErrForbidden
	}
	return forms.FromGig(*gig), nil
}

// Delete removes gig id after confirm returns true. Without confirmation no
// request is sent and common.ErrNotConfirmed is returned.
func (g *gigService) Delete(ctx context.Context, id string, confirm ConfirmFunc) error {
	if _, err := g.session.Guard(ctx, models.RoleFreelancer); err != nil {
		return err
	}
	if confirm == nil || !confirm("Are you sure you want to delete this gig?") {
		return common.ErrNotConfirmed
	}

	if err := g.client.DeleteGig(ctx, id); err != nil {
		g.log.Warn(ctx, "gig delete failed", "gig_id", id, "class", errorClass(err), "error", err)
		return fmt.Errorf("delete gig %s: %w", id, err)
	}
	g.list.RemoveByID(id)
	g.log.Info(ctx, "gig deleted", "gig_id", id)
	return nil
}
