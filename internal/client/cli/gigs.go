package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gigdesk/internal/client/models"
)

// Browse lists public gigs. An empty category lists all of them.
func (a *App) Browse(ctx context.Context, category string) error {
	c := models.Category(strings.ToLower(strings.TrimSpace(category)))
	if c != "" && !c.Valid() {
		a.printf("Unknown category %q. Known: %s\n", category, categoryList())
		return nil
	}

	gigs, err := a.gigs.Browse(ctx, c)
	if err != nil {
		a.report(ctx, err, "Failed to load gigs")
		return err
	}
	printGigTable(a.out, gigs)
	return nil
}

func (a *App) ShowGig(ctx context.Context, id string) error {
	g, err := a.gigs.Get(ctx, id)
	if err != nil {
		a.report(ctx, err, "Failed to load gig")
		return err
	}
	printGig(a.out, *g)
	return nil
}

// MyGigs refreshes and prints the freelancer's own gigs.
func (a *App) MyGigs(ctx context.Context) error {
	gigs, err := a.gigs.LoadMine(ctx)
	if err != nil {
		a.report(ctx, err, "Failed to load your gigs")
		return err
	}
	printGigTable(a.out, gigs)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	err := a.gigs.Delete(ctx, id, func(prompt string) bool {
		return Confirm(a.reader, prompt, a.out)
	})
	if err != nil {
		a.report(ctx, err, "Failed to delete gig")
		return err
	}
	a.printf("Gig deleted successfully\n")
	return nil
}

func categoryList() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
