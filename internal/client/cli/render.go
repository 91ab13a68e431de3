package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/gigdesk/internal/client/forms"
	"github.com/dmitrijs2005/gigdesk/internal/client/models"
)

func formatPrice(p float64) string {
	return "₹" + strconv.FormatFloat(p, 'f', -1, 64)
}

func printProfile(w io.Writer, u models.UserProfile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", u.Name)
	if u.Email != "" {
		fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	}
	fmt.Fprintf(tw, "Role:\t%s\n", u.Role)
	if u.Bio != "" {
		fmt.Fprintf(tw, "Bio:\t%s\n", u.Bio)
	}
	if len(u.Skills) > 0 {
		fmt.Fprintf(tw, "Skills:\t%s\n", strings.Join(u.Skills, ", "))
	}
	if u.ProfilePic != "" {
		fmt.Fprintf(tw, "Picture:\t%s\n", u.ProfilePic)
	}
	_ = tw.Flush()
}

func printGigTable(w io.Writer, gigs []models.Gig) {
	if len(gigs) == 0 {
		fmt.Fprintln(w, "No gigs found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tFROM\tSELLER")
	for _, g := range gigs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", g.ID, g.Title, g.Category.Label(), formatPrice(g.LowestPrice()), g.Owner.Name)
	}
	_ = tw.Flush()
}

func printGig(w io.Writer, g models.Gig) {
	fmt.Fprintf(w, "%s  [%s]\n", g.Title, g.Category.Label())
	if g.Owner.Name != "" {
		fmt.Fprintf(w, "by %s\n", g.Owner.Name)
	}
	fmt.Fprintf(w, "\n%s\n", g.Desc)
	if len(g.Keywords) > 0 {
		fmt.Fprintf(w, "\nKeywords: %s\n", strings.Join(g.Keywords, ", "))
	}

	if len(g.PricePlans) > 0 {
		fmt.Fprintln(w, "\nPlans:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  TIER\tPRICE\tDELIVERY\tREVISIONS\tFEATURES")
		for _, p := range g.PricePlans {
			fmt.Fprintf(tw, "  %s\t%s\t%d days\t%d\t%s\n", p.Tier, formatPrice(p.Price), p.DeliveryTime, p.Revisions, strings.Join(p.Features, ", "))
		}
		_ = tw.Flush()
	}
	if len(g.FAQs) > 0 {
		fmt.Fprintln(w, "\nFAQ:")
		for _, f := range g.FAQs {
			fmt.Fprintf(w, "  Q: %s\n  A: %s\n", f.Question, f.Answer)
		}
	}
	if len(g.Requirements) > 0 {
		fmt.Fprintln(w, "\nRequirements:")
		for i, r := range g.Requirements {
			fmt.Fprintf(w, "  %d. %s\n", i+1, r)
		}
	}
	if g.Thumbnail != "" {
		fmt.Fprintf(w, "\nThumbnail: %s\n", g.Thumbnail)
	}
	for i, img := range g.Images {
		fmt.Fprintf(w, "Image %d: %s\n", i+1, img)
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func printDraft(w io.Writer, d *forms.GigDraft) {
	s := d.Snapshot()

	fmt.Fprintf(w, "-- %s gig", s.Mode)
	if s.GigID != "" {
		fmt.Fprintf(w, " %s", s.GigID)
	}
	fmt.Fprintln(w, " --")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", orDash(s.Title))
	fmt.Fprintf(tw, "Description:\t%s\n", orDash(s.Desc))
	category := "-"
	if s.Category != "" {
		category = s.Category.Label()
	}
	fmt.Fprintf(tw, "Category:\t%s\n", category)
	fmt.Fprintf(tw, "Keywords:\t%s\n", orDash(strings.Join(s.KeywordList(), ", ")))
	_ = tw.Flush()

	fmt.Fprintln(w, "Plans:")
	for i, p := range s.Plans {
		fmt.Fprintf(w, "  %d. %s  price=%s  delivery=%s  revisions=%s  features=%s\n",
			i+1, orDash(string(p.Tier)), orDash(p.Price), orDash(p.DeliveryTime), orDash(p.Revisions), orDash(p.Features))
	}
	fmt.Fprintln(w, "FAQs:")
	for i, f := range s.FAQs {
		fmt.Fprintf(w, "  %d. Q: %s  A: %s\n", i+1, orDash(f.Question), orDash(f.Answer))
	}
	fmt.Fprintln(w, "Requirements:")
	for i, r := range s.Requirements {
		fmt.Fprintf(w, "  %d. %s\n", i+1, orDash(r))
	}

	thumb := orDash(s.ExistingThumbnail)
	if s.NewThumbnail != nil {
		thumb = s.NewThumbnail.Name() + " (new)"
	}
	fmt.Fprintf(w, "Thumbnail: %s\n", thumb)

	if len(s.ExistingImages) > 0 {
		cursor := d.Media.Cursor()
		fmt.Fprintln(w, "Images:")
		for i, img := range s.ExistingImages {
			mark := " "
			if i == cursor {
				mark = ">"
			}
			state := ""
			if d.Media.IsMarked(img) {
				state = "  [will be deleted]"
			}
			fmt.Fprintf(w, " %s%d. %s%s\n", mark, i+1, img, state)
		}
	}
	for _, f := range s.NewImages {
		fmt.Fprintf(w, "New image: %s\n", f.Name())
	}
}
