package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gigdesk/internal/client/forms"
	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/filex"
)

const editorHelp = `Editor commands:
  title <text>                      set the title
  desc                              enter the description (multi-line)
  category <name>                   one of: %s
  keywords <a, b, c>                comma separated keywords
  plan add                          append a price plan
  plan <n> <field> <value>          field: tier, price, delivery, revisions, features
  faq add                           append an FAQ
  faq <n> question|answer <text>    edit an FAQ
  req add [text]                    append a requirement
  req <n> <text>                    replace a requirement
  thumb <path>                      stage a new thumbnail
  images <path...>                  stage new images (replaces earlier selection)
  rm [n]                            toggle deletion of the current or n-th existing image
  next | prev                       move through existing images
  show                              print the draft
  submit                            validate and send
  cancel                            leave without saving
`

var errEditorCancelled = errors.New("editor cancelled")

// Create opens an empty draft for a new gig.
func (a *App) Create(ctx context.Context) error {
	d, err := a.gigs.NewDraft(ctx)
	if err != nil {
		a.report(ctx, err, "Cannot create a gig")
		return err
	}
	// a new gig starts with one plan and one requirement row
	d.Plans.Append(forms.DefaultPlan())
	d.Requirements.Append("")
	return a.editDraft(ctx, d)
}

func (a *App) Edit(ctx context.Context, id string) error {
	d, err := a.gigs.OpenEditor(ctx, id)
	if err != nil {
		a.report(ctx, err, "Failed to load gig")
		return err
	}
	return a.editDraft(ctx, d)
}

// editDraft runs the form loop until the draft is submitted, the user
// cancels, or input ends. A failed submission keeps the user in the loop
// with the draft untouched.
func (a *App) editDraft(ctx context.Context, d *forms.GigDraft) error {
	a.printf(editorHelp, categoryList())
	printDraft(a.out, d)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.printf("%s> ", d.Mode())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return errEditorCancelled
		}
		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "":
			continue
		case "help":
			a.printf(editorHelp, categoryList())
		case "show":
			printDraft(a.out, d)
		case "title":
			d.SetTitle(rest)
		case "desc":
			text, err := GetMultiline(a.reader, "Description", a.out)
			if err != nil {
				return err
			}
			d.SetDesc(text)
		case "category":
			c := models.Category(strings.ToLower(rest))
			if !c.Valid() {
				a.printf("Unknown category %q. Known: %s\n", rest, categoryList())
				continue
			}
			d.SetCategory(c)
		case "keywords":
			d.SetKeywords(rest)
		case "plan":
			a.editPlan(d, rest)
		case "faq":
			a.editFAQ(d, rest)
		case "req":
			a.editRequirement(d, rest)
		case "thumb":
			f, err := filex.OpenLocal(rest)
			if err != nil {
				a.printf("Cannot use %s: %v\n", rest, err)
				continue
			}
			d.SetThumbnail(f)
		case "images":
			a.stageImages(d, rest)
		case "rm":
			a.toggleImage(d, rest)
		case "next":
			d.Media.Next()
			a.printCurrentImage(d)
		case "prev":
			d.Media.Prev()
			a.printCurrentImage(d)
		case "submit":
			done, err := a.submit(ctx, d)
			if done {
				return err
			}
		case "cancel":
			a.printf("Draft discarded.\n")
			return errEditorCancelled
		default:
			a.printf("Unknown editor command: %s (type 'help')\n", cmd)
		}
	}
}

// index parses a 1-based position typed by the user.
func index(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

func (a *App) editPlan(d *forms.GigDraft, rest string) {
	if rest == "add" {
		d.Plans.Append(forms.DefaultPlan())
		a.printf("Plan %d added\n", d.Plans.Len())
		return
	}
	parts := strings.SplitN(rest, " ", 3)
	if len(parts) < 2 {
		a.printf("Usage: plan add | plan <n> <field> <value>\n")
		return
	}
	i, ok := index(parts[0])
	if !ok {
		a.printf("Invalid plan number %q\n", parts[0])
		return
	}
	value := ""
	if len(parts) == 3 {
		value = strings.TrimSpace(parts[2])
	}
	field := forms.PlanField(strings.ToLower(parts[1]))
	if field == forms.PlanTier {
		value = string(tierName(value))
	}
	if err := d.SetPlanField(i, field, value); err != nil {
		a.printf("Cannot edit plan %s: %v\n", parts[0], err)
	}
}

func (a *App) editFAQ(d *forms.GigDraft, rest string) {
	if rest == "add" {
		d.FAQs.Append(forms.FAQDraft{})
		a.printf("FAQ %d added\n", d.FAQs.Len())
		return
	}
	parts := strings.SplitN(rest, " ", 3)
	if len(parts) < 2 {
		a.printf("Usage: faq add | faq <n> question|answer <text>\n")
		return
	}
	i, ok := index(parts[0])
	if !ok {
		a.printf("Invalid FAQ number %q\n", parts[0])
		return
	}
	value := ""
	if len(parts) == 3 {
		value = strings.TrimSpace(parts[2])
	}
	if err := d.SetFAQField(i, forms.FAQField(strings.ToLower(parts[1])), value); err != nil {
		a.printf("Cannot edit FAQ %s: %v\n", parts[0], err)
	}
}

func (a *App) editRequirement(d *forms.GigDraft, rest string) {
	head, text, _ := strings.Cut(rest, " ")
	if head == "add" {
		d.Requirements.Append(strings.TrimSpace(text))
		a.printf("Requirement %d added\n", d.Requirements.Len())
		return
	}
	i, ok := index(head)
	if !ok {
		a.printf("Usage: req add [text] | req <n> <text>\n")
		return
	}
	if err := d.SetRequirement(i, strings.TrimSpace(text)); err != nil {
		a.printf("Cannot edit requirement %s: %v\n", head, err)
	}
}

func (a *App) stageImages(d *forms.GigDraft, rest string) {
	paths := strings.Fields(rest)
	files := make([]forms.File, 0, len(paths))
	for _, p := range paths {
		f, err := filex.OpenLocal(p)
		if err != nil {
			a.printf("Cannot use %s: %v\n", p, err)
			return
		}
		files = append(files, f)
	}
	d.Media.AddPending(files...)
	a.printf("%d new image(s) staged\n", len(files))
}

func (a *App) toggleImage(d *forms.GigDraft, rest string) {
	if rest == "" {
		url, marked, ok := d.Media.ToggleCurrent()
		if !ok {
			a.printf("No existing images\n")
			return
		}
		a.printImageMark(url, marked)
		return
	}

	existing := d.Media.Existing()
	i, ok := index(rest)
	if !ok || i >= len(existing) {
		a.printf("Invalid image number %q\n", rest)
		return
	}
	marked, _ := d.Media.Toggle(existing[i])
	a.printImageMark(existing[i], marked)
}

func (a *App) printImageMark(url string, marked bool) {
	if marked {
		a.printf("%s will be deleted\n", url)
	} else {
		a.printf("%s will be kept\n", url)
	}
}

func (a *App) printCurrentImage(d *forms.GigDraft) {
	url, marked, ok := d.Media.Current()
	if !ok {
		a.printf("No existing images\n")
		return
	}
	state := ""
	if marked {
		state = " [will be deleted]"
	}
	a.printf("Image %d/%d: %s%s\n", d.Media.Cursor()+1, len(d.Media.Existing()), url, state)
}

// submit sends the draft and waits for the outcome. The request runs
// detached from ctx; when ctx ends first the result is abandoned. done
// reports whether the editor should close.
func (a *App) submit(ctx context.Context, d *forms.GigDraft) (done bool, err error) {
	ch, err := a.reconciler.Start(context.WithoutCancel(ctx), d)
	if err != nil {
		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				a.printf("  %s: %s\n", f.Field, f.Message)
			}
			return false, nil
		}
		a.report(ctx, err, "Failed to submit gig")
		return false, nil
	}

	a.printf("Submitting...\n")
	select {
	case res := <-ch:
		if res.Err != nil {
			a.report(ctx, res.Err, submitFallback(d))
			return false, nil
		}
		if d.Mode() == forms.ModeEdit {
			a.printf("Gig updated successfully (%s)\n", res.Gig.ID)
		} else {
			a.printf("Gig created successfully (%s)\n", res.Gig.ID)
		}
		return true, nil
	case <-ctx.Done():
		a.reconciler.Detach(d.ID())
		return true, ctx.Err()
	}
}

func submitFallback(d *forms.GigDraft) string {
	if d.Mode() == forms.ModeEdit {
		return "Failed to update gig"
	}
	return "Failed to create gig"
}

// tierName accepts tiers in any letter case.
func tierName(s string) models.Tier {
	for _, t := range models.Tiers {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return models.Tier(s)
}
