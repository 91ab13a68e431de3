package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn   bool
	freelancer bool

	calls []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeExec) isLoggedIn(context.Context) bool   { return f.loggedIn }
func (f *fakeExec) isFreelancer(context.Context) bool { return f.freelancer }

func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn, f.freelancer = false, false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error { return f.record("whoami") }
func (f *fakeExec) Profile(context.Context) error { return f.record("profile") }
func (f *fakeExec) Avatar(_ context.Context, p string) error { return f.record("avatar " + p) }
func (f *fakeExec) Reset(context.Context) error { return f.record("reset") }
func (f *fakeExec) Browse(_ context.Context, c string) error { return f.record("gigs " + c) }
func (f *fakeExec) ShowGig(_ context.Context, id string) error { return f.record("gig " + id) }
func (f *fakeExec) MyGigs(context.Context) error { return f.record("mygigs") }
func (f *fakeExec) Create(context.Context) error { return f.record("create") }
func (f *fakeExec) Edit(_ context.Context, id string) error { return f.record("edit " + id) }
func (f *fakeExec) Delete(_ context.Context, id string) error { return f.record("delete " + id) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(ctx context.Context, exec execIface, lines ...string) {
	reader := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	runREPL(ctx, exec, func() string { return "(test)" }, reader)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runScript(context.Background(), exec,
		"login",
		"gigs",
		"gigs design",
		"gig 42",
		"whoami",
		"profile",
		"avatar me.png",
		"mygigs",
		"create",
		"edit 7",
		"delete 7",
		"logout",
		"register",
		"reset",
		"exit",
		"login",
	)

	assert.Equal(t, []string{
		"login", "gigs ", "gigs design", "gig 42", "whoami", "profile",
		"avatar me.png", "mygigs", "create", "edit 7", "delete 7",
		"logout", "register", "reset",
	}, exec.calls)
}

func TestRunREPL_UsageOnMissingArguments(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runScript(context.Background(), exec, "gig", "edit", "delete", "avatar", "edit 1 2")

	assert.Empty(t, exec.calls)
	joined := strings.Join(*out, "\n")
	for _, usage := range []string{"Usage: gig <id>", "Usage: edit <id>", "Usage: delete <id>", "Usage: avatar <image path>"} {
		assert.Contains(t, joined, usage)
	}
}

func TestRunREPL_UnknownCommandAndBlankLines(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runScript(context.Background(), exec, "", "   ", "foobar", "quit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	reader := bufio.NewReader(strings.NewReader("whoami"))
	runREPL(context.Background(), exec, func() string { return "" }, reader)

	assert.Equal(t, []string{"whoami"}, exec.calls)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runScript(ctx, exec, "whoami", "exit")

	assert.Empty(t, exec.calls)
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	out := capturePrintln(t)

	reader := bufio.NewReader(strings.NewReader("exit\n"))
	runREPL(context.Background(), &fakeExec{}, func() string { return "(Ann, freelancer)" }, reader)

	assert.Contains(t, *out, "gig (Ann, freelancer)> ")
}

func TestHelpText_ByRole(t *testing.T) {
	ctx := context.Background()

	guest := helpText(ctx, &fakeExec{})
	assert.Contains(t, guest, "login")
	assert.Contains(t, guest, "register")
	assert.NotContains(t, guest, "logout")
	assert.NotContains(t, guest, "create")

	client := helpText(ctx, &fakeExec{loggedIn: true})
	assert.Contains(t, client, "logout")
	assert.Contains(t, client, "profile")
	assert.NotContains(t, client, "mygigs")

	freelancer := helpText(ctx, &fakeExec{loggedIn: true, freelancer: true})
	assert.Contains(t, freelancer, "mygigs")
	assert.Contains(t, freelancer, "create")
	assert.Contains(t, freelancer, "delete <id>")
}
