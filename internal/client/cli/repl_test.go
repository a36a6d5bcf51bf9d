package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) rec(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.rec("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.rec("login")
}
func (f *fakeExec) Google(ctx context.Context) error        { return f.rec("google") }
func (f *fakeExec) ResetPassword(ctx context.Context) error { return f.rec("resetpw") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.rec("logout")
}
func (f *fakeExec) List(ctx context.Context) error         { return f.rec("list") }
func (f *fakeExec) Filter(ctx context.Context) error       { return f.rec("filter") }
func (f *fakeExec) ClearFilters(ctx context.Context) error { return f.rec("clearfilter") }
func (f *fakeExec) Page(ctx context.Context) error         { return f.rec("page") }
func (f *fakeExec) Refresh(ctx context.Context) error      { return f.rec("refresh") }
func (f *fakeExec) Add(ctx context.Context) error          { return f.rec("add") }
func (f *fakeExec) Edit(ctx context.Context) error         { return f.rec("edit") }
func (f *fakeExec) Show(ctx context.Context) error         { return f.rec("show") }
func (f *fakeExec) Delete(ctx context.Context) error       { return f.rec("delete") }
func (f *fakeExec) Publish(ctx context.Context) error      { return f.rec("publish") }
func (f *fakeExec) Share(ctx context.Context) error        { return f.rec("share") }
func (f *fakeExec) Public(ctx context.Context) error       { return f.rec("public") }
func (f *fakeExec) AddCategory(ctx context.Context) error  { return f.rec("addcategory") }
func (f *fakeExec) AddLabel(ctx context.Context) error     { return f.rec("addlabel") }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"add",
		"list",
		"filter",
		"page",
		"publish",
		"share",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "add", "list", "filter", "page", "publish", "share"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("bogus\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("list\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ShortListAlias(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("l\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
