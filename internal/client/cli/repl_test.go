package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Contests(ctx context.Context) error {
	f.calls = append(f.calls, "contests")
	return nil
}
func (f *fakeExec) Problems(ctx context.Context) error {
	f.calls = append(f.calls, "problems")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search")
	f.arg = query
	return nil
}
func (f *fakeExec) Tag(ctx context.Context, tag string) error {
	f.calls = append(f.calls, "tag")
	f.arg = tag
	return nil
}
func (f *fakeExec) Statement(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "statement")
	return nil
}
func (f *fakeExec) Submit(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "submit")
	return nil
}
func (f *fakeExec) History(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "subs")
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Credentials(ctx context.Context) error {
	f.calls = append(f.calls, "apikey")
	return nil
}

func runScript(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()

	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_Dispatch(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec,
		"help",
		"login",
		"contests",
		"problems",
		"search two sum",
		"statement 1234 A",
		"submit 1234 A",
		"subs 1234 A",
		"profile",
		"foobar",
		"exit",
	)

	want := []string{"login", "contests", "problems", "search", "statement", "submit", "subs", "profile"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("calls[%d] = %q, want %q", i, exec.calls[i], c)
		}
	}
	if exec.arg != "two sum" {
		t.Fatalf("search arg = %q, want %q", exec.arg, "two sum")
	}
}

func TestRunREPL_ProfileRequiresLogin(t *testing.T) {
	exec := &fakeExec{loggedIn: false}
	runScript(t, exec, "profile", "exit")

	if len(exec.calls) != 0 {
		t.Fatalf("profile dispatched while signed out: %+v", exec.calls)
	}
}

func TestRunREPL_TagRequiresArgument(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "tag", "tag dp", "exit")

	if len(exec.calls) != 1 || exec.calls[0] != "tag" {
		t.Fatalf("calls = %+v, want exactly one tag call", exec.calls)
	}
	if exec.arg != "dp" {
		t.Fatalf("tag arg = %q, want %q", exec.arg, "dp")
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "contests")

	if len(exec.calls) != 1 {
		t.Fatalf("calls = %+v", exec.calls)
	}
}
