package cli

import (
	"context"

	"github.com/cforge/cforge/internal/client/api"
)

// Login prompts for a handle, verifies it against the platform and starts
// the session. The handle is the sole credential; an unknown handle is
// reported and leaves the current session untouched.
func (a *App) Login(ctx context.Context) error {
	handle, err := GetSimpleText(a.reader, "Enter your handle", a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	sess, err := a.auth.SignIn(ctx, handle)
	if err != nil {
		printlnFn(api.UserMessage(err))
		return err
	}

	a.session = sess
	printlnFn("Signed in as", sess.Handle)
	return nil
}
