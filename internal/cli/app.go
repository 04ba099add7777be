// Package cli holds the notecraft command-line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"notecraft-be/internal/config"
	"notecraft-be/pkg/client"
	"notecraft-be/pkg/store"

	"github.com/fatih/color"
)

var (
	ErrNoToken   = errors.New("no token: pass --token or set NOTECRAFT_TOKEN")
	ErrNoMatch   = errors.New("no item matches that id")
	ErrAmbiguous = errors.New("id prefix matches more than one item")
)

// App is the composition point for one command run: one gateway, one
// store, one notifier.
type App struct {
	cfg      *config.ClientConfig
	out      io.Writer
	client   *client.Client
	store    *store.Store
	failures atomic.Int32
}

func (a *App) Notify(message string) {
	a.failures.Add(1)
	color.New(color.FgRed).Fprintf(a.out, "x %s\n", message)
}

// load signs the store in and waits for the four collections.
func (a *App) load(ctx context.Context) error {
	if a.cfg.Token == "" {
		return ErrNoToken
	}
	a.client = client.New(a.cfg.APIURL, a.cfg.Token)
	a.store = store.New(a.client, a, store.WithContext(ctx))

	a.store.SetAuthStatus(store.AuthAuthenticated)
	a.store.Wait()
	if n := a.failures.Load(); n > 0 {
		return fmt.Errorf("could not load data (%d request(s) failed)", n)
	}
	return nil
}

// finish waits for background calls and turns reported failures into an
// exit error.
func (a *App) finish() error {
	a.store.Wait()
	if n := a.failures.Load(); n > 0 {
		return fmt.Errorf("%d operation(s) failed", n)
	}
	return nil
}

func (a *App) success(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(a.out, format+"\n", args...)
}

// resolve finds the one id in ids that starts with prefix.
func resolve(ids []string, prefix string) (string, error) {
	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", ErrAmbiguous
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrNoMatch, prefix)
	}
	return match, nil
}

func (a *App) resolveNote(prefix string) (string, error) {
	notes := a.store.Snapshot().Notes
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.Id)
	}
	return resolve(ids, prefix)
}

func (a *App) resolveTodo(prefix string) (string, error) {
	todos := a.store.Snapshot().Todos
	ids := make([]string, 0, len(todos))
	for _, t := range todos {
		ids = append(ids, t.Id)
	}
	return resolve(ids, prefix)
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
