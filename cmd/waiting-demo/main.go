// ABOUTME: Demo binary: two nested waiting overlays over a text layout
// ABOUTME: Simulated operations fire through the scope chain; press q to quit

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/devobs/waiting-indicator/internal/config"
	"github.com/devobs/waiting-indicator/internal/log"
	"github.com/devobs/waiting-indicator/pkg/tui"
	"github.com/devobs/waiting-indicator/pkg/tui/theme"
	"github.com/devobs/waiting-indicator/pkg/waiting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settingsPath := flag.String("settings", defaultSettingsPath(), "path to the demo settings file")
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}

	settings, err := config.Load(*settingsPath)
	if err != nil {
		return err
	}
	if settings.Debug {
		log.SetLevel(log.LevelDebug)
	}
	theme.Set(theme.Lookup(settings.Theme))

	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()

	screen := tui.NewScreen(os.Stdout, w, h)
	scope := waiting.NewScope(screen.RequestRender)

	var innerScope *waiting.Scope
	outer := waiting.NewOverlay(scope, waiting.Options{
		Duration:                 waiting.Ptr(settings.FadeDuration()),
		DisplayChildWhileWaiting: waiting.Ptr(settings.DisplayChild()),
	}, func(s *waiting.Scope) tui.Component {
		root := tui.NewContainer()
		root.Add(tui.NewText("waiting-indicator demo — q quits\n"))

		inner := waiting.NewOverlay(s, waiting.Options{
			Duration: waiting.Ptr(120 * time.Millisecond),
		}, func(is *waiting.Scope) tui.Component {
			innerScope = is
			body := tui.NewContainer()
			body.Add(tui.NewText("inner panel: fast fade, inherits the rest\n"))
			body.Add(waiting.NewIndicator(is))
			return body
		})
		root.Add(inner)
		return root
	})
	defer outer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	screen.Root().Add(outer)
	screen.Root().Add(&quitKeys{quit: cancel})
	screen.Start()
	defer screen.Stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return simulate(ctx, innerScope, 1500*time.Millisecond, 2*time.Second) })
	g.Go(func() error { return simulate(ctx, outer.Controller().Scope(), 3*time.Second, 5*time.Second) })
	g.Go(func() error {
		defer cancel()
		return readKeys(ctx, screen)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// simulate runs a fake tracked operation of length work every idle period.
func simulate(ctx context.Context, s *waiting.Scope, work, idle time.Duration) error {
	for {
		_, err := waiting.Wait(ctx, s, func(ctx context.Context) (any, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(work):
				return nil, nil
			}
		})
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(idle):
		}
	}
}

// quitKeys is an invisible component that turns q or ctrl-c into a
// shutdown request.
type quitKeys struct {
	quit context.CancelFunc
}

func (k *quitKeys) Render(*tui.RenderBuffer, int) {}
func (k *quitKeys) Invalidate()                   {}

func (k *quitKeys) HandleInput(data string) bool {
	if data == "q" || data == "\x03" {
		k.quit()
		return true
	}
	return false
}

// readKeys feeds stdin into the screen's input dispatch until the
// context is cancelled.
func readKeys(ctx context.Context, screen *tui.Screen) error {
	buf := make([]byte, 64)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return err
		}
		if n > 0 {
			screen.HandleInput(string(buf[:n]))
		}
	}
}

func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "waiting-demo.yaml"
	}
	return filepath.Join(home, ".config", "waiting-demo", "settings.yaml")
}
