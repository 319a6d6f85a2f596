// Package live runs one server-side page session per page load. The page
// forwards scroll, layout and click events over a websocket; the session owns
// the navigation, theme and progress state and pushes the re-rendered header
// back after every event.
package live

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yashasviudayan/portfolio/internal/nav"
	"github.com/yashasviudayan/portfolio/internal/scroll"
	"github.com/yashasviudayan/portfolio/internal/section"
	"github.com/yashasviudayan/portfolio/internal/theme"
)

// Renderer writes the header fragment.
type Renderer interface {
	RenderHeader(w io.Writer, v nav.View, t theme.Theme) error
}

// Sender delivers a frame to the page. It is only called from the session's
// own goroutine.
type Sender func(Frame) error

// Session is the state of one page load. All state changes happen on the
// goroutine running Run.
type Session struct {
	ID    string
	route section.Route

	nav      *nav.Controller
	theme    *theme.Controller
	source   scroll.Source
	progress scroll.Indicator
	mount    *nav.Mount

	inbox   chan ClientMessage
	pending []func()
	done    chan struct{}

	renderer Renderer
	send     Sender
	logger   *zap.Logger
}

// NewSession builds a session for a page rendered on route. The theme
// controller is created here and handed to the header renderer on every
// frame.
func NewSession(route section.Route, links []section.NavLink, r Renderer, send Sender, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		ID:       id,
		route:    route,
		nav:      nav.NewController(route, links),
		theme:    theme.NewController(theme.Dark),
		inbox:    make(chan ClientMessage, 32),
		done:     make(chan struct{}),
		renderer: r,
		send:     send,
		logger:   logger.With(zap.String("session", id), zap.String("route", route.Path)),
	}
}

// Post queues msg for the session loop. It returns false once the session has
// stopped. A true result only means the message was queued: messages still
// queued when Run returns are discarded and counted in the exit log.
func (s *Session) Post(ctx context.Context, msg ClientMessage) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.inbox <- msg:
		return true
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// Done is closed when Run returns.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Run mounts the header, sends the initial frame and handles events until ctx
// is cancelled or sending fails. Every subscription is released before Run
// returns.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)

	s.mount = s.nav.Mount(&s.source, nil, s.dispatch)
	releaseProgress := s.progress.Mount(&s.source)
	releaseTheme := s.theme.Subscribe(func(t theme.Theme) {
		s.logger.Debug("theme changed", zap.Stringer("theme", t))
	})
	defer func() {
		releaseTheme()
		releaseProgress()
		s.mount.Release()
		s.pending = nil
		if n := s.discardQueued(); n > 0 {
			s.logger.Debug("discarded queued messages", zap.Int("count", n))
		}
	}()

	if err := s.flush(""); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case msg := <-s.inbox:
			navigate, err := s.handle(msg)
			if err != nil {
				if sendErr := s.send(Frame{Type: FrameError, Error: err.Error()}); sendErr != nil {
					return fmt.Errorf("send error frame: %w", sendErr)
				}
				continue
			}
			s.drain()
			if err := s.flush(navigate); err != nil {
				return err
			}
		}
	}
}

func (s *Session) discardQueued() int {
	n := 0
	for {
		select {
		case <-s.inbox:
			n++
		default:
			return n
		}
	}
}

// dispatch defers fn until the current event has been handled.
func (s *Session) dispatch(fn func()) {
	s.pending = append(s.pending, fn)
}

func (s *Session) drain() {
	for len(s.pending) > 0 {
		fn := s.pending[0]
		s.pending = s.pending[1:]
		fn()
	}
}

func (s *Session) handle(msg ClientMessage) (navigate string, err error) {
	switch msg.Type {
	case TypeScroll:
		s.source.Publish(msg.signal())
	case TypeLayout:
		s.mount.Observers.UpdateLayout(msg.layout())
	case TypeIntersect:
		id, ok := section.Parse(msg.ID)
		if !ok {
			return "", fmt.Errorf("intersect: unknown section %q", msg.ID)
		}
		s.mount.Observers.Forward(id, msg.Intersecting)
	case TypeMenu:
		s.nav.ToggleMobileMenu()
	case TypeSelect:
		id, _ := section.Parse(msg.ID)
		target, err := s.nav.SelectLink(id)
		if err != nil {
			return "", err
		}
		return target.Href(), nil
	case TypeTheme:
		s.theme.Toggle()
	case TypeResize:
		s.nav.SetNarrow(msg.Width > 0 && msg.Width < NarrowWidth)
	case typeMalformed:
		return "", ErrMalformed
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
	return "", nil
}

func (s *Session) flush(navigate string) error {
	var buf bytes.Buffer
	if err := s.renderer.RenderHeader(&buf, s.nav.View(), s.theme.Theme()); err != nil {
		return fmt.Errorf("render header: %w", err)
	}
	f := Frame{
		Type:     FrameState,
		Session:  s.ID,
		Nav:      buf.String(),
		Progress: s.progress.Width(),
		Theme:    s.theme.Theme().String(),
		Navigate: navigate,
	}
	if err := s.send(f); err != nil {
		return fmt.Errorf("send frame: %w", err)
	}
	return nil
}

// Subscriptions is the number of live scroll and theme subscriptions. It drops
// to zero once Run has returned.
func (s *Session) Subscriptions() int {
	return s.source.Len() + s.theme.Subscribers()
}

// State exposes the navigation state for tests and logging.
func (s *Session) State() nav.State {
	return s.nav.State()
}
