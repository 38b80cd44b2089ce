// Package hook implements the six lifecycle entry points the host framework
// invokes during an authentication transaction.
//
// Five entry points abstain unconditionally: the module is observational and
// never asserts an access-control decision of its own. Only the session-open
// hook carries behavior - it relays a login notification - and even its
// success is reported as Ignore, deferring the decision to the rest of the
// host's stack.
package hook

import (
	"context"
	"log/slog"

	"github.com/pamnotify-dev/pamnotify/application/item"
	"github.com/pamnotify-dev/pamnotify/application/relay"
	"github.com/pamnotify-dev/pamnotify/config"
	"github.com/pamnotify-dev/pamnotify/domain/entities"
	"github.com/pamnotify-dev/pamnotify/domain/errors"
	"github.com/pamnotify-dev/pamnotify/domain/ports"
	"github.com/pamnotify-dev/pamnotify/log"
)

// Version of the module.
const Version = "0.1.0"

// Module holds the wiring for the lifecycle hooks. It is stateless across
// invocations: nothing is cached between calls and concurrent transactions
// are independent.
type Module struct {
	notifier *relay.Notifier
	log      *slog.Logger
}

// Option is a functional option for configuring a Module.
type Option func(*Module)

// WithNotifier sets the notifier used by the session-open hook.
func WithNotifier(n *relay.Notifier) Option {
	return func(m *Module) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithLogger sets the module logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.log = l
		}
	}
}

// New creates a Module with the given options applied over defaults.
func New(opts ...Option) *Module {
	m := &Module{}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.New(log.NewHandler(nil))
	}
	if m.notifier == nil {
		m.notifier = relay.New(relay.WithLogger(m.log))
	}
	return m
}

// FromOptions builds a Module from validated configuration.
func FromOptions(o config.Options) *Module {
	logger := slog.New(log.NewHandler(nil, log.WithLevel(o.Level())))
	return New(
		WithLogger(logger),
		WithNotifier(relay.New(
			relay.WithEndpoint(o.Endpoint),
			relay.WithUserAgent(o.UserAgent),
			relay.WithTimeout(o.Timeout()),
			relay.WithLogger(logger),
		)),
	)
}

// AcctMgmt handles the account-management stage. Always abstains.
func (m *Module) AcctMgmt(_ context.Context, _ ports.Session, _ entities.Flags, _ []string) entities.ResultCode {
	return entities.Ignore
}

// Authenticate handles the authentication stage. Always abstains.
func (m *Module) Authenticate(_ context.Context, _ ports.Session, _ entities.Flags, _ []string) entities.ResultCode {
	return entities.Ignore
}

// Chauthtok handles the credential-change stage. Always abstains.
func (m *Module) Chauthtok(_ context.Context, _ ports.Session, _ entities.Flags, _ []string) entities.ResultCode {
	return entities.Ignore
}

// CloseSession handles the session-close stage. Always abstains.
func (m *Module) CloseSession(_ context.Context, _ ports.Session, _ entities.Flags, _ []string) entities.ResultCode {
	return entities.Ignore
}

// SetCred handles the credential-set stage. Always abstains.
func (m *Module) SetCred(_ context.Context, _ ports.Session, _ entities.Flags, _ []string) entities.ResultCode {
	return entities.Ignore
}

// OpenSession relays a login notification for the opening session and then
// abstains. Attribute-retrieval failures surface the host's own code;
// delivery failures collapse per the relay's mapping. The args list is part
// of the host contract shape but carries no options for this module.
func (m *Module) OpenSession(ctx context.Context, sess ports.Session, flags entities.Flags, _ []string) entities.ResultCode {
	user, err := item.User(sess)
	if err != nil {
		return errors.CodeOf(err)
	}
	rhost, err := item.RemoteHost(sess)
	if err != nil {
		return errors.CodeOf(err)
	}

	event := entities.LoginEvent{User: user, RemoteHost: rhost}
	if flags&entities.Silent == 0 {
		m.log.Debug("session open", "user", event.User, "rhost", event.RemoteHost)
	}

	if err := m.notifier.Send(ctx, sess, event.Message()); err != nil {
		return errors.CodeOf(err)
	}
	return entities.Ignore
}
