package session

import "context"

// Persister saves the buffer content.
type Persister interface {
	Save(ctx context.Context, path string, lines []string, trailingNewline bool) error
}

// Logger is the logging interface the session writes to.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// DefaultIndentChars are the characters auto-indent carries to a new line.
const DefaultIndentChars = " \t"

// Option configures a Session.
type Option func(*Session)

// WithAutoIndent enables or disables carrying leading blanks to the new
// line on split. It is enabled by default.
func WithAutoIndent(enabled bool) Option {
	return func(s *Session) {
		s.autoIndent = enabled
	}
}

// WithIndentChars sets the characters that count as leading blanks.
func WithIndentChars(chars string) Option {
	return func(s *Session) {
		s.indentChars = chars
	}
}

// WithPersister sets where saves go. Without one, saving fails.
func WithPersister(p Persister) Option {
	return func(s *Session) {
		s.persister = p
	}
}

// WithLogger sets the session logger.
func WithLogger(l Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithContext sets the context passed to the persister.
func WithContext(ctx context.Context) Option {
	return func(s *Session) {
		s.ctx = ctx
	}
}

// WithInvariantChecks verifies the cursor and viewport after every event
// and logs violations at error level.
func WithInvariantChecks(enabled bool) Option {
	return func(s *Session) {
		s.checkInvariants = enabled
	}
}
