// Package logging provides a minimal logging facade for the secretshare
// module.
//
// This package defines a Logger interface that wraps a subset of the
// standard library's log/slog functionality. The interface is intentionally
// small to allow applications to provide custom implementations for
// testing, redaction, or integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/coinbase/go-secretshare/pkg/secretshare/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Redaction Support
//
// The package provides utilities for redacting sensitive information:
//
//	// Mark an attribute as redacted
//	logger.Info(ctx, "share assigned", logging.Redacted("value"))
//	// Logs: value="[redacted]"
//
//	// Get the redaction placeholder
//	placeholder := logging.Placeholder() // Returns "[redacted]"
//
// # Usage with Configuration
//
// A Logger can be attached to a Split or Modify call via
// secretshare.WithLogger, so those calls can be observed without ever
// logging the secret or a share value in the clear (Restore takes no
// options and does not log):
//
//	logger := logging.New(nil)
//	cfg, err := secretshare.New(modulus, "T2(a,b,c)")
//	parts, err := cfg.Split(secret, secretshare.WithLogger(logger))
//
// # Custom Implementations
//
// Applications can provide custom Logger implementations:
//
//	type customLogger struct {
//	    // ... your fields
//	}
//
//	func (l *customLogger) Debug(ctx context.Context, msg string, args ...any) {
//	    // Custom debug logic
//	}
//	// ... implement other methods
//
//	logger := &customLogger{}
//
// # Security Considerations
//
//   - Never log a secret, a share value, or an RNG seed in the clear
//   - Use logging.Redacted() to mark sensitive attributes
//   - Participant names and formula text are not secret and may be logged
//   - Ensure log storage is secure and access-controlled
package logging
