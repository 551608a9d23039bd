// Package toolerrors provides the structured error kinds the query engine
// reports at the tool-call boundary. Internal sentinels (cache miss, not
// found, parse failure) are defined close to the packages that raise them;
// this package carries the protocol-facing shape every tool handler returns.
package toolerrors

import (
	"errors"
	"fmt"
)

// Kind discriminates the tool-facing error categories from spec.md §7.
type Kind string

const (
	// KindNotFound means a specific path or identifier does not exist upstream.
	KindNotFound Kind = "not_found"
	// KindUpstream means the upstream HTTP call failed or timed out.
	KindUpstream Kind = "upstream"
	// KindParse means an upstream payload could not be decoded.
	KindParse Kind = "parse"
	// KindInvalidArgs means the tool call payload failed schema or semantic validation.
	KindInvalidArgs Kind = "invalid_args"
	// KindUnknownTool means the registry has no handler for the requested tool name.
	KindUnknownTool Kind = "unknown_tool"
	// KindExecution wraps an otherwise-uncategorized handler failure.
	KindExecution Kind = "execution"
)

// ToolError is a structured tool failure that preserves message, kind, and
// causal context while still implementing the standard error interface.
// Errors may be nested via Cause, supporting errors.Is/As across wraps.
type ToolError struct {
	Kind    Kind
	Tool    string
	Message string
	Cause   *ToolError
}

// New constructs a ToolError of the given kind.
func New(kind Kind, message string) *ToolError {
	if message == "" {
		message = string(kind)
	}
	return &ToolError{Kind: kind, Message: message}
}

// NewWithCause constructs a ToolError that wraps an underlying error. The
// cause is converted into a ToolError chain so metadata survives even when
// the original error type is lost.
func NewWithCause(kind Kind, message string, cause error) *ToolError {
	if message == "" && cause != nil {
		message = cause.Error()
	}
	return &ToolError{Kind: kind, Message: message, Cause: FromError(cause)}
}

// WithTool annotates the error with the tool name for telemetry, per spec.md
// §7's Execution{source, tool} shape.
func (e *ToolError) WithTool(tool string) *ToolError {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Tool = tool
	return &cp
}

// FromError converts an arbitrary error into a ToolError chain.
func FromError(err error) *ToolError {
	if err == nil {
		return nil
	}
	var te *ToolError
	if errors.As(err, &te) {
		return te
	}
	return &ToolError{Kind: KindExecution, Message: err.Error(), Cause: FromError(errors.Unwrap(err))}
}

// Errorf formats according to a format specifier and returns a ToolError of
// kind Execution.
func Errorf(format string, args ...any) *ToolError {
	return New(KindExecution, fmt.Sprintf(format, args...))
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e == nil {
		return ""
	}
	if e.Tool != "" {
		return fmt.Sprintf("%s: %s: %s", e.Tool, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying ToolError to support errors.Is/As.
func (e *ToolError) Unwrap() error {
	if e == nil || e.Cause == nil {
		return nil
	}
	return e.Cause
}
