// Package toolregistry holds the registered set of tools and dispatches
// inbound tool calls (spec.md §4.8 Tool Registry & Context).
package toolregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"docsfed.dev/query/runtime/session"
	"docsfed.dev/query/runtime/telemetry"
	"docsfed.dev/query/runtime/toolerrors"
)

// ContentItem is one block of a ToolResponse's content sequence.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResponse is the wire-level shape every tool handler returns.
type ToolResponse struct {
	Content  []ContentItem  `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// TextResponse builds a ToolResponse from plain text lines joined by
// newlines, a convenience used by every handler in this engine.
func TextResponse(lines []string, metadata map[string]any) ToolResponse {
	text := ""
	for i, l := range lines {
		if i > 0 {
			text += "\n"
		}
		text += l
	}
	return ToolResponse{Content: []ContentItem{{Type: "text", Text: text}}, Metadata: metadata}
}

// Handler is the signature every registered tool implements.
type Handler func(ctx context.Context, sess *session.State, args json.RawMessage) (ToolResponse, error)

// Definition is one registered tool: name, description, declared input
// schema, optional example payloads validated against that schema at
// registration time, an optional allow-list of callers, and the handler.
type Definition struct {
	Name           string
	Description    string
	InputSchema    json.RawMessage
	InputExamples  []json.RawMessage
	AllowedCallers []string
	Handler        Handler

	compiled *jsonschema.Schema
}

// Registry holds the ordered set of tool definitions and dispatches inbound
// calls by name.
type Registry struct {
	order   []string
	byName  map[string]*Definition
	sess    *session.State
	logger  telemetry.Logger
	metrics telemetry.Metrics
}

// New constructs an empty Registry bound to a session. A nil logger/metrics
// installs no-op implementations.
func New(sess *session.State, logger telemetry.Logger, metrics telemetry.Metrics) *Registry {
	if logger == nil {
		logger = telemetry.NewNoopLogger()
	}
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	return &Registry{byName: make(map[string]*Definition), sess: sess, logger: logger, metrics: metrics}
}

// Register compiles def's input schema and validates every declared example
// against it, failing fast at startup rather than at first call if a tool's
// own examples don't satisfy its own schema (spec.md §8 invariant #1).
func (r *Registry) Register(def Definition) error {
	if len(def.InputSchema) > 0 {
		compiled, err := compileSchema(def.Name, def.InputSchema)
		if err != nil {
			return fmt.Errorf("toolregistry: compile schema for %q: %w", def.Name, err)
		}
		def.compiled = compiled
		for i, example := range def.InputExamples {
			var doc any
			if err := json.Unmarshal(example, &doc); err != nil {
				return fmt.Errorf("toolregistry: unmarshal example %d for %q: %w", i, def.Name, err)
			}
			if err := compiled.Validate(doc); err != nil {
				return fmt.Errorf("toolregistry: example %d for %q fails its own schema: %w", i, def.Name, err)
			}
		}
	}

	stored := def
	r.byName[def.Name] = &stored
	r.order = append(r.order, def.Name)
	return nil
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Dispatch validates args against the named tool's schema, invokes its
// handler, and records a bounded telemetry entry regardless of outcome
// (spec.md §4.8).
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) (ToolResponse, error) {
	start := time.Now()
	def, ok := r.byName[name]
	if !ok {
		err := toolerrors.New(toolerrors.KindUnknownTool, fmt.Sprintf("unknown tool %q", name)).WithTool(name)
		r.record(name, "", start, err)
		return ToolResponse{}, err
	}

	if def.compiled != nil {
		var doc any
		if unmarshalErr := json.Unmarshal(args, &doc); unmarshalErr != nil {
			err := toolerrors.NewWithCause(toolerrors.KindInvalidArgs, "invalid JSON payload", unmarshalErr).WithTool(name)
			r.record(name, "", start, err)
			return ToolResponse{}, err
		}
		if validateErr := def.compiled.Validate(doc); validateErr != nil {
			err := toolerrors.NewWithCause(toolerrors.KindInvalidArgs, "payload does not satisfy input schema", validateErr).WithTool(name)
			r.record(name, "", start, err)
			return ToolResponse{}, err
		}
	}

	resp, handlerErr := def.Handler(ctx, r.sess, args)
	if handlerErr != nil {
		err := toolerrors.FromError(handlerErr).WithTool(name)
		r.record(name, "", start, err)
		return ToolResponse{}, err
	}

	r.record(name, "", start, nil)
	return resp, nil
}

func (r *Registry) record(name string, provider string, start time.Time, err error) {
	duration := time.Since(start)
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	if r.sess != nil {
		r.sess.RecordTelemetry(session.TelemetryEvent{
			Tool:      name,
			Duration:  duration,
			Err:       errMsg,
			Timestamp: start,
		})
	}
	r.metrics.RecordTimer("tool.duration", duration, "tool", name)
	if err != nil {
		r.metrics.IncCounter("tool.errors", 1, "tool", name)
	}
}

func compileSchema(name string, schema json.RawMessage) (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(schema, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	resourceName := name + ".schema.json"
	if err := c.AddResource(resourceName, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(resourceName)
}
