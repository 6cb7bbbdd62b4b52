// Package agent runs the tool-using conversation loop. The model answers in
// the structured chat format, one JSON action per turn, and the executor feeds
// tool observations back until the model produces a final answer.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen11/chatbot-service/internal/domain/chat"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Compile-time check that Executor implements ports.Agent.
var _ ports.Agent = (*Executor)(nil)

// ErrIterationLimit is returned when the model has not produced a final answer
// after the configured number of steps.
var ErrIterationLimit = errors.New("agent stopped due to iteration limit")

// invalidResponseObservation is fed back when a reply cannot be parsed, so the
// model gets a chance to correct its format.
const invalidResponseObservation = "Invalid or incomplete response"

// Run outcomes recorded on the chat.agent.iterations histogram.
const (
	outcomeFinalAnswer    = "final_answer"
	outcomeIterationLimit = "iteration_limit"
	outcomeError          = "error"
)

// Executor drives the reasoning loop for a single user input.
// It holds no per-conversation state and is safe for concurrent use.
type Executor struct {
	llm           ports.LLMClient
	tools         map[string]ports.Tool
	ordered       []ports.Tool
	maxIterations int
	metrics       *telemetry.Metrics
	logger        *slog.Logger
}

// NewExecutor creates an Executor over the given tools. Tool names must be
// unique; a later tool with the same name replaces an earlier one.
// maxIterations below 1 is treated as 1. A nil logger is replaced with a
// discarding one and a nil metrics disables recording.
func NewExecutor(llm ports.LLMClient, tools []ports.Tool, maxIterations int, metrics *telemetry.Metrics, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if maxIterations < 1 {
		maxIterations = 1
	}

	byName := make(map[string]ports.Tool, len(tools))
	ordered := make([]ports.Tool, 0, len(tools))
	for _, t := range tools {
		if _, dup := byName[t.Name()]; !dup {
			ordered = append(ordered, t)
		}
		byName[t.Name()] = t
	}
	for i, t := range ordered {
		ordered[i] = byName[t.Name()]
	}

	return &Executor{
		llm:           llm,
		tools:         byName,
		ordered:       ordered,
		maxIterations: maxIterations,
		metrics:       metrics,
		logger:        logger,
	}
}

// Run answers input given the prior conversation. It returns the model's
// final answer, ErrIterationLimit when the step budget runs out, or the
// wrapped LLM error when the model cannot be reached.
func (e *Executor) Run(ctx context.Context, input string, history []chat.Message) (string, error) {
	ctx, span := otel.Tracer("agent").Start(ctx, "agent.Run")
	defer span.End()

	system := chat.SystemMessage(systemPrompt(e.ordered))
	opts := ports.ChatOptions{Stop: []string{stopSequence}}

	var scratchpad strings.Builder
	for step := 1; step <= e.maxIterations; step++ {
		msgs := make([]chat.Message, 0, len(history)+2)
		msgs = append(msgs, system)
		msgs = append(msgs, history...)
		msgs = append(msgs, chat.UserMessage(humanMessage(input, scratchpad.String())))

		reply, err := e.llm.Chat(ctx, msgs, opts)
		if err != nil {
			e.metrics.RecordAgentRun(ctx, step, outcomeError)
			span.RecordError(err)
			span.SetStatus(codes.Error, "llm call failed")
			return "", fmt.Errorf("agent step %d: %w", step, err)
		}

		parsed, err := chat.ParseAgentOutput(reply)
		if err != nil {
			e.logger.WarnContext(ctx, "unparseable agent output",
				slog.Int("step", step),
				slog.Any("error", err),
			)
			scratchpad.WriteString(scratchpadEntry(reply, invalidResponseObservation))
			continue
		}

		if parsed.Finish != nil {
			e.metrics.RecordAgentRun(ctx, step, outcomeFinalAnswer)
			span.SetAttributes(attribute.Int("agent.steps", step))
			return parsed.Finish.Output, nil
		}

		observation := e.invoke(ctx, parsed.Action)
		scratchpad.WriteString(scratchpadEntry(parsed.Action.Log, observation))
	}

	e.metrics.RecordAgentRun(ctx, e.maxIterations, outcomeIterationLimit)
	span.SetAttributes(attribute.Int("agent.steps", e.maxIterations))
	span.SetStatus(codes.Error, ErrIterationLimit.Error())
	return "", ErrIterationLimit
}

// invoke runs the requested tool and returns the observation text. Failures
// become observations so the model can recover from them.
func (e *Executor) invoke(ctx context.Context, action *chat.Action) string {
	t, ok := e.tools[action.Tool]
	if !ok {
		e.metrics.RecordToolInvocation(ctx, action.Tool, "unknown_tool")
		e.logger.WarnContext(ctx, "agent requested unknown tool", slog.String("tool", action.Tool))
		return fmt.Sprintf("%s is not a valid tool, try one of [%s].",
			action.Tool, strings.Join(toolNames(e.ordered), ", "))
	}

	input := chat.InputString(action.Input)
	e.logger.DebugContext(ctx, "invoking tool",
		slog.String("tool", t.Name()),
		slog.String("input", input),
	)

	out, err := t.Run(ctx, input)
	if err != nil {
		e.metrics.RecordToolInvocation(ctx, t.Name(), "error")
		e.logger.WarnContext(ctx, "tool failed",
			slog.String("tool", t.Name()),
			slog.Any("error", err),
		)
		return err.Error()
	}

	e.metrics.RecordToolInvocation(ctx, t.Name(), "success")
	return out
}
