package agent_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/chatbot-service/internal/app/agent"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/domain/chat"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
	"github.com/jsamuelsen11/chatbot-service/mocks"
)

func actionReply(tool, input string) string {
	return "Thought: use a tool\nAction:\n```json\n{\"action\": \"" + tool + "\", \"action_input\": \"" + input + "\"}\n```"
}

func finalReply(answer string) string {
	return actionReply(chat.FinalAnswerAction, answer)
}

func newTool(t *testing.T, name string) *mocks.MockTool {
	t.Helper()
	tool := mocks.NewMockTool(t)
	tool.EXPECT().Name().Return(name).Maybe()
	tool.EXPECT().Description().Return(name + " tool").Maybe()
	tool.EXPECT().Args().Return(nil).Maybe()
	return tool
}

func lastUserMessage(msgs []chat.Message) string {
	return msgs[len(msgs)-1].Content
}

func TestExecutor_DirectFinalAnswer(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	wiki := newTool(t, "Wikipedia")
	exec := agent.NewExecutor(llm, []ports.Tool{wiki}, 5, nil, nil)

	history := []chat.Message{chat.UserMessage("hi"), chat.AssistantMessage("hello")}

	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs []chat.Message, opts ports.ChatOptions) (string, error) {
			require.Len(t, msgs, 4)
			assert.Equal(t, chat.RoleSystem, msgs[0].Role)
			assert.Contains(t, msgs[0].Content, "Wikipedia: Wikipedia tool, args: {}")
			assert.Contains(t, msgs[0].Content, `Valid "action" values: "Final Answer" or Wikipedia`)
			assert.Equal(t, history, msgs[1:3])
			assert.Equal(t, "What is Go?\n\n\n (reminder to respond in a JSON blob no matter what)", lastUserMessage(msgs))
			assert.Equal(t, []string{"\nObservation"}, opts.Stop)
			return finalReply("A programming language."), nil
		})

	got, err := exec.Run(context.Background(), "What is Go?", history)
	require.NoError(t, err)
	assert.Equal(t, "A programming language.", got)
}

func TestExecutor_PlainTextIsFinalAnswer(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	exec := agent.NewExecutor(llm, nil, 5, nil, nil)

	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).Return("Hello there!", nil)

	got, err := exec.Run(context.Background(), "hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", got)
}

func TestExecutor_ToolObservationFeedsScratchpad(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	wiki := newTool(t, "Wikipedia")
	clock := newTool(t, "Time")
	exec := agent.NewExecutor(llm, []ports.Tool{wiki, clock}, 5, nil, nil)

	first := actionReply("Wikipedia", "Alan Turing")
	wiki.EXPECT().Run(mock.Anything, "Alan Turing").Return("Alan Turing was a mathematician.", nil).Once()

	var calls int
	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs []chat.Message, _ ports.ChatOptions) (string, error) {
			calls++
			if calls == 1 {
				return first, nil
			}
			want := "Who was Alan Turing?\n\n" + first +
				"\nObservation: Alan Turing was a mathematician.\nThought: " +
				"\n (reminder to respond in a JSON blob no matter what)"
			assert.Equal(t, want, lastUserMessage(msgs))
			return finalReply("A mathematician."), nil
		})

	got, err := exec.Run(context.Background(), "Who was Alan Turing?", nil)
	require.NoError(t, err)
	assert.Equal(t, "A mathematician.", got)
	assert.Equal(t, 2, calls)
}

func TestExecutor_UnknownToolObservation(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	exec := agent.NewExecutor(llm, []ports.Tool{newTool(t, "Wikipedia"), newTool(t, "Time")}, 5, nil, nil)

	var calls int
	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs []chat.Message, _ ports.ChatOptions) (string, error) {
			calls++
			if calls == 1 {
				return actionReply("Calculator", "2+2"), nil
			}
			assert.Contains(t, lastUserMessage(msgs),
				"Observation: Calculator is not a valid tool, try one of [Wikipedia, Time].")
			return finalReply("4"), nil
		})

	got, err := exec.Run(context.Background(), "2+2?", nil)
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

func TestExecutor_ParseErrorObservation(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	exec := agent.NewExecutor(llm, nil, 5, nil, nil)

	broken := "Action:\n```json\n{\"action\": \"Time\",\n```"

	var calls int
	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs []chat.Message, _ ports.ChatOptions) (string, error) {
			calls++
			if calls == 1 {
				return broken, nil
			}
			assert.Contains(t, lastUserMessage(msgs), broken+"\nObservation: Invalid or incomplete response\nThought: ")
			return finalReply("done"), nil
		})

	got, err := exec.Run(context.Background(), "time?", nil)
	require.NoError(t, err)
	assert.Equal(t, "done", got)
}

func TestExecutor_ToolErrorBecomesObservation(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	wiki := newTool(t, "Wikipedia")
	exec := agent.NewExecutor(llm, []ports.Tool{wiki}, 5, nil, nil)

	wiki.EXPECT().Run(mock.Anything, "Go").Return("", errors.New("boom"))

	var calls int
	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs []chat.Message, _ ports.ChatOptions) (string, error) {
			calls++
			if calls == 1 {
				return actionReply("Wikipedia", "Go"), nil
			}
			assert.Contains(t, lastUserMessage(msgs), "\nObservation: boom\nThought: ")
			return finalReply("unknown"), nil
		})

	_, err := exec.Run(context.Background(), "Go?", nil)
	require.NoError(t, err)
}

func TestExecutor_IterationLimit(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	clock := newTool(t, "Time")
	exec := agent.NewExecutor(llm, []ports.Tool{clock}, 3, nil, nil)

	clock.EXPECT().Run(mock.Anything, "").Return("2026-01-01 09:00 AM", nil).Times(3)
	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).Return(actionReply("Time", ""), nil).Times(3)

	_, err := exec.Run(context.Background(), "time?", nil)
	require.ErrorIs(t, err, agent.ErrIterationLimit)
}

func TestExecutor_LLMErrorAborts(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	exec := agent.NewExecutor(llm, nil, 5, nil, nil)

	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).Return("", domain.ErrUnavailable).Once()

	_, err := exec.Run(context.Background(), "hi", nil)
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.False(t, errors.Is(err, agent.ErrIterationLimit))
}

func TestExecutor_MinimumOneIteration(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	exec := agent.NewExecutor(llm, nil, 0, nil, nil)

	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).
		Return("```json\n{\"action\": \"Nope\", \"action_input\": \"\"}\n```", nil).Once()

	_, err := exec.Run(context.Background(), "hi", nil)
	require.ErrorIs(t, err, agent.ErrIterationLimit)
}

func TestExecutor_ObjectInputFlattened(t *testing.T) {
	t.Parallel()

	llm := mocks.NewMockLLMClient(t)
	wiki := newTool(t, "Wikipedia")
	exec := agent.NewExecutor(llm, []ports.Tool{wiki}, 5, nil, nil)

	wiki.EXPECT().Run(mock.Anything, "Rome").Return("Rome is a city.", nil)

	var calls int
	llm.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs []chat.Message, _ ports.ChatOptions) (string, error) {
			calls++
			if calls == 1 {
				return "```json\n{\"action\": \"Wikipedia\", \"action_input\": {\"query\": \"Rome\"}}\n```", nil
			}
			assert.True(t, strings.Contains(lastUserMessage(msgs), "Observation: Rome is a city."))
			return finalReply("A city."), nil
		})

	got, err := exec.Run(context.Background(), "Rome?", nil)
	require.NoError(t, err)
	assert.Equal(t, "A city.", got)
}
