package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

const systemPromptTemplate = `Respond to the human as helpfully and accurately as possible. You have access to the following tools:

%s

Use a json blob to specify a tool by providing an action key (tool name) and an action_input key (tool input).

Valid "action" values: "Final Answer" or %s

Provide only ONE action per $JSON_BLOB, as shown:

` + "```" + `
{
  "action": $TOOL_NAME,
  "action_input": $INPUT
}
` + "```" + `

Follow this format:

Question: input question to answer
Thought: consider previous and subsequent steps
Action:
` + "```" + `
$JSON_BLOB
` + "```" + `
Observation: action result
... (repeat Thought/Action/Observation N times)
Thought: I know what to respond
Action:
` + "```" + `
{
  "action": "Final Answer",
  "action_input": "Final response to human"
}

Begin! Reminder to ALWAYS respond with a valid json blob of a single action. Use tools if necessary. Respond directly if appropriate. Format is Action:` + "```$JSON_BLOB```" + `then Observation`

const (
	humanReminder     = "\n (reminder to respond in a JSON blob no matter what)"
	observationPrefix = "Observation: "
	thoughtPrefix     = "Thought: "
)

// stopSequence keeps the model from writing the observation itself.
const stopSequence = "\nObservation"

func systemPrompt(tools []ports.Tool) string {
	lines := make([]string, 0, len(tools))
	for _, t := range tools {
		lines = append(lines, fmt.Sprintf("%s: %s, args: %s", t.Name(), t.Description(), renderArgs(t.Args())))
	}
	return fmt.Sprintf(systemPromptTemplate, strings.Join(lines, "\n"), strings.Join(toolNames(tools), ", "))
}

func renderArgs(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	b, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func humanMessage(input, scratchpad string) string {
	return input + "\n\n" + scratchpad + humanReminder
}

// scratchpadEntry replays one model turn together with what the executor
// observed in response.
func scratchpadEntry(log, observation string) string {
	return log + "\n" + observationPrefix + observation + "\n" + thoughtPrefix
}

func toolNames(tools []ports.Tool) []string {
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name())
	}
	return names
}
