package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// FinalAnswerAction is the action name that ends an agent run.
const FinalAnswerAction = "Final Answer"

// ErrOutputParse is returned when model output contains a fenced action blob
// that cannot be decoded.
var ErrOutputParse = errors.New("could not parse agent output")

// Step is the result of parsing one model reply: exactly one of Action or
// Finish is non-nil.
type Step struct {
	Action *Action
	Finish *Finish
}

// Action asks the executor to run a tool. Log is the raw model text that
// produced it and is replayed in the scratchpad.
type Action struct {
	Tool  string
	Input any
	Log   string
}

// Finish carries the final answer for the user.
type Finish struct {
	Output string
	Log    string
}

// actionBlobPattern finds a fenced block, optionally tagged json, whose
// content starts with a non-word character (the opening brace or bracket).
var actionBlobPattern = regexp.MustCompile("(?s)```(?:json\\s+)?(\\W.*?)```")

type actionBlob struct {
	Action      *string `json:"action"`
	ActionInput any     `json:"action_input"`
}

// ParseAgentOutput interprets a model reply written in the structured chat
// format. A fenced JSON blob names either a tool or "Final Answer"; when the
// blob is a list only its first element is used. Text without any fenced
// blob is taken as the final answer verbatim.
func ParseAgentOutput(text string) (Step, error) {
	match := actionBlobPattern.FindStringSubmatch(text)
	if match == nil {
		return Step{Finish: &Finish{Output: strings.TrimSpace(text), Log: text}}, nil
	}

	raw := strings.TrimSpace(match[1])
	blob, err := decodeActionBlob(raw)
	if err != nil {
		return Step{}, fmt.Errorf("%w: %w", ErrOutputParse, err)
	}
	if blob.Action == nil {
		return Step{}, fmt.Errorf("%w: missing \"action\" key", ErrOutputParse)
	}

	if *blob.Action == FinalAnswerAction {
		return Step{Finish: &Finish{Output: InputString(blob.ActionInput), Log: text}}, nil
	}

	input := blob.ActionInput
	if input == nil {
		input = map[string]any{}
	}
	return Step{Action: &Action{Tool: *blob.Action, Input: input, Log: text}}, nil
}

func decodeActionBlob(raw string) (actionBlob, error) {
	if strings.HasPrefix(raw, "[") {
		var list []actionBlob
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return actionBlob{}, err
		}
		if len(list) == 0 {
			return actionBlob{}, errors.New("empty action list")
		}
		return list[0], nil
	}

	var blob actionBlob
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		return actionBlob{}, err
	}
	return blob, nil
}

// InputString flattens an action_input value to the string a single-input
// tool expects. Strings pass through; objects yield their "query" or "input"
// field, else their only field; anything else is JSON-encoded.
func InputString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		for _, key := range []string{"query", "input"} {
			if s, ok := t[key].(string); ok {
				return s
			}
		}
		if len(t) == 1 {
			for _, only := range t {
				if s, ok := only.(string); ok {
					return s
				}
			}
		}
		if len(t) == 0 {
			return ""
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
