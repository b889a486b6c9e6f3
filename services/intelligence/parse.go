package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"
)

// unmarshalLLMJSON pulls the first JSON object out of model output and
// unmarshals it. Models frequently wrap JSON in markdown fences or prose.
func unmarshalLLMJSON(raw string, v any) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return fmt.Errorf("no JSON object in model output")
	}
	return json.Unmarshal([]byte(raw[start:end+1]), v)
}
