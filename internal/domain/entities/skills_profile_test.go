package entities

import (
	"encoding/json"
	"testing"
)

func TestToolUsageUnmarshalPlainString(t *testing.T) {
	var tool ToolUsage
	if err := json.Unmarshal([]byte(`"ChatGPT"`), &tool); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if tool.Name != "ChatGPT" || tool.Proficiency != "" {
		t.Fatalf("unexpected tool %+v", tool)
	}
}

func TestToolUsageUnmarshalObject(t *testing.T) {
	var tool ToolUsage
	if err := json.Unmarshal([]byte(`{"name":"Copilot","proficiency":"advanced"}`), &tool); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if tool.Name != "Copilot" || tool.Proficiency != "advanced" {
		t.Fatalf("unexpected tool %+v", tool)
	}
}

func TestToolUsageUnmarshalMixedList(t *testing.T) {
	var tools []ToolUsage
	data := []byte(`["ChatGPT", {"name":"Copilot","proficiency":"expert"}]`)
	if err := json.Unmarshal(data, &tools); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(tools))
	}
	if tools[0].Name != "ChatGPT" || tools[0].Proficiency != "" {
		t.Errorf("unexpected first tool %+v", tools[0])
	}
	if tools[1].Name != "Copilot" || tools[1].Proficiency != "expert" {
		t.Errorf("unexpected second tool %+v", tools[1])
	}
}

func TestToolUsageUnmarshalInvalid(t *testing.T) {
	var tool ToolUsage
	if err := json.Unmarshal([]byte(`42`), &tool); err == nil {
		t.Fatalf("expected error for numeric tool entry")
	}
}
