package generateimage

import (
	"encoding/json"
	"testing"
)

func TestHasTaskUUID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value any
		want  bool
	}{
		{nil, false},
		{"", false},
		{false, false},
		{json.Number("0"), false},
		{"abc", true},
		{json.Number("7"), true},
		{map[string]any{}, true},
	}

	for _, tc := range cases {
		params := map[string]interface{}{"taskUUID": tc.value}
		if got := hasTaskUUID(params); got != tc.want {
			t.Fatalf("hasTaskUUID(%#v) = %v, want %v", tc.value, got, tc.want)
		}
	}

	if hasTaskUUID(map[string]interface{}{}) {
		t.Fatal("expected missing taskUUID to be absent")
	}
}

func TestBuildTaskParamsKeepsCallerNumbers(t *testing.T) {
	t.Parallel()

	s := &Service{taskIDs: TaskIDFunc(func() string { return "generated" })}
	req := &GenerateRequest{
		Prompt: "p",
		ImageParams: map[string]interface{}{
			"seed":  json.Number("12345678901234567"),
			"steps": json.Number("28"),
		},
	}

	raw, err := json.Marshal(s.buildTaskParams(req))
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}

	want := `{"seed":12345678901234567,"steps":28,"taskUUID":"generated"}`
	if string(raw) != want {
		t.Fatalf("unexpected params %s, want %s", raw, want)
	}
}

func TestTruncateStringKeepsRunes(t *testing.T) {
	t.Parallel()

	if got := truncateString("고양이가 스케이트보드를 탄다", 3); got != "고양이..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateString("short", 10); got != "short" {
		t.Fatalf("unexpected truncation %q", got)
	}
}
