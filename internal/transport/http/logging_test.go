package http

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

var nopLogger = zap.NewNop()

func TestSummarizeBodyRedactsCredentials(t *testing.T) {
	summary, ok := summarizeBody([]byte(`{"name":"Kyoto","access_token":"abc","nested":{"password":"x"}}`)).(map[string]any)
	if !ok {
		t.Fatalf("expected a JSON summary")
	}
	if summary["name"] != "Kyoto" {
		t.Fatalf("expected name kept, got %v", summary["name"])
	}
	if summary["access_token"] != redacted {
		t.Fatalf("expected token redacted, got %v", summary["access_token"])
	}
	nested := summary["nested"].(map[string]any)
	if nested["password"] != redacted {
		t.Fatalf("expected nested password redacted, got %v", nested["password"])
	}
}

func TestSummarizeBodyTruncatesLargePayloads(t *testing.T) {
	items := make([]string, 0, 400)
	for i := 0; i < 400; i++ {
		items = append(items, `"day"`)
	}
	body := `{"schedules":[` + strings.Join(items, ",") + `]}`

	summary, ok := summarizeBody([]byte(body)).(map[string]any)
	if !ok || summary["_truncated"] != true {
		t.Fatalf("expected truncated summary, got %v", summary)
	}
	if summarizeBody(nil) != nil {
		t.Fatalf("expected nil for empty body")
	}
	if summarizeBody([]byte{0xff, 0xfe}) != "binary" {
		t.Fatalf("expected binary marker")
	}
}
