package alerts

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleAlertsYAML = `publishers:
  - id: ops-webhook
    type: http
    http:
      url: https://hooks.example.com/status
      method: post
      headers:
        X-Token: " secret "
  - id: ops-queue
    type: sqs
    enabled: false
    sqs:
      uri: https://sqs.eu-west-1.amazonaws.com/123/status-alerts
      region: eu-west-1
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadRegistryParsesYAML(t *testing.T) {
	path := writeTempFile(t, "alerts.yaml", sampleAlertsYAML)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	if got := len(reg.All()); got != 2 {
		t.Fatalf("expected 2 publishers, got %d", got)
	}

	enabled := reg.Enabled()
	if len(enabled) != 1 || enabled[0].ID != "ops-webhook" {
		t.Fatalf("expected only ops-webhook enabled, got %+v", enabled)
	}

	cfg, ok := reg.ByID("ops-webhook")
	if !ok {
		t.Fatal("ops-webhook not found by id")
	}
	if cfg.HTTP == nil {
		t.Fatal("http config missing")
	}
	if cfg.HTTP.Method != "POST" {
		t.Fatalf("expected method normalized to POST, got %q", cfg.HTTP.Method)
	}
	if cfg.HTTP.TimeoutSeconds != httpDefaultTimeoutSeconds {
		t.Fatalf("expected default timeout, got %d", cfg.HTTP.TimeoutSeconds)
	}
	if got := cfg.HTTP.Headers["X-Token"]; got != "secret" {
		t.Fatalf("expected trimmed header value, got %q", got)
	}
}

func TestLoadRegistryParsesJSON(t *testing.T) {
	path := writeTempFile(t, "alerts.json", `{
  "publishers": [
    {"id": "fanout-topic", "type": "sns", "sns": {"topic_arn": "arn:aws:sns:::status", "region": "us-east-1"}},
    {"id": "events", "type": "gcp_pubsub", "gcp_pubsub": {"project_id": "soundforge", "topic": "status-alerts"}}
  ]
}`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := len(reg.Enabled()); got != 2 {
		t.Fatalf("expected 2 enabled publishers, got %d", got)
	}
}

func TestLoadRegistryRejectsDuplicateIDs(t *testing.T) {
	path := writeTempFile(t, "alerts.yaml", `publishers:
  - id: hook
    type: http
    http:
      url: https://a.example.com
  - id: hook
    type: http
    http:
      url: https://b.example.com
`)

	if _, err := LoadRegistry(path); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestLoadRegistryValidatesRequiredFields(t *testing.T) {
	cases := map[string]string{
		"missing sqs region": `publishers:
  - id: q
    type: sqs
    sqs:
      uri: https://sqs.example.com/q
`,
		"missing sns topic": `publishers:
  - id: t
    type: sns
    sns:
      region: us-east-1
`,
		"missing pubsub project": `publishers:
  - id: p
    type: gcp_pubsub
    gcp_pubsub:
      topic: status-alerts
`,
		"missing http url": `publishers:
  - id: h
    type: http
    http:
      method: POST
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeTempFile(t, "alerts.yaml", content)
			if _, err := LoadRegistry(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadRegistryRejectsEmptyFile(t *testing.T) {
	path := writeTempFile(t, "alerts.yaml", "publishers: []\n")
	if _, err := LoadRegistry(path); err == nil {
		t.Fatal("expected error for empty publishers list")
	}
}
