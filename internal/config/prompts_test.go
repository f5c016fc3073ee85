package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderPrompt(t *testing.T) {
	out, err := RenderPrompt(`Ein Benutzer sucht nach: "{{.Query}}".`, map[string]interface{}{
		"Query": "Tomatensuppe",
	})
	if err != nil {
		t.Fatalf("RenderPrompt returned error: %v", err)
	}
	if out != `Ein Benutzer sucht nach: "Tomatensuppe".` {
		t.Errorf("RenderPrompt returned %q", out)
	}
}

func TestRenderPromptBadTemplate(t *testing.T) {
	if _, err := RenderPrompt("{{.Query", nil); err == nil {
		t.Errorf("RenderPrompt accepted an unterminated template")
	}
}

func TestLoadPrompts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.yaml")
	content := `search:
  intro: "Suche: {{.Query}}"
  format: "Antworte mit {{.Servings}} Portionen."
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write prompts file: %v", err)
	}

	prompts, err := LoadPrompts(path)
	if err != nil {
		t.Fatalf("LoadPrompts returned error: %v", err)
	}
	if !strings.Contains(prompts.Search.Intro, "{{.Query}}") {
		t.Errorf("intro = %q", prompts.Search.Intro)
	}
	if !strings.Contains(prompts.Search.Format, "{{.Servings}}") {
		t.Errorf("format = %q", prompts.Search.Format)
	}
}

func TestLoadPromptsMissingFile(t *testing.T) {
	if _, err := LoadPrompts("does-not-exist.yaml"); err == nil {
		t.Errorf("LoadPrompts accepted a missing file")
	}
}

func TestShippedPromptsParse(t *testing.T) {
	prompts, err := LoadPrompts("../../configs/prompts.yaml")
	if err != nil {
		t.Fatalf("LoadPrompts returned error: %v", err)
	}

	intro, err := RenderPrompt(prompts.Search.Intro, map[string]interface{}{"Query": "Suppe"})
	if err != nil {
		t.Fatalf("render intro: %v", err)
	}
	if !strings.Contains(intro, `"Suppe"`) {
		t.Errorf("rendered intro does not name the query: %q", intro)
	}

	format, err := RenderPrompt(prompts.Search.Format, map[string]interface{}{"Servings": 4})
	if err != nil {
		t.Fatalf("render format: %v", err)
	}
	if !strings.Contains(format, `"servings": 4`) {
		t.Errorf("rendered format does not embed servings: %q", format)
	}
}

func TestCheckConfigEnvFields(t *testing.T) {
	cfg := &Config{EnvVars: EnvVars{Port: "8080", SearchProvider: "gemini"}}
	if err := cfg.CheckConfigEnvFields(); err != nil {
		t.Errorf("CheckConfigEnvFields returned %v for a complete config", err)
	}

	cfg = &Config{EnvVars: EnvVars{SearchProvider: "gemini"}}
	if err := cfg.CheckConfigEnvFields(); err == nil {
		t.Errorf("CheckConfigEnvFields accepted a missing Port")
	}

	// Optional fields may stay empty.
	cfg = &Config{EnvVars: EnvVars{Port: "8080", SearchProvider: "local"}}
	if err := cfg.CheckConfigEnvFields(); err != nil {
		t.Errorf("CheckConfigEnvFields rejected empty optional fields: %v", err)
	}
}
