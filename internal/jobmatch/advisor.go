package jobmatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/abhisek/bizpro/internal/llm"
)

type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds one Analyze call. Zero means no extra deadline.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxTokens: 1500,
		Timeout:   30 * time.Second,
	}
}

// Advisor produces job-match verdicts.
type Advisor struct {
	provider llm.Provider
	cfg      Config
}

// NewAdvisor returns an advisor backed by provider. A nil provider makes
// every Analyze call return Fallback.
func NewAdvisor(provider llm.Provider, cfg Config) *Advisor {
	return &Advisor{provider: provider, cfg: cfg}
}

// Live reports whether verdicts come from a model.
func (a *Advisor) Live() bool {
	return a.provider != nil
}

// Analyze returns a verdict for req. Model failures are never papered
// over with the fallback: they come back as *UpstreamError or *ParseError.
func (a *Advisor) Analyze(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}
	if a.provider == nil {
		return Fallback(req.UserProfile), nil
	}

	ctx = llm.WithPurpose(ctx, "job-match")
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("build job-match prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	return parseReply(resp.Text())
}

// parseReply reads the verdict out of free-form model text: everything
// from the first '{' to the last '}' must be one JSON object matching
// ResultSchema.
func parseReply(text string) (*Result, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return nil, &ParseError{Reason: "no JSON object in reply", Text: text}
	}
	raw := json.RawMessage(text[start : end+1])

	if err := llm.ValidateJSON(ResultSchema, raw); err != nil {
		return nil, &ParseError{Reason: "reply does not match schema", Text: text, Err: err}
	}

	var out Result
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ParseError{Reason: "decode reply", Text: text, Err: err}
	}
	if out.MatchingPoints == nil {
		out.MatchingPoints = []string{}
	}
	if out.GapPoints == nil {
		out.GapPoints = []string{}
	}
	return &out, nil
}

type promptData struct {
	Request
	Readiness string
}

func buildPrompt(req Request) (string, error) {
	var buf bytes.Buffer
	data := promptData{Request: req, Readiness: string(req.UserProfile.InterviewReadiness.Level)}
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var promptTemplate = template.Must(template.New("job-match").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`You are an English-skills advisor at a recruitment agency.
Compare the candidate's English diagnosis with the job posting and judge how likely an application is to succeed.

[Candidate diagnosis]
- Business English level: {{.UserProfile.BusinessLevel}}
- Overall score: {{.UserProfile.OverallScore}}/100
- Skill scores:
{{- range .UserProfile.SkillScores}}
  - {{.Key}}: {{.Value}}/100
{{- end}}
- Strengths: {{join .UserProfile.Strengths ", "}}
- Weaknesses: {{join .UserProfile.Weaknesses ", "}}
- Interview readiness: {{.Readiness}} ({{.UserProfile.InterviewReadiness.Description}})

[Job posting]
{{.JobDescription}}

Respond with this JSON object only, no other text:

{
  "matchLevel": "high" | "medium" | "low" | "not_ready",
  "matchDescription": "verdict in 1-2 sentences",
  "matchingPoints": ["2-3 requirements the candidate already meets"],
  "gapPoints": ["2-3 areas that need strengthening"],
  "advice": "2-3 sentences of advice for applying to this posting",
  "estimatedToeicRange": "estimated TOEIC equivalent, e.g. 650-750",
  "requiredToeicEstimate": "TOEIC score the posting likely expects, e.g. 800+"
}
`))
