package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bizpro/internal/config"
	"github.com/abhisek/bizpro/internal/jobmatch"
	"github.com/abhisek/bizpro/internal/profile"
)

// noProvider clears every variable that could select a live model.
func noProvider(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BIZPRO_LLM_PROVIDER", "ANTHROPIC_API_KEY", "OPENAI_API_KEY",
		"GEMINI_API_KEY", "OPENROUTER_API_KEY", "BIZPRO_PRESET",
		"BIZPRO_ANTHROPIC_API_KEY", "BIZPRO_OPENAI_API_KEY", "BIZPRO_GEMINI_API_KEY", "BIZPRO_OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "bizpro (devel)\n", out)
}

func TestBankList(t *testing.T) {
	out, err := execute(t, "", "bank", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "core")
	assert.Contains(t, out, "classic")
}

func TestBankShow(t *testing.T) {
	out, err := execute(t, "", "bank", "show", "core")
	require.NoError(t, err)
	assert.Contains(t, out, "Want")
	assert.Contains(t, out, "writing prompts")

	_, err = execute(t, "", "bank", "show", "nope")
	assert.Error(t, err)
}

func TestBankValidate(t *testing.T) {
	out, err := execute(t, "", "bank", "validate", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "ok    core")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: broken\nquestions: []\n"), 0o644))
	out, err = execute(t, "", "bank", "validate", bad)
	assert.Error(t, err)
	assert.Contains(t, out, "FAIL")
}

func TestMatchFallback(t *testing.T) {
	noProvider(t)
	result := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(result, []byte(`{
		"businessLevel": "advanced",
		"overallScore": 80,
		"skillScores": {"vocabulary": 90},
		"strengths": ["Strong vocabulary"],
		"weaknesses": ["Listening"],
		"interviewReadiness": {"level": "ready", "description": "ok"}
	}`), 0o644))

	out, err := execute(t, "Senior account manager, fluent English required.",
		"match", "--env-file", "", "--result", result, "--json")
	require.NoError(t, err)

	var res jobmatch.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, jobmatch.MatchHigh, res.MatchLevel)
	assert.Equal(t, []string{"Strong vocabulary"}, res.MatchingPoints)
}

func TestMatchEmptyPosting(t *testing.T) {
	noProvider(t)
	result := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(result, []byte(`{"overallScore": 50}`), 0o644))

	_, err := execute(t, "   ", "match", "--env-file", "", "--result", result, "--json=false")
	assert.ErrorIs(t, err, jobmatch.ErrEmptyJobDescription)
}

func TestResumeSession(t *testing.T) {
	ctx := t.Context()
	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{
		Preset:     "core",
		DBPath:     filepath.Join(t.TempDir(), "sessions.db"),
		SessionTTL: time.Hour,
	}

	first, err := buildServices(ctx, cfg, logger)
	require.NoError(t, err)
	started, err := first.sessions.Start(ctx, "core", profile.Profile{
		JobType:      profile.JobSales,
		EnglishUsage: []profile.Usage{profile.UsageEmail},
		Goal:         profile.GoalJobChange,
		CurrentLevel: profile.LevelIntermediate,
	})
	require.NoError(t, err)
	q := started.CurrentQuestion()
	require.NotNil(t, q)
	_, _, err = first.sessions.Answer(ctx, started.ID, q.ID, 0)
	require.NoError(t, err)
	first.Close()

	second, err := buildServices(ctx, cfg, logger)
	require.NoError(t, err)
	defer second.Close()

	sess, err := resumeSession(ctx, cfg, second, started.ID)
	require.NoError(t, err)
	assert.Equal(t, started.ID, sess.ID)
	assert.Equal(t, 1, sess.Progress().Answered)

	sess, err = resumeSession(ctx, cfg, second, "")
	assert.NoError(t, err)
	assert.Nil(t, sess)

	_, err = resumeSession(ctx, cfg, second, "missing")
	assert.ErrorContains(t, err, "not found or expired")

	memory := &config.Config{Preset: "core", SessionTTL: time.Hour}
	_, err = resumeSession(ctx, memory, second, started.ID)
	assert.ErrorContains(t, err, "persistent session store")
}
