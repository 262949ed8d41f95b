// Package profile defines the user profile collected before a test.
// The profile only steers recommendations; it never affects scoring.
package profile

import "slices"

// JobType is the user's current role.
type JobType string

const (
	JobSales      JobType = "sales"
	JobEngineer   JobType = "engineer"
	JobMarketing  JobType = "marketing"
	JobManagement JobType = "management"
	JobOther      JobType = "other"
)

// Usage is a situation in which the user uses (or wants to use) English.
type Usage string

const (
	UsageEmail        Usage = "email"
	UsageMeeting      Usage = "meeting"
	UsagePresentation Usage = "presentation"
	UsageNegotiation  Usage = "negotiation"
	UsageInterview    Usage = "interview"
)

// Goal is the user's primary career goal.
type Goal string

const (
	GoalJobChange Goal = "job_change"
	GoalPromotion Goal = "promotion"
	GoalOverseas  Goal = "overseas"
	GoalSkillUp   Goal = "skill_up"
)

// CurrentLevel is the user's self-assessed English level.
type CurrentLevel string

const (
	LevelNone         CurrentLevel = "none"
	LevelBasic        CurrentLevel = "basic"
	LevelIntermediate CurrentLevel = "intermediate"
	LevelAdvanced     CurrentLevel = "advanced"
)

// Profile is the set of answers from the profile form.
type Profile struct {
	JobType      JobType      `json:"jobType" validate:"required,job_type"`
	EnglishUsage []Usage      `json:"englishUsage" validate:"required,min=1,unique,dive,usage"`
	Goal         Goal         `json:"goal" validate:"required,goal"`
	CurrentLevel CurrentLevel `json:"currentLevel" validate:"required,current_level"`
}

// Uses reports whether u is among the profile's English usages.
func (p Profile) Uses(u Usage) bool {
	return slices.Contains(p.EnglishUsage, u)
}

// Option is a selectable value with a display label.
type Option[T ~string] struct {
	Value T
	Label string
	Desc  string
}

// JobTypeOptions lists the job types in form order.
var JobTypeOptions = []Option[JobType]{
	{JobSales, "Sales / Business development", ""},
	{JobEngineer, "Engineering / Technical", ""},
	{JobMarketing, "Marketing / Planning", ""},
	{JobManagement, "Management", ""},
	{JobOther, "Other", ""},
}

// UsageOptions lists the English usages in form order.
var UsageOptions = []Option[Usage]{
	{UsageEmail, "Email and documents", ""},
	{UsageMeeting, "Meetings", ""},
	{UsagePresentation, "Presentations", ""},
	{UsageNegotiation, "Negotiations", ""},
	{UsageInterview, "Job interviews in English", ""},
}

// GoalOptions lists the goals in form order.
var GoalOptions = []Option[Goal]{
	{GoalJobChange, "Job change", "Move to a role that uses English"},
	{GoalPromotion, "Promotion", "Move up in your current company"},
	{GoalOverseas, "Overseas assignment", "Prepare for work abroad"},
	{GoalSkillUp, "Skill up", "Work more efficiently and keep growing"},
}

// CurrentLevelOptions lists the self-assessed levels in form order.
var CurrentLevelOptions = []Option[CurrentLevel]{
	{LevelNone, "Barely", "Simple greetings only"},
	{LevelBasic, "Basic", "Simple emails and everyday conversation"},
	{LevelIntermediate, "Intermediate", "Basic meetings and presentations"},
	{LevelAdvanced, "Advanced", "Complex discussions and negotiations"},
}

func values[T ~string](opts []Option[T]) []T {
	out := make([]T, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}
