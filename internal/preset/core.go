package preset

import (
	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/roadmap"
	"github.com/abhisek/bizpro/internal/scoring"
)

const fallbackAdvice = "Continue practicing to maintain and improve your business English skills."

func corePreset() *Preset {
	return &Preset{
		Name:  "core",
		Title: "Business English Pro",
		Bank:  "core",
		Categories: []Category{
			{
				ID: "vocabulary", Label: "VOCABULARY", ScoreKey: "vocabulary",
				Strength: "Business vocabulary and terminology",
				Weakness: "Business vocabulary",
				Targets:  [3]int{4, 5, 3},
			},
			{
				ID: "reading", Label: "READING COMPREHENSION", ScoreKey: "reading",
				Strength: "Reading and comprehending business documents",
				Weakness: "Business document comprehension",
				Targets:  [3]int{3, 4, 3},
			},
			{
				ID: "situation", Label: "SITUATION JUDGMENT", ScoreKey: "situationJudgment",
				Strength: "Professional judgment in business situations",
				Weakness: "Situational judgment skills",
				Targets:  [3]int{3, 4, 3},
			},
		},
		Advanced: &scoring.AdvancedAxis{Key: "advancedSkills", Divisor: 9},
		Prompts:  bank.PromptsAll,

		Ladder:   classify.LadderGated,
		CommKeys: []string{"reading", "situationJudgment"},
		Readiness: classify.ReadinessTable{
			classify.ReadinessConfident: {
				Description: "You are well-prepared for English business interviews",
				Tips: []string{
					"Practice industry-specific terminology",
					"Prepare STAR-format answers for common questions",
					"Focus on demonstrating your communication confidence",
				},
			},
			classify.ReadinessReady: {
				Description: "You can handle basic English interviews with some preparation",
				Tips: []string{
					"Prepare and practice self-introduction thoroughly",
					"Study common interview question patterns",
					"Work on speaking pace and clarity",
				},
			},
			classify.ReadinessBasic: {
				Description: "Additional preparation recommended before English interviews",
				Tips: []string{
					"Master your self-introduction first",
					"Learn key business English phrases",
					"Practice with mock interviews",
				},
			},
			classify.ReadinessNotReady: {
				Description: "Foundational improvement needed before English interviews",
				Tips: []string{
					"Focus on building core business vocabulary",
					"Practice listening comprehension",
					"Start with basic business conversation practice",
				},
			},
		},
		Sentinels: classify.Sentinels{
			NoStrengths:  "Foundational business English skills",
			NoWeaknesses: "No major weaknesses identified",
		},

		Roadmaps: roadmap.Table{
			classify.LevelEntry: {
				{Title: "Foundation Building", Duration: "1-2 months", Goals: []string{"Master 500 essential business terms", "Practice daily email writing", "Learn meeting basics"}},
				{Title: "Practical Application", Duration: "2-3 months", Goals: []string{"Handle basic client communications", "Participate in English meetings", "Write simple reports"}},
				{Title: "Confidence Building", Duration: "2-3 months", Goals: []string{"Lead small meetings", "Handle phone conversations", "Prepare for interviews"}},
			},
			classify.LevelIntermediate: {
				{Title: "Skill Strengthening", Duration: "1-2 months", WeaknessGoal: "Improve %s"},
				{Title: "Professional Communication", Duration: "2-3 months", Goals: []string{"Complex negotiations", "Presentation skills", "Cross-cultural communication"}},
				{Title: "Interview Preparation", Duration: "1 month", Goals: []string{"Mock interview practice", "Industry-specific vocabulary", "Behavioral question preparation"}},
			},
			classify.LevelAdvanced: {
				{Title: "Executive Skills", Duration: "1-2 months", Goals: []string{"Strategic communication", "Leadership language", "High-stakes negotiations"}},
				{Title: "Specialization", Duration: "1-2 months", Goals: []string{"Industry expertise", "Board-level presentations", "Global team leadership"}},
			},
			classify.LevelExecutive: {
				{Title: "Continuous Excellence", Duration: "Ongoing", Goals: []string{"Stay current with business terminology", "Cross-cultural leadership", "Executive presence refinement"}},
			},
		},
		Rules: roadmap.Rules{
			List: []roadmap.Rule{
				{When: roadmap.ScoreBelow{Key: "vocabulary", Threshold: 60}, Advice: "Focus on expanding your business vocabulary through daily practice with business news and industry publications."},
				{When: roadmap.ScoreBelow{Key: "reading", Threshold: 60}, Advice: "Improve reading comprehension by practicing with actual business documents, contracts, and professional emails."},
				{When: roadmap.ScoreBelow{Key: "situationJudgment", Threshold: 60}, Advice: "Develop situational judgment by studying case studies and practicing role-play scenarios."},
				{When: roadmap.GoalIs(profile.GoalJobChange), Advice: "For job transitions, consider obtaining a recognized certification like TOEIC Business or BEC to validate your skills."},
				{When: roadmap.UsageIncludes(profile.UsageInterview), Advice: "Practice mock interviews with native speakers or AI tools to build confidence for real interview situations."},
			},
			Fallback: fallbackAdvice,
		},
		Services: roadmap.Catalog{
			Learning: roadmap.Service{
				Name:           "StudySapuri ENGLISH Business Course",
				Description:    "Comprehensive business English learning app optimized for Japanese learners",
				Category:       "app",
				Pricing:        "from ¥3,278/month",
				FreeTrialInfo:  "7-day free trial",
				WhyRecommended: "Structured curriculum covering all aspects of business English",
				AffiliateLink:  "https://px.a8.net/svt/ejp?a8mat=4AVI3Y+5CB16A+3AQG+TSBEB",
			},
			Speaking: roadmap.Service{
				Name:           "Bizmates",
				Description:    "Business-focused online English lessons with experienced instructors",
				Category:       "online-lesson",
				Pricing:        "from ¥13,200/month",
				FreeTrialInfo:  "Free trial lesson available",
				WhyRecommended: "Practice real business scenarios with professional trainers",
				AffiliateLink:  "https://www.bizmates.jp/",
			},
			SpeakingKeys: []string{"situationJudgment"},
			Interview: roadmap.Service{
				Name:           "Interview Practice Tool",
				Description:    "AI-powered mock interviews for job seekers",
				Category:       "tool",
				Pricing:        "Free",
				WhyRecommended: "Practice interview scenarios to build confidence",
				AffiliateLink:  "/interview-tool",
			},
		},
	}
}
