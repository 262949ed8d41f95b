package preset

import (
	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/roadmap"
)

func classicPreset() *Preset {
	return &Preset{
		Name:  "classic",
		Title: "Business English Diagnosis",
		Bank:  "classic",
		Categories: []Category{
			{ID: "email", Label: "BUSINESS EMAIL", ScoreKey: "email", Strength: "Business email writing", Weakness: "Business email", Targets: [3]int{2, 2, 1}},
			{ID: "meeting", Label: "MEETING", ScoreKey: "meeting", Strength: "Meeting communication", Weakness: "Meeting English", Targets: [3]int{2, 2, 1}},
			{ID: "presentation", Label: "PRESENTATION", ScoreKey: "presentation", Strength: "Presentations", Weakness: "Presentation English", Targets: [3]int{1, 2, 1}},
			{ID: "negotiation", Label: "NEGOTIATION", ScoreKey: "negotiation", Strength: "Negotiation", Weakness: "Negotiation English", Targets: [3]int{1, 2, 1}},
		},
		Prompts: bank.PromptsOne,

		Ladder:   classify.LadderScoreOnly,
		CommKeys: []string{"meeting", "presentation"},
		Readiness: classify.ReadinessTable{
			classify.ReadinessConfident: {
				Description: "You can approach English interviews with confidence",
				Tips: []string{
					"Review the technical terms specific to your industry",
					"Prepare answers using the STAR method",
					"Practice answers to expected questions in English",
				},
			},
			classify.ReadinessReady: {
				Description: "You can handle a basic English interview",
				Tips: []string{
					"Prepare English versions of your self-introduction and motivation",
					"Practice answer patterns for common questions",
					"Learn expressions specific to interviews",
				},
			},
			classify.ReadinessBasic: {
				Description: "English interviews need additional preparation",
				Tips: []string{
					"First, make your self-introduction in English flawless",
					"Memorize basic business English phrases",
					"Keep practicing Q&A in English",
				},
			},
			classify.ReadinessNotReady: {
				Description: "Strengthen your fundamentals before English interviews",
				Tips: []string{
					"Start learning business English from the basics",
					"Make sure you can reliably use simple phrases",
					"Start by translating your native-language interview answers into English",
				},
			},
		},
		Sentinels: classify.Sentinels{
			NoStrengths:  "You have basic business English skills",
			NoWeaknesses: "No major weaknesses found",
		},

		Roadmaps: roadmap.Table{
			classify.LevelEntry: {
				{Title: "Foundation", Duration: "1-2 months", Goals: []string{"Learn standard business expressions", "Write basic emails", "Practice simple conversations"}},
				{Title: "Practical Preparation", Duration: "2-3 months", Goals: []string{"Write practical emails", "Practice joining meetings", "Give basic presentations"}},
				{Title: "Practical Strength", Duration: "3-4 months", Goals: []string{"Use English at work", "Prepare for interviews", "Keep improving"}},
			},
			classify.LevelIntermediate: {
				{Title: "Overcoming Weaknesses", Duration: "1-2 months", WeaknessGoal: "Strengthen %s"},
				{Title: "Practical Skills", Duration: "2-3 months", Goals: []string{"Join complex discussions", "Improve presentation skills", "Strengthen negotiation skills"}},
				{Title: "Interview Preparation", Duration: "1 month", Goals: []string{"English interview preparation", "Mock interview practice", "Learn industry terminology"}},
			},
			classify.LevelAdvanced: {
				{Title: "Executive Skills", Duration: "1-2 months", Goals: []string{"Advanced negotiation techniques", "Leadership expressions", "Strategic communication"}},
				{Title: "Specialization", Duration: "1-2 months", Goals: []string{"Industry-specific expressions", "Management-level discussions", "Global perspective"}},
			},
			classify.LevelExecutive: {
				{Title: "Continuous Improvement", Duration: "Ongoing", Goals: []string{"Keep up with the latest business terms", "Cross-cultural communication", "Executive presence"}},
			},
		},
		Rules: roadmap.Rules{
			List: []roadmap.Rule{
				{When: roadmap.GoalIs(profile.GoalJobChange), Advice: "When changing jobs, show your English ability with concrete numbers such as a TOEIC score."},
				{When: roadmap.WeakIn{"meeting", "presentation"}, Advice: "Add more speaking practice with online English conversation lessons."},
				{When: roadmap.WeakIn{"email"}, Advice: "Learning practical business email templates is an efficient way to improve."},
				{When: roadmap.UsageIncludes(profile.UsageInterview), Advice: "Practice with an English interview preparation tool."},
			},
			Fallback: fallbackAdvice,
		},
		Services: roadmap.Catalog{
			Learning: roadmap.Service{
				Name:           "StudySapuri ENGLISH Business Course",
				Description:    "Business English learning app optimized for Japanese learners",
				Category:       "app",
				Pricing:        "from ¥3,278/month",
				FreeTrialInfo:  "7-day free trial",
				WhyRecommended: "Scenario-based lessons make study efficient",
				AffiliateLink:  "https://px.a8.net/svt/ejp?a8mat=4AVI3Y+5CB16A+3AQG+TSBEB",
			},
			Speaking: roadmap.Service{
				Name:           "Bizmates",
				Description:    "Business-focused online English conversation",
				Category:       "online-lesson",
				Pricing:        "from ¥13,200/month",
				FreeTrialInfo:  "Free trial lesson available",
				WhyRecommended: "One-on-one lessons with trainers who have business experience build practical skills",
				AffiliateLink:  "https://www.bizmates.jp/",
			},
			SpeakingKeys: []string{"meeting", "presentation"},
			Interview: roadmap.Service{
				Name:           "English Interview Practice Tool",
				Description:    "Realistic interview practice with an AI interviewer",
				Category:       "tool",
				Pricing:        "Free",
				WhyRecommended: "Practice with scenarios modeled on real interviews",
				AffiliateLink:  "/interview-tool",
			},
		},
	}
}
