// Package catalog holds the static, compile-time data the application ships
// with: the business-idea templates the matcher ranks and the journey step
// seeds tasks are created from.
package catalog

import "github.com/venturewayfinder/backend/domain"

var ideas = []domain.IdeaTemplate{
	{
		ID:          "freelance-web-dev",
		Title:       "Freelance Web Developer",
		Description: "Build websites and web apps for small businesses on a project basis.",
		Tags:        []string{"freelance", "remote"},
		Passions:    []domain.Passion{domain.PassionTech},
		Budget:      domain.TierLow,
		TimeDemand:  domain.TierMedium,
		Skills:      []domain.Skill{domain.SkillTechnical, domain.SkillAnalytical},
	},
	{
		ID:          "saas-micro-tool",
		Title:       "Micro-SaaS Tool",
		Description: "A small subscription tool solving one niche workflow problem.",
		Tags:        []string{"saas", "recurring"},
		Passions:    []domain.Passion{domain.PassionTech, domain.PassionServices},
		Budget:      domain.TierMedium,
		TimeDemand:  domain.TierHigh,
		Skills:      []domain.Skill{domain.SkillTechnical, domain.SkillMarketing},
	},
	{
		ID:          "dropshipping-store",
		Title:       "Dropshipping Store",
		Description: "Curated online storefront with supplier-fulfilled orders.",
		Tags:        []string{"ecommerce"},
		Passions:    []domain.Passion{domain.PassionEcommerce},
		Budget:      domain.TierLow,
		TimeDemand:  domain.TierMedium,
		Skills:      []domain.Skill{domain.SkillMarketing, domain.SkillAnalytical},
	},
	{
		ID:          "handmade-goods-shop",
		Title:       "Handmade Goods Shop",
		Description: "Sell handcrafted products through marketplaces and pop-ups.",
		Tags:        []string{"craft", "ecommerce"},
		Passions:    []domain.Passion{domain.PassionCreative, domain.PassionEcommerce},
		Budget:      domain.TierLow,
		TimeDemand:  domain.TierLow,
		Skills:      []domain.Skill{domain.SkillDesign, domain.SkillCommunication},
	},
	{
		ID:          "online-course-creator",
		Title:       "Online Course Creator",
		Description: "Package expertise into self-paced video courses.",
		Tags:        []string{"education", "content"},
		Passions:    []domain.Passion{domain.PassionEducation, domain.PassionCreative},
		Budget:      domain.TierLow,
		TimeDemand:  domain.TierMedium,
		Skills:      []domain.Skill{domain.SkillCommunication, domain.SkillMarketing},
	},
	{
		ID:          "meal-prep-service",
		Title:       "Local Meal Prep Service",
		Description: "Weekly prepared meal plans for busy households.",
		Tags:        []string{"food", "local"},
		Passions:    []domain.Passion{domain.PassionFood, domain.PassionHealth},
		Budget:      domain.TierMedium,
		TimeDemand:  domain.TierHigh,
		Skills:      []domain.Skill{domain.SkillCommunication, domain.SkillFinance},
	},
	{
		ID:          "social-media-agency",
		Title:       "Social Media Agency",
		Description: "Manage content and campaigns for small-business clients.",
		Tags:        []string{"agency", "marketing"},
		Passions:    []domain.Passion{domain.PassionServices, domain.PassionCreative},
		Budget:      domain.TierLow,
		TimeDemand:  domain.TierMedium,
		Skills:      []domain.Skill{domain.SkillMarketing, domain.SkillCommunication, domain.SkillDesign},
	},
	{
		ID:          "sustainability-consulting",
		Title:       "Sustainability Consulting",
		Description: "Help local businesses cut waste and meet green targets.",
		Tags:        []string{"consulting"},
		Passions:    []domain.Passion{domain.PassionSustainability, domain.PassionServices},
		Budget:      domain.TierMedium,
		TimeDemand:  domain.TierMedium,
		Skills:      []domain.Skill{domain.SkillAnalytical, domain.SkillCommunication},
	},
	{
		ID:          "fitness-coaching",
		Title:       "Online Fitness Coaching",
		Description: "Personalized remote training and accountability programs.",
		Tags:        []string{"health", "coaching"},
		Passions:    []domain.Passion{domain.PassionHealth},
		Budget:      domain.TierLow,
		TimeDemand:  domain.TierMedium,
		Skills:      []domain.Skill{domain.SkillCommunication, domain.SkillMarketing},
	},
	{
		ID:          "data-dashboard-studio",
		Title:       "Analytics Dashboard Studio",
		Description: "Custom reporting dashboards for e-commerce operators.",
		Tags:        []string{"data", "b2b"},
		Passions:    []domain.Passion{domain.PassionTech, domain.PassionEcommerce},
		Budget:      domain.TierHigh,
		TimeDemand:  domain.TierHigh,
		Skills:      []domain.Skill{domain.SkillTechnical, domain.SkillAnalytical, domain.SkillFinance},
	},
}

// Ideas returns a copy of the idea template catalog.
func Ideas() []domain.IdeaTemplate {
	return append([]domain.IdeaTemplate(nil), ideas...)
}

// StepSeed describes the default task created for a journey step.
type StepSeed struct {
	StepID      string
	Title       string
	Description string
	Categories  []CategorySeed
	Resources   []string
}

type CategorySeed struct {
	Title    string
	Subtasks []string
}

var stepSeeds = map[string]StepSeed{
	"idea-validation": {
		StepID:      "idea-validation",
		Title:       "Validate Your Idea",
		Description: "Confirm there is real demand before investing further.",
		Categories: []CategorySeed{
			{Title: "Research", Subtasks: []string{
				"Interview five potential customers",
				"Map three existing competitors",
			}},
			{Title: "Experiment", Subtasks: []string{
				"Publish a landing page",
				"Collect fifty signups or responses",
			}},
		},
		Resources: []string{"The Mom Test", "Lean Canvas template"},
	},
	"business-plan": {
		StepID:      "business-plan",
		Title:       "Draft a Business Plan",
		Description: "Turn the validated idea into a concrete plan.",
		Categories: []CategorySeed{
			{Title: "Financials", Subtasks: []string{
				"Estimate startup costs",
				"Project six months of revenue",
			}},
			{Title: "Positioning", Subtasks: []string{
				"Write a one-line value proposition",
				"Define the target customer segment",
			}},
		},
	},
	"first-launch": {
		StepID:      "first-launch",
		Title:       "Launch Your First Offer",
		Description: "Get a sellable version in front of customers.",
		Categories: []CategorySeed{
			{Title: "Build", Subtasks: []string{
				"Assemble the minimum sellable offer",
				"Set up a payment method",
			}},
			{Title: "Announce", Subtasks: []string{
				"Share the launch in two communities",
			}},
		},
	},
}

// StepTemplate returns the seed for a journey step, if one exists.
func StepTemplate(stepID string) (StepSeed, bool) {
	seed, ok := stepSeeds[stepID]
	return seed, ok
}
