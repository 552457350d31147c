package domain

// Tier is a closed three-level enumeration used for both budget and
// weekly-time classification.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return true
	}
	return false
}

// Passion is one of the fixed interest categories a user can select.
type Passion string

const (
	PassionTech           Passion = "tech"
	PassionEcommerce      Passion = "ecommerce"
	PassionFood           Passion = "food"
	PassionEducation      Passion = "education"
	PassionCreative       Passion = "creative"
	PassionServices       Passion = "services"
	PassionHealth         Passion = "health"
	PassionSustainability Passion = "sustainability"
)

// Skill is one of the fixed skill categories a user can select.
type Skill string

const (
	SkillTechnical     Skill = "technical"
	SkillMarketing     Skill = "marketing"
	SkillAnalytical    Skill = "analytical"
	SkillCommunication Skill = "communication"
	SkillDesign        Skill = "design"
	SkillFinance       Skill = "finance"
)

// IdeaTemplate is an immutable catalog entry describing one business idea.
type IdeaTemplate struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Passions    []Passion `json:"passions"`
	Budget      Tier      `json:"budget"`
	TimeDemand  Tier      `json:"time_demand"`
	Skills      []Skill   `json:"skills"`
}

// UserPreferenceInput carries one matching request's form data. It is never
// persisted by the matcher.
type UserPreferenceInput struct {
	Passions    []Passion `json:"passions"`
	TimePerWeek int       `json:"time_per_week"`
	Budget      Tier      `json:"budget"`
	Skills      []Skill   `json:"skills"`
}

// Validate rejects inputs the matcher must not silently accept: empty passion
// or skill sets would otherwise behave as "match everything", and an
// unrecognized budget tier would fall through every comparison.
func (in UserPreferenceInput) Validate() error {
	if len(in.Passions) == 0 {
		return NewError(ErrCodeInvalid, "at least one passion is required")
	}
	if len(in.Skills) == 0 {
		return NewError(ErrCodeInvalid, "at least one skill is required")
	}
	if !in.Budget.IsValid() {
		return NewErrorf(ErrCodeInvalid, "unrecognized budget tier %q", string(in.Budget))
	}
	if in.TimePerWeek < 0 || in.TimePerWeek > 40 {
		return NewErrorf(ErrCodeInvalid, "time per week must be between 0 and 40 hours, got %d", in.TimePerWeek)
	}
	return nil
}
