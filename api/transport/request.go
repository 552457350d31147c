package transport

import "github.com/venturewayfinder/backend/domain"

type MatchRequest struct {
	Passions    []domain.Passion `json:"passions"`
	TimePerWeek int              `json:"time_per_week"`
	Budget      domain.Tier      `json:"budget"`
	Skills      []domain.Skill   `json:"skills"`
}

type CreateTaskRequest struct {
	StepID string `json:"step_id"`
}

type ToggleSubtaskRequest struct {
	Completed *bool `json:"completed"`
}

type AddSubtaskRequest struct {
	Title string `json:"title"`
}

type DeadlineRequest struct {
	// RFC 3339 timestamp, or empty to clear the deadline.
	Deadline string `json:"deadline"`
}

type StatusRequest struct {
	Status domain.TaskStatus `json:"status"`
}

type QuizSubmitRequest struct {
	Answers []domain.QuizAnswer `json:"answers"`
}

type ProfileUpdateRequest struct {
	Email        string            `json:"email"`
	Role         string            `json:"role"`
	Subscription string            `json:"subscription"`
	Status       string            `json:"status"`
	Meta         map[string]string `json:"metadata"`
}

type BusinessProfileRequest struct {
	BusinessName string `json:"business_name"`
	Problem      string `json:"problem"`
	Solution     string `json:"solution"`
	TargetMarket string `json:"target_market"`
	RevenueModel string `json:"revenue_model"`
	Stage        string `json:"stage"`
	Notes        string `json:"notes"`
}
