package domain

import "time"

// Persona is the entrepreneur classification a quiz submission resolves to.
type Persona string

const (
	PersonaVisionary  Persona = "visionary"
	PersonaBuilder    Persona = "builder"
	PersonaStrategist Persona = "strategist"
	PersonaConnector  Persona = "connector"
)

// PersonaOrder is the fixed ranking used to break ties when two personas
// collect the same number of answers.
var PersonaOrder = []Persona{
	PersonaVisionary,
	PersonaBuilder,
	PersonaStrategist,
	PersonaConnector,
}

func (p Persona) IsValid() bool {
	for _, known := range PersonaOrder {
		if p == known {
			return true
		}
	}
	return false
}

// QuizAnswer is one selected option; each option maps to a persona category.
type QuizAnswer struct {
	QuestionID string  `json:"question_id"`
	Category   Persona `json:"category"`
}

// QuizResult is the persisted outcome of one quiz run.
type QuizResult struct {
	ID      string          `json:"id"`
	UserID  string          `json:"user_id"`
	Persona Persona         `json:"persona"`
	Tally   map[Persona]int `json:"tally"`
	TakenAt time.Time       `json:"taken_at"`
}
