package models

import "time"

// Quiz represents authored quiz content.
type Quiz struct {
	ID            string     `json:"id"`             // ID mirrors the enclosing entity id (UUID)
	Title         string     `json:"title"`          // Title display name of the quiz
	Description   string     `json:"description"`    // Description optional free-form summary
	Questions     []Question `json:"questions"`      // Questions ordered question list
	Tags          []string   `json:"tags"`           // Tags search/grouping labels
	SchemaVersion int        `json:"schema_version"` // SchemaVersion content schema revision, owned by the content pipeline
}

// Question is a single quiz question. The answer hash is produced by the
// grading collaborator; the engine never computes or checks it.
type Question struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	AnswerHash string   `json:"answer_hash"`
	Category   string   `json:"category,omitempty"`
}

// Clone creates a deep copy of the quiz.
func (q *Quiz) Clone() *Quiz {
	clone := *q

	clone.Questions = make([]Question, len(q.Questions))
	for i, question := range q.Questions {
		clone.Questions[i] = question
		clone.Questions[i].Options = append([]string(nil), question.Options...)
	}
	clone.Tags = append([]string(nil), q.Tags...)

	return &clone
}

// Result represents one completed quiz attempt.
type Result struct {
	ID             string             `json:"id"`              // ID mirrors the enclosing entity id (UUID)
	QuizID         string             `json:"quiz_id"`         // QuizID reference to the quiz taken
	TakenAt        time.Time          `json:"taken_at"`        // TakenAt completion timestamp
	Score          float64            `json:"score"`           // Score aggregate score, 0..100
	ElapsedSeconds int64              `json:"elapsed_seconds"` // ElapsedSeconds total time spent
	Answers        map[string]string  `json:"answers"`         // Answers question id -> given answer
	Flagged        map[string]bool    `json:"flagged"`         // Flagged question ids marked for review
	Breakdown      map[string]float64 `json:"breakdown"`       // Breakdown per-category score
}

// Clone creates a deep copy of the result.
func (r *Result) Clone() *Result {
	clone := *r

	clone.Answers = make(map[string]string, len(r.Answers))
	for k, v := range r.Answers {
		clone.Answers[k] = v
	}
	clone.Flagged = make(map[string]bool, len(r.Flagged))
	for k, v := range r.Flagged {
		clone.Flagged[k] = v
	}
	clone.Breakdown = make(map[string]float64, len(r.Breakdown))
	for k, v := range r.Breakdown {
		clone.Breakdown[k] = v
	}

	return &clone
}

// Learning stage bounds. The scheduling heuristic that moves entities
// between stages lives outside the engine.
const (
	MinStage = 1
	MaxStage = 5
)

// LearningState tracks spaced-repetition progress for one subject.
type LearningState struct {
	ID                 string    `json:"id"`                  // ID mirrors the enclosing entity id (UUID)
	Subject            string    `json:"subject"`             // Subject reference (category or quiz id)
	Stage              int       `json:"stage"`               // Stage bounded ordinal, MinStage..MaxStage
	LastReviewedAt     time.Time `json:"last_reviewed_at"`    // LastReviewedAt most recent review
	NextDueAt          time.Time `json:"next_due_at"`         // NextDueAt when the subject comes due again
	ConsecutiveCorrect int       `json:"consecutive_correct"` // ConsecutiveCorrect streak counter
}

// Validate checks the stage bound.
func (ls *LearningState) Validate() error {
	if ls.Stage < MinStage || ls.Stage > MaxStage {
		return ErrStageOutOfRange
	}
	return nil
}

// Clone creates a copy of the learning state.
func (ls *LearningState) Clone() *LearningState {
	clone := *ls
	return &clone
}
