package models

// Evaluation represents a row in the evaluations table. EvaluatorID is
// always the user who created the row; it is stamped server-side.
type Evaluation struct {
	ID          string  `json:"id"`
	ApplicantID string  `json:"applicant_id"`
	EvaluatorID string  `json:"evaluator_id"`
	Score       float64 `json:"score"`
	Comments    *string `json:"comments"`
}

// TableName returns the table name for the Evaluation model
func (Evaluation) TableName() string {
	return "evaluations"
}

// EvaluationCreate is the creation payload. It deliberately has no
// evaluator_id field: any client-supplied evaluator identity is discarded.
type EvaluationCreate struct {
	ApplicantID string  `json:"applicant_id" validate:"required,uuid"`
	Score       float64 `json:"score" validate:"gte=0"`
	Comments    *string `json:"comments,omitempty"`
}
