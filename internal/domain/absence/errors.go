package absence

import "errors"

var (
	ErrAbsenceNotFound         = errors.New("absence not found")
	ErrAbsenceAlreadyProcessed = errors.New("absence has already been approved or rejected")
	ErrInvalidReviewStatus     = errors.New("review status must be aprovado or rejeitado")
)
