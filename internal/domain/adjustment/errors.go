package adjustment

import "errors"

var (
	ErrAdjustmentNotFound         = errors.New("adjustment not found")
	ErrAdjustmentAlreadyProcessed = errors.New("adjustment has already been approved or rejected")
	ErrInvalidReviewStatus        = errors.New("review status must be Aprovado or Rejeitado")
)
