package timerecord

// DeriveOverallStatus computes the event verdict from the three check
// outcomes. Pure function; order of evaluation is irrelevant.
//
//   - invalid: any check explicitly failed
//   - valid: face and geo each success or skipped, device auth success
//   - pending_review: everything else (inconclusive external signals)
func DeriveOverallStatus(face, geo, device CheckStatus) OverallStatus {
	if face == CheckFailed || geo == CheckFailed || device == CheckFailed {
		return StatusInvalid
	}
	if (face == CheckSuccess || face == CheckSkipped) &&
		(geo == CheckSuccess || geo == CheckSkipped) &&
		device == CheckSuccess {
		return StatusValid
	}
	return StatusPendingReview
}

// Derive fills OverallStatus from the validation sub-object.
func (v Validation) Derive() OverallStatus {
	return DeriveOverallStatus(v.FaceRecognition.Status, v.Geolocation.Status, v.DeviceAuth.Status)
}
