package timerecord

import "testing"

func TestDeriveOverallStatus(t *testing.T) {
	cases := []struct {
		name   string
		face   CheckStatus
		geo    CheckStatus
		device CheckStatus
		want   OverallStatus
	}{
		{"all success", CheckSuccess, CheckSuccess, CheckSuccess, StatusValid},
		{"face skipped", CheckSkipped, CheckSuccess, CheckSuccess, StatusValid},
		{"geo skipped", CheckSuccess, CheckSkipped, CheckSuccess, StatusValid},
		{"face and geo skipped", CheckSkipped, CheckSkipped, CheckSuccess, StatusValid},

		{"face failed", CheckFailed, CheckSuccess, CheckSuccess, StatusInvalid},
		{"geo failed", CheckSuccess, CheckFailed, CheckSuccess, StatusInvalid},
		{"device failed", CheckSuccess, CheckSuccess, CheckFailed, StatusInvalid},
		{"all failed", CheckFailed, CheckFailed, CheckFailed, StatusInvalid},
		{"failure beats pending", CheckPending, CheckFailed, CheckSuccess, StatusInvalid},

		{"face pending", CheckPending, CheckSuccess, CheckSuccess, StatusPendingReview},
		{"face pending geo skipped", CheckPending, CheckSkipped, CheckSuccess, StatusPendingReview},
		{"device skipped", CheckSuccess, CheckSuccess, CheckSkipped, StatusPendingReview},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DeriveOverallStatus(c.face, c.geo, c.device)
			if got != c.want {
				t.Errorf("DeriveOverallStatus(%s, %s, %s) = %s, want %s",
					c.face, c.geo, c.device, got, c.want)
			}
		})
	}
}

func TestValidationDerive(t *testing.T) {
	v := Validation{
		FaceRecognition: FaceCheck{Status: CheckSuccess},
		Geolocation:     GeoCheck{Status: CheckSuccess},
		DeviceAuth:      DeviceCheck{Status: CheckSuccess},
	}
	if got := v.Derive(); got != StatusValid {
		t.Errorf("Derive() = %s, want %s", got, StatusValid)
	}

	v.Geolocation.Status = CheckFailed
	if got := v.Derive(); got != StatusInvalid {
		t.Errorf("Derive() = %s, want %s", got, StatusInvalid)
	}
}

func TestValidRecordType(t *testing.T) {
	for _, valid := range []string{"entrada", "pausa", "retorno", "saida"} {
		if !ValidRecordType(valid) {
			t.Errorf("ValidRecordType(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "ENTRADA", "lunch", "clock_in"} {
		if ValidRecordType(invalid) {
			t.Errorf("ValidRecordType(%q) = true, want false", invalid)
		}
	}
}
