package timerecord

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
)

type fakeTimeRecordRepo struct {
	timerecord.TimeRecordRepository
	created *timerecord.TimeRecord
}

func (f *fakeTimeRecordRepo) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	record.ID = "rec-1"
	record.CreatedAt = time.Now().UTC()
	f.created = &record
	return record, nil
}

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type fakeCompanyRepo struct {
	company.CompanyRepository
	companies map[string]company.Company
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

type stubMatcher struct {
	result timerecord.FaceCheck
}

func (m stubMatcher) Match(ctx context.Context, userID string, imageURL string) timerecord.FaceCheck {
	return m.result
}

type stubChecker struct {
	result timerecord.GeoCheck
}

func (c stubChecker) Check(loc timerecord.Location, workplace *company.WorkplaceLocation) timerecord.GeoCheck {
	return c.result
}

func newCreateFixture(face timerecord.CheckStatus, geo timerecord.CheckStatus) (*fakeTimeRecordRepo, timerecord.TimeRecordService) {
	recordRepo := &fakeTimeRecordRepo{}
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"u1": {
			ID:        "u1",
			CompanyID: "c1",
			IsActive:  true,
			AuthorizedDevices: []user.AuthorizedDevice{
				{DeviceID: "dev-1", DeviceName: "Pixel 9"},
			},
		},
		"u-disabled": {ID: "u-disabled", CompanyID: "c1", IsActive: false},
	}}
	companyRepo := &fakeCompanyRepo{companies: map[string]company.Company{
		"c1": {ID: "c1", Name: "Acme", IsActive: true},
	}}

	svc := NewTimeRecordService(
		recordRepo,
		userRepo,
		companyRepo,
		stubMatcher{result: timerecord.FaceCheck{Status: face}},
		stubChecker{result: timerecord.GeoCheck{Status: geo}},
	)
	return recordRepo, svc
}

func validCreateRequest() timerecord.CreateRequest {
	return timerecord.CreateRequest{
		Type:      "entrada",
		Latitude:  -23.5505,
		Longitude: -46.6333,
		UserID:    "u1",
		DeviceInfo: timerecord.DeviceInfo{
			DeviceID:   "dev-1",
			DeviceName: "Pixel 9",
			Platform:   "android",
		},
	}
}

func TestCreate_ValidRecord(t *testing.T) {
	repo, svc := newCreateFixture(timerecord.CheckSuccess, timerecord.CheckSuccess)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "rec-1", resp.ID)
	assert.Equal(t, string(timerecord.StatusValid), resp.OverallStatus)
	assert.True(t, resp.IsSynced)

	require.NotNil(t, repo.created)
	assert.Equal(t, "c1", repo.created.CompanyID)
	assert.Equal(t, timerecord.CheckSuccess, repo.created.Validation.DeviceAuth.Status)
	assert.False(t, repo.created.Timestamp.IsZero())
}

func TestCreate_FailedGeoMakesInvalid(t *testing.T) {
	_, svc := newCreateFixture(timerecord.CheckSuccess, timerecord.CheckFailed)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, string(timerecord.StatusInvalid), resp.OverallStatus)
}

func TestCreate_PendingFaceLandsInReview(t *testing.T) {
	_, svc := newCreateFixture(timerecord.CheckPending, timerecord.CheckSuccess)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, string(timerecord.StatusPendingReview), resp.OverallStatus)
}

func TestCreate_MissingDeviceID(t *testing.T) {
	_, svc := newCreateFixture(timerecord.CheckSuccess, timerecord.CheckSuccess)

	req := validCreateRequest()
	req.DeviceInfo.DeviceID = ""

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrDeviceIDRequired)
}

func TestCreate_UnauthorizedDeviceRejected(t *testing.T) {
	repo, svc := newCreateFixture(timerecord.CheckSuccess, timerecord.CheckSuccess)

	req := validCreateRequest()
	req.DeviceInfo.DeviceID = "dev-unknown"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrDeviceNotAuthorized)
	assert.Nil(t, repo.created, "no record may be written for an unauthorized device")
}

func TestCreate_DisabledAccountRejected(t *testing.T) {
	_, svc := newCreateFixture(timerecord.CheckSuccess, timerecord.CheckSuccess)

	req := validCreateRequest()
	req.UserID = "u-disabled"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrAccountDisabled)
}
