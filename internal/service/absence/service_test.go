package absence

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/absence"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
)

type fakeAbsenceRepo struct {
	absence.AbsenceRepository
	stored   map[string]absence.Absence
	reviewed *absence.Absence
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	a.ID = "abs-1"
	a.CreatedAt = time.Now().UTC()
	return a, nil
}

func (f *fakeAbsenceRepo) GetByID(ctx context.Context, id string) (absence.Absence, error) {
	a, ok := f.stored[id]
	if !ok {
		return absence.Absence{}, absence.ErrAbsenceNotFound
	}
	return a, nil
}

func (f *fakeAbsenceRepo) Review(ctx context.Context, id string, status absence.Status, reviewerID string, notes *string) (absence.Absence, error) {
	a, ok := f.stored[id]
	if !ok {
		return absence.Absence{}, absence.ErrAbsenceNotFound
	}
	now := time.Now().UTC()
	a.Status = status
	a.ReviewedBy = &reviewerID
	a.ReviewedAt = &now
	a.ReviewNotes = notes
	f.reviewed = &a
	return a, nil
}

func actorContext(t *testing.T, userID, companyID string, role user.Role) context.Context {
	t.Helper()

	auth := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, token, err := auth.Encode(map[string]interface{}{
		"user_id":    userID,
		"company_id": companyID,
		"role":       string(role),
	})
	require.NoError(t, err)

	decoded, err := auth.Decode(token)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), decoded, nil)
}

func TestAbsenceCreateDefaultsType(t *testing.T) {
	svc := NewAbsenceService(&fakeAbsenceRepo{})

	resp, err := svc.Create(context.Background(), absence.CreateRequest{
		UserID:    "u1",
		CompanyID: "c1",
		Date:      "2025-03-10",
		Reason:    "Consulta médica de rotina",
	})
	require.NoError(t, err)

	assert.Equal(t, string(absence.TypeJustified), resp.Type)
	assert.Equal(t, string(absence.StatusPending), resp.Status)
	assert.Equal(t, "2025-03-10", resp.Date)
}

func TestAbsenceReviewStampsReviewer(t *testing.T) {
	repo := &fakeAbsenceRepo{stored: map[string]absence.Absence{
		"abs-1": {ID: "abs-1", UserID: "u1", CompanyID: "c1", Status: absence.StatusPending},
	}}
	svc := NewAbsenceService(repo)

	ctx := actorContext(t, "mgr-1", "c1", user.RoleManager)
	notes := "Atestado conferido"
	resp, err := svc.Review(ctx, "abs-1", absence.ReviewRequest{
		Status:      string(absence.StatusApproved),
		ReviewNotes: &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, string(absence.StatusApproved), resp.Status)
	require.NotNil(t, repo.reviewed)
	require.NotNil(t, repo.reviewed.ReviewedBy)
	assert.Equal(t, "mgr-1", *repo.reviewed.ReviewedBy)
}

func TestAbsenceReviewCrossCompanyRejected(t *testing.T) {
	repo := &fakeAbsenceRepo{stored: map[string]absence.Absence{
		"abs-1": {ID: "abs-1", UserID: "u1", CompanyID: "c1", Status: absence.StatusPending},
	}}
	svc := NewAbsenceService(repo)

	ctx := actorContext(t, "mgr-2", "c2", user.RoleManager)
	_, err := svc.Review(ctx, "abs-1", absence.ReviewRequest{Status: string(absence.StatusApproved)})

	assert.ErrorIs(t, err, policy.ErrCrossCompanyAccess)
	assert.Nil(t, repo.reviewed)
}

func TestAbsenceReviewEmployeeForbidden(t *testing.T) {
	repo := &fakeAbsenceRepo{stored: map[string]absence.Absence{
		"abs-1": {ID: "abs-1", UserID: "u1", CompanyID: "c1", Status: absence.StatusPending},
	}}
	svc := NewAbsenceService(repo)

	ctx := actorContext(t, "u1", "c1", user.RoleEmployee)
	_, err := svc.Review(ctx, "abs-1", absence.ReviewRequest{Status: string(absence.StatusRejected)})

	assert.ErrorIs(t, err, policy.ErrReviewerRoleRequired)
}

func TestAbsenceReviewInvalidStatus(t *testing.T) {
	svc := NewAbsenceService(&fakeAbsenceRepo{})

	_, err := svc.Review(context.Background(), "abs-1", absence.ReviewRequest{Status: "talvez"})

	assert.ErrorIs(t, err, absence.ErrInvalidReviewStatus)
}
