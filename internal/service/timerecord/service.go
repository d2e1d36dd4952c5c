package timerecord

import (
	"context"
	"fmt"
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/facematch"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/geocheck"
)

type TimeRecordServiceImpl struct {
	timerecord.TimeRecordRepository
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
	faceMatcher facematch.Matcher
	geoChecker  geocheck.Checker
}

func NewTimeRecordService(
	timeRecordRepository timerecord.TimeRecordRepository,
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
	faceMatcher facematch.Matcher,
	geoChecker geocheck.Checker,
) timerecord.TimeRecordService {
	return &TimeRecordServiceImpl{
		TimeRecordRepository: timeRecordRepository,
		userRepo:             userRepository,
		companyRepo:          companyRepository,
		faceMatcher:          faceMatcher,
		geoChecker:           geoChecker,
	}
}

// Create implements timerecord.TimeRecordService. The three checks are
// independent; the overall status is derived from their outcomes only.
func (s *TimeRecordServiceImpl) Create(ctx context.Context, req timerecord.CreateRequest) (timerecord.Response, error) {
	if err := req.Validate(); err != nil {
		return timerecord.Response{}, err
	}

	if req.DeviceInfo.DeviceID == "" {
		return timerecord.Response{}, user.ErrDeviceIDRequired
	}

	owner, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return timerecord.Response{}, err
	}
	if !owner.IsActive {
		return timerecord.Response{}, user.ErrAccountDisabled
	}

	// Device authorization is a hard gate: an unknown device is rejected
	// before any record is written.
	if !owner.IsDeviceAuthorized(req.DeviceInfo.DeviceID) {
		return timerecord.Response{}, user.ErrDeviceNotAuthorized
	}

	companyData, err := s.companyRepo.GetByID(ctx, owner.CompanyID)
	if err != nil {
		return timerecord.Response{}, err
	}

	location := timerecord.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}

	imageURL := ""
	if req.FaceImageURL != nil {
		imageURL = *req.FaceImageURL
	}

	validation := timerecord.Validation{
		FaceRecognition: s.faceMatcher.Match(ctx, owner.ID, imageURL),
		Geolocation:     s.geoChecker.Check(location, companyData.Workplace),
		DeviceAuth:      timerecord.DeviceCheck{Status: timerecord.CheckSuccess},
	}

	record := timerecord.TimeRecord{
		UserID:        owner.ID,
		CompanyID:     owner.CompanyID,
		Type:          timerecord.RecordType(req.Type),
		Timestamp:     time.Now().UTC(),
		Location:      location,
		DeviceInfo:    req.DeviceInfo,
		Validation:    validation,
		OverallStatus: validation.Derive(),
		IsSynced:      true,
		Metadata:      req.Metadata,
	}

	created, err := s.TimeRecordRepository.Create(ctx, record)
	if err != nil {
		return timerecord.Response{}, fmt.Errorf("failed to persist time record: %w", err)
	}

	return timerecord.ToResponse(created), nil
}

// List implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) List(ctx context.Context, requestedUserID string, filter timerecord.ListFilter) (timerecord.ListResponse, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return timerecord.ListResponse{}, err
	}

	targetID := requestedUserID
	if targetID == "" {
		targetID = actor.UserID
	}

	if targetID != actor.UserID {
		target, err := s.userRepo.GetByID(ctx, targetID)
		if err != nil {
			return timerecord.ListResponse{}, err
		}
		if err := policy.CanAccessUserRecords(actor, target.ID, target.CompanyID); err != nil {
			return timerecord.ListResponse{}, err
		}
	}

	filter.UserID = targetID
	records, total, err := s.TimeRecordRepository.ListByUser(ctx, filter)
	if err != nil {
		return timerecord.ListResponse{}, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	responses := make([]timerecord.Response, 0, len(records))
	for _, rec := range records {
		responses = append(responses, timerecord.ToResponse(rec))
	}

	return timerecord.ListResponse{
		Records:    responses,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
