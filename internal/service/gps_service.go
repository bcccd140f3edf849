package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"timetrack/internal/auth"
	"timetrack/internal/errors"
	"timetrack/internal/model"
	"timetrack/internal/repository"
)

// DefaultGpsLimit caps GET /gpx responses so a long track cannot blow up the
// payload.
const DefaultGpsLimit = 1000

// GpsInput carries a new point's payload fields. Latitude and longitude stay
// raw strings so the service owns numeric validation; clients send both
// numbers and quoted numbers.
type GpsInput struct {
	Latitude  string
	Longitude string
	Date      string
	Time      string
	Accuracy  *float64
	Altitude  *float64
	Speed     *float64
	Filename  string
}

// GpsQuery carries the supported GET filters.
type GpsQuery struct {
	User     string
	Date     string
	Filename string
	Limit    int
}

// GpsService handles GPS point operations.
type GpsService interface {
	Create(ctx context.Context, claims *auth.Claims, input GpsInput) (*model.GpsPoint, error)
	List(ctx context.Context, claims *auth.Claims, query GpsQuery) (points []model.GpsPoint, limited bool, err error)
}

type gpsService struct {
	repo repository.GpsRepository
}

// NewGpsService creates a new GPS service.
func NewGpsService(repo repository.GpsRepository) GpsService {
	return &gpsService{repo: repo}
}

// Create validates coordinates, stamps owner identity and appends the point.
func (s *gpsService) Create(ctx context.Context, claims *auth.Claims, input GpsInput) (*model.GpsPoint, error) {
	lat, err := strconv.ParseFloat(input.Latitude, 64)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}
	lng, err := strconv.ParseFloat(input.Longitude, 64)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, errors.ErrInvalidCoordinates
	}

	point := &model.GpsPoint{
		ID:        model.NewRecordID(model.GpsIDPrefix),
		Latitude:  lat,
		Longitude: lng,
		Date:      input.Date,
		Time:      input.Time,
		Accuracy:  input.Accuracy,
		Altitude:  input.Altitude,
		Speed:     input.Speed,
		Filename:  input.Filename,
		UserID:    claims.UserID,
		Username:  claims.Username,
		Timestamp: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, point); err != nil {
		return nil, fmt.Errorf("create gps point: %w", err)
	}
	return point, nil
}

// List returns the caller's points oldest first, truncated to the limit.
// limited reports whether the response filled the cap.
func (s *gpsService) List(ctx context.Context, claims *auth.Claims, query GpsQuery) ([]model.GpsPoint, bool, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultGpsLimit
	}

	filter := repository.GpsFilter{
		OwnerID:       claims.UserID,
		OwnerUsername: claims.Username,
		Username:      adminScope(claims, query.User),
		Date:          query.Date,
		Filename:      query.Filename,
		Limit:         limit,
	}
	points, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, false, err
	}
	return points, len(points) == limit, nil
}
