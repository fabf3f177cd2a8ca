package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/seacatering/backend/internal/dto"
	"github.com/seacatering/backend/internal/models"
	"github.com/seacatering/backend/internal/pricing"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// Create persists a new subscription for userID. The price comes from the
// request as computed by the form flow; status always starts ACTIVE.
func (s *SubscriptionService) Create(userID uuid.UUID, req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	if req.PlanName == "" || len(req.MealTypes) == 0 || len(req.DeliveryDays) == 0 || req.TotalPrice == nil {
		return nil, fmt.Errorf("%w: planName, mealTypes, deliveryDays and totalPrice are required", ErrInvalidInput)
	}
	if *req.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: totalPrice must be non-negative", ErrInvalidInput)
	}
	if !pricing.ValidDeliveryDays(req.DeliveryDays) {
		return nil, fmt.Errorf("%w: deliveryDays must be weekday names", ErrInvalidInput)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	sub := models.Subscription{
		ID:           uuid.New(),
		UserID:       user.ID,
		PlanName:     req.PlanName,
		MealTypes:    datatypes.NewJSONSlice(req.MealTypes),
		DeliveryDays: datatypes.NewJSONSlice(req.DeliveryDays),
		TotalPrice:   *req.TotalPrice,
		Allergies:    req.Allergies,
		Status:       models.StatusActive,
	}

	if err := s.db.Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &sub, nil
}

// ListByUser returns the user's subscriptions, newest first.
func (s *SubscriptionService) ListByUser(userID uuid.UUID) ([]models.Subscription, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var subs []models.Subscription
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

// Pause overwrites the status with PAUSED and stores the window,
// regardless of the current status. Concurrent writers race with
// last-write-wins, matching single-row update semantics.
func (s *SubscriptionService) Pause(id uuid.UUID, start, end time.Time) (*models.Subscription, error) {
	return s.update(id, map[string]interface{}{
		"status":           models.StatusPaused,
		"pause_start_date": start,
		"pause_end_date":   end,
	})
}

// Cancel overwrites the status with CANCELLED. Repeated calls are harmless.
func (s *SubscriptionService) Cancel(id uuid.UUID) (*models.Subscription, error) {
	return s.update(id, map[string]interface{}{
		"status": models.StatusCancelled,
	})
}

// Resume reactivates a subscription, stamping reactivated_at for the admin
// reactivation metric and clearing any pause window.
func (s *SubscriptionService) Resume(id uuid.UUID) (*models.Subscription, error) {
	now := time.Now()
	return s.update(id, map[string]interface{}{
		"status":           models.StatusActive,
		"reactivated_at":   now,
		"pause_start_date": nil,
		"pause_end_date":   nil,
	})
}

func (s *SubscriptionService) update(id uuid.UUID, fields map[string]interface{}) (*models.Subscription, error) {
	res := s.db.Model(&models.Subscription{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrSubscriptionNotFound
	}

	var sub models.Subscription
	if err := s.db.First(&sub, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload subscription: %w", err)
	}
	return &sub, nil
}

// Metrics aggregates the admin dashboard figures for the inclusive window
// [start, end]. totalActive is a snapshot, not windowed.
func (s *SubscriptionService) Metrics(start, end time.Time) (*dto.MetricsResponse, error) {
	var m dto.MetricsResponse

	if err := s.db.Model(&models.Subscription{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Count(&m.NewSubscriptions).Error; err != nil {
		return nil, fmt.Errorf("failed to count new subscriptions: %w", err)
	}

	if err := s.db.Model(&models.Subscription{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&m.MRR).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if err := s.db.Model(&models.Subscription{}).
		Where("reactivated_at >= ? AND reactivated_at <= ?", start, end).
		Count(&m.Reactivations).Error; err != nil {
		return nil, fmt.Errorf("failed to count reactivations: %w", err)
	}

	if err := s.db.Model(&models.Subscription{}).
		Where("status = ?", models.StatusActive).
		Count(&m.TotalActive).Error; err != nil {
		return nil, fmt.Errorf("failed to count active subscriptions: %w", err)
	}

	return &m, nil
}
