package subscription

import (
	"Foodgram-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		CreateSubscription(ctx context.Context, subscription *entities.Subscription) error
		DeleteSubscription(ctx context.Context, userID, subscribingID string) (int64, error)
		IsSubscribed(ctx context.Context, userID, subscribingID string) (bool, error)
		GetSubscribings(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error)
		GetRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]*entities.Recipe, int64, error)
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) DeleteSubscription(ctx context.Context, userID, subscribingID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND subscribing_id = ?", userID, subscribingID).
		Delete(&entities.Subscription{})
	return result.RowsAffected, result.Error
}

func (r *subscriptionRepository) IsSubscribed(ctx context.Context, userID, subscribingID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("user_id = ? AND subscribing_id = ?", userID, subscribingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetSubscribings lists the authors the user follows, most recently
// published first; authors with no recipes sort last.
func (r *subscriptionRepository) GetSubscribings(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN subscriptions ON subscriptions.subscribing_id = users.id").
		Joins("LEFT JOIN recipes ON recipes.author_id = users.id").
		Where("subscriptions.user_id = ?", userID).
		Group("users.id").
		Order("MAX(recipes.created_at) DESC NULLS LAST").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *subscriptionRepository) GetRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}
