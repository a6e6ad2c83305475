package subscription

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/user"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		Subscribe(ctx context.Context, userID, targetID string, recipesLimit int) (domain.SubscriptionResponse, error)
		Unsubscribe(ctx context.Context, userID, targetID string) error
		GetSubscriptions(ctx context.Context, userID string, recipesLimit, page, limit int) ([]domain.SubscriptionResponse, int64, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, userRepository user.UserRepository) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID, targetID string, recipesLimit int) (domain.SubscriptionResponse, error) {
	if userID == targetID {
		return domain.SubscriptionResponse{}, domain.ErrSelfSubscribe
	}

	target, err := s.userRepository.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscriptionResponse{}, err
	}

	exists, err := s.subscriptionRepository.IsSubscribed(ctx, userID, targetID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	if exists {
		return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}
	targetUUID, err := uuid.Parse(targetID)
	if err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}

	subscription := &entities.Subscription{
		UserID:        userUUID,
		SubscribingID: targetUUID,
	}
	if err := s.subscriptionRepository.CreateSubscription(ctx, subscription); err != nil {
		// the unique index is the authority under concurrent subscribes
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
		}
		if errors.Is(err, gorm.ErrCheckConstraintViolated) {
			return domain.SubscriptionResponse{}, domain.ErrSelfSubscribe
		}
		return domain.SubscriptionResponse{}, err
	}

	return s.buildSubscriptionResponse(ctx, target, recipesLimit)
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, targetID string) error {
	if _, err := s.userRepository.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	affected, err := s.subscriptionRepository.DeleteSubscription(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, userID string, recipesLimit, page, limit int) ([]domain.SubscriptionResponse, int64, error) {
	authors, count, err := s.subscriptionRepository.GetSubscribings(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.SubscriptionResponse, 0, len(authors))
	for _, author := range authors {
		item, err := s.buildSubscriptionResponse(ctx, author, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		response = append(response, item)
	}
	return response, count, nil
}

func (s *subscriptionService) buildSubscriptionResponse(ctx context.Context, author *entities.User, recipesLimit int) (domain.SubscriptionResponse, error) {
	recipes, recipesCount, err := s.subscriptionRepository.GetRecipesByAuthor(ctx, author.ID.String(), recipesLimit)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	shorts := make([]domain.RecipeShortResponse, 0, len(recipes))
	for _, recipe := range recipes {
		shorts = append(shorts, domain.RecipeShortResponse{
			ID:          recipe.ID.String(),
			Name:        recipe.Name,
			Image:       recipe.ImageURL,
			CookingTime: recipe.CookingTime,
		})
	}

	return domain.SubscriptionResponse{
		UserResponse: domain.UserResponse{
			Email:        author.Email,
			ID:           author.ID.String(),
			Username:     author.Username,
			FirstName:    author.FirstName,
			LastName:     author.LastName,
			IsSubscribed: true,
		},
		Recipes:      shorts,
		RecipesCount: recipesCount,
	}, nil
}
