package subscription

import (
	"context"
	"testing"

	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) CreateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, userID, subscribingID string) (int64, error) {
	args := m.Called(ctx, userID, subscribingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) IsSubscribed(ctx context.Context, userID, subscribingID string) (bool, error) {
	args := m.Called(ctx, userID, subscribingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) GetSubscribings(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionRepository) GetRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]*entities.Recipe, int64, error) {
	args := m.Called(ctx, authorID, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Recipe), args.Get(1).(int64), args.Error(2)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) IsSubscribed(ctx context.Context, userID, subscribingID string) (bool, error) {
	args := m.Called(ctx, userID, subscribingID)
	return args.Bool(0), args.Error(1)
}

func sampleAuthor() *entities.User {
	return &entities.User{
		ID:        uuid.New(),
		Email:     "author@example.com",
		Username:  "author",
		FirstName: "Alice",
		LastName:  "Cook",
	}
}

func TestSubscribeToSelf(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	svc := NewSubscriptionService(subRepo, userRepo)

	userID := uuid.NewString()

	_, err := svc.Subscribe(context.Background(), userID, userID, 0)

	assert.ErrorIs(t, err, domain.ErrSelfSubscribe)
	userRepo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestSubscribeMissingTarget(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	svc := NewSubscriptionService(subRepo, userRepo)

	targetID := uuid.NewString()
	userRepo.On("GetUserByID", mock.Anything, targetID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Subscribe(context.Background(), uuid.NewString(), targetID, 0)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSubscribeTwice(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	svc := NewSubscriptionService(subRepo, userRepo)

	author := sampleAuthor()
	userID := uuid.NewString()
	userRepo.On("GetUserByID", mock.Anything, author.ID.String()).Return(author, nil)
	subRepo.On("IsSubscribed", mock.Anything, userID, author.ID.String()).Return(true, nil)

	_, err := svc.Subscribe(context.Background(), userID, author.ID.String(), 0)

	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	subRepo.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything)
}

func TestSubscribeDuplicateKeyRace(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	svc := NewSubscriptionService(subRepo, userRepo)

	author := sampleAuthor()
	userID := uuid.NewString()
	userRepo.On("GetUserByID", mock.Anything, author.ID.String()).Return(author, nil)
	subRepo.On("IsSubscribed", mock.Anything, userID, author.ID.String()).Return(false, nil)
	subRepo.On("CreateSubscription", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Subscribe(context.Background(), userID, author.ID.String(), 0)

	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
}

func TestSubscribeReturnsAuthorWithRecipes(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	svc := NewSubscriptionService(subRepo, userRepo)

	author := sampleAuthor()
	userID := uuid.NewString()
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    author.ID,
		Name:        "Pancakes",
		CookingTime: 20,
	}

	userRepo.On("GetUserByID", mock.Anything, author.ID.String()).Return(author, nil)
	subRepo.On("IsSubscribed", mock.Anything, userID, author.ID.String()).Return(false, nil)
	subRepo.On("CreateSubscription", mock.Anything, mock.Anything).Return(nil)
	subRepo.On("GetRecipesByAuthor", mock.Anything, author.ID.String(), 3).
		Return([]*entities.Recipe{recipe}, int64(5), nil)

	res, err := svc.Subscribe(context.Background(), userID, author.ID.String(), 3)

	assert.NoError(t, err)
	assert.True(t, res.IsSubscribed)
	assert.Equal(t, author.Username, res.Username)
	assert.Equal(t, int64(5), res.RecipesCount)
	assert.Len(t, res.Recipes, 1)
	assert.Equal(t, recipe.Name, res.Recipes[0].Name)
}

func TestUnsubscribeNotSubscribed(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	svc := NewSubscriptionService(subRepo, userRepo)

	author := sampleAuthor()
	userID := uuid.NewString()
	userRepo.On("GetUserByID", mock.Anything, author.ID.String()).Return(author, nil)
	subRepo.On("DeleteSubscription", mock.Anything, userID, author.ID.String()).Return(int64(0), nil)

	err := svc.Unsubscribe(context.Background(), userID, author.ID.String())

	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
}

func TestUnsubscribeMissingTarget(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	svc := NewSubscriptionService(subRepo, userRepo)

	targetID := uuid.NewString()
	userRepo.On("GetUserByID", mock.Anything, targetID).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Unsubscribe(context.Background(), uuid.NewString(), targetID)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	subRepo.AssertNotCalled(t, "DeleteSubscription", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSubscriptionsEmpty(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	svc := NewSubscriptionService(subRepo, userRepo)

	userID := uuid.NewString()
	subRepo.On("GetSubscribings", mock.Anything, userID, 1, 20).Return([]*entities.User{}, int64(0), nil)

	res, count, err := svc.GetSubscriptions(context.Background(), userID, 0, 1, 20)

	assert.NoError(t, err)
	assert.Empty(t, res)
	assert.Equal(t, int64(0), count)
}
