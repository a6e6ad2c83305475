package recipe

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.RecipeIngredient, tags []*entities.Tag) error {
	args := m.Called(ctx, recipe, ingredients, tags)
	return args.Error(0)
}

func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.RecipeIngredient, tags []*entities.Tag) error {
	args := m.Called(ctx, recipe, ingredients, tags)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) AddFavorite(ctx context.Context, favorite *entities.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockRecipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) (int64, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) IsFavorited(ctx context.Context, userID, recipeID string) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipeRepository) AddToCart(ctx context.Context, item *entities.ShoppingCart) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRecipeRepository) RemoveFromCart(ctx context.Context, userID, recipeID string) (int64, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) IsInCart(ctx context.Context, userID, recipeID string) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipeRepository) GetFavoritedSet(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockRecipeRepository) GetCartSet(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockRecipeRepository) GetShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingListItem), args.Error(1)
}

type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetIngredients(ctx context.Context, namePrefix string) ([]*entities.Ingredient, error) {
	args := m.Called(ctx, namePrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetIngredientsByIDs(ctx context.Context, ids []string) ([]*entities.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Ingredient), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) CreateTag(ctx context.Context, tag *entities.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) GetTagByID(ctx context.Context, id string) (*entities.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Tag), args.Error(1)
}

func (m *MockTagRepository) GetTags(ctx context.Context) ([]*entities.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Tag), args.Error(1)
}

func (m *MockTagRepository) GetTagsByIDs(ctx context.Context, ids []string) ([]*entities.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Tag), args.Error(1)
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

type MockAwsS3 struct {
	mock.Mock
}

func (m *MockAwsS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	args := m.Called(fileName, file, dir, allowedTypes)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) UploadBase64(fileName string, data string, dir string) (string, error) {
	args := m.Called(fileName, data, dir)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	args := m.Called(objectKey, file, allowedTypes)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) DeleteFile(objectKey string) error {
	args := m.Called(objectKey)
	return args.Error(0)
}

func (m *MockAwsS3) GetPublicLinkKey(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

func (m *MockAwsS3) GetObjectKeyFromLink(link string) string {
	args := m.Called(link)
	return args.String(0)
}

type recipeServiceMocks struct {
	recipeRepo     *MockRecipeRepository
	ingredientRepo *MockIngredientRepository
	tagRepo        *MockTagRepository
	userRepo       *MockUserRepository
	s3             *MockAwsS3
}

func newRecipeService(t *testing.T) (RecipeService, recipeServiceMocks) {
	t.Helper()
	m := recipeServiceMocks{
		recipeRepo:     new(MockRecipeRepository),
		ingredientRepo: new(MockIngredientRepository),
		tagRepo:        new(MockTagRepository),
		userRepo:       new(MockUserRepository),
		s3:             new(MockAwsS3),
	}
	svc := NewRecipeService(m.recipeRepo, m.ingredientRepo, m.tagRepo, m.userRepo, m.s3)
	return svc, m
}

func sampleRecipe(authorID uuid.UUID) *entities.Recipe {
	return &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        "Borscht",
		Text:        "Cook it slowly",
		CookingTime: 90,
		ImageURL:    "https://bucket.s3.eu-central-1.amazonaws.com/recipes/recipe-1.png",
	}
}

func TestGetRecipeResolvesNestedRepresentation(t *testing.T) {
	svc, m := newRecipeService(t)

	viewerID := uuid.NewString()
	author := &entities.User{
		ID:        uuid.New(),
		Email:     "author@example.com",
		Username:  "author",
		FirstName: "Alice",
		LastName:  "Cook",
	}
	tag := &entities.Tag{ID: uuid.New(), Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}
	flour := &entities.Ingredient{ID: uuid.New(), Name: "Flour", MeasurementUnit: "kg"}
	sugar := &entities.Ingredient{ID: uuid.New(), Name: "Sugar", MeasurementUnit: "g"}

	recipe := sampleRecipe(author.ID)
	recipe.CreatedAt = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	recipe.Author = author
	recipe.Tags = []*entities.Tag{tag}
	recipe.Ingredients = []*entities.RecipeIngredient{
		{RecipeID: recipe.ID, IngredientID: flour.ID, Amount: 2, Ingredient: flour},
		{RecipeID: recipe.ID, IngredientID: sugar.ID, Amount: 150, Ingredient: sugar},
	}

	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)
	m.recipeRepo.On("IsFavorited", mock.Anything, viewerID, recipe.ID.String()).Return(true, nil)
	m.recipeRepo.On("IsInCart", mock.Anything, viewerID, recipe.ID.String()).Return(false, nil)
	m.userRepo.On("IsSubscribed", mock.Anything, viewerID, author.ID.String()).Return(true, nil)

	res, err := svc.GetRecipe(context.Background(), recipe.ID.String(), viewerID)

	assert.NoError(t, err)
	assert.Equal(t, recipe.ID.String(), res.ID)
	assert.Equal(t, recipe.Name, res.Name)
	assert.Equal(t, recipe.Text, res.Text)
	assert.Equal(t, recipe.CookingTime, res.CookingTime)
	assert.Equal(t, recipe.ImageURL, res.Image)
	assert.Equal(t, recipe.CreatedAt, res.PubDate)

	assert.True(t, res.IsFavorited)
	assert.False(t, res.IsInShoppingCart)

	assert.Equal(t, author.ID.String(), res.Author.ID)
	assert.Equal(t, author.Username, res.Author.Username)
	assert.Equal(t, author.Email, res.Author.Email)
	assert.True(t, res.Author.IsSubscribed)

	require.Len(t, res.Tags, 1)
	assert.Equal(t, tag.ID.String(), res.Tags[0].ID)
	assert.Equal(t, tag.Name, res.Tags[0].Name)
	assert.Equal(t, tag.Color, res.Tags[0].Color)
	assert.Equal(t, tag.Slug, res.Tags[0].Slug)

	require.Len(t, res.Ingredients, 2)
	assert.Equal(t, flour.ID.String(), res.Ingredients[0].ID)
	assert.Equal(t, "Flour", res.Ingredients[0].Name)
	assert.Equal(t, "kg", res.Ingredients[0].MeasurementUnit)
	assert.Equal(t, 2, res.Ingredients[0].Amount)
	assert.Equal(t, "Sugar", res.Ingredients[1].Name)
	assert.Equal(t, "g", res.Ingredients[1].MeasurementUnit)
	assert.Equal(t, 150, res.Ingredients[1].Amount)
}

func TestGetRecipeAnonymousViewerFlags(t *testing.T) {
	svc, m := newRecipeService(t)

	recipe := sampleRecipe(uuid.New())
	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)

	res, err := svc.GetRecipe(context.Background(), recipe.ID.String(), "")

	assert.NoError(t, err)
	assert.False(t, res.IsFavorited)
	assert.False(t, res.IsInShoppingCart)
	assert.False(t, res.Author.IsSubscribed)
	m.recipeRepo.AssertNotCalled(t, "IsFavorited", mock.Anything, mock.Anything, mock.Anything)
	m.userRepo.AssertNotCalled(t, "IsSubscribed", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRecipeMissingImage(t *testing.T) {
	svc, m := newRecipeService(t)

	req := domain.CreateRecipeRequest{
		Name:        "Borscht",
		Text:        "Cook it slowly",
		CookingTime: 90,
		Ingredients: []domain.RecipeIngredientRequest{{ID: uuid.NewString(), Amount: 2}},
		Tags:        []string{uuid.NewString()},
	}

	_, err := svc.CreateRecipe(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrImageRequired)
	m.recipeRepo.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRecipeDuplicateIngredients(t *testing.T) {
	svc, m := newRecipeService(t)

	ingredientID := uuid.NewString()
	req := domain.CreateRecipeRequest{
		Name:        "Borscht",
		Text:        "Cook it slowly",
		CookingTime: 90,
		Image:       "https://example.com/borscht.png",
		Ingredients: []domain.RecipeIngredientRequest{
			{ID: ingredientID, Amount: 2},
			{ID: ingredientID, Amount: 5},
		},
		Tags: []string{uuid.NewString()},
	}

	_, err := svc.CreateRecipe(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrDuplicateIngredients)
	m.ingredientRepo.AssertNotCalled(t, "GetIngredientsByIDs", mock.Anything, mock.Anything)
	m.recipeRepo.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRecipeZeroAmount(t *testing.T) {
	svc, _ := newRecipeService(t)

	req := domain.CreateRecipeRequest{
		Name:        "Borscht",
		Text:        "Cook it slowly",
		CookingTime: 90,
		Image:       "https://example.com/borscht.png",
		Ingredients: []domain.RecipeIngredientRequest{{ID: uuid.NewString(), Amount: 0}},
		Tags:        []string{uuid.NewString()},
	}

	_, err := svc.CreateRecipe(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCreateRecipeUnknownIngredient(t *testing.T) {
	svc, m := newRecipeService(t)

	ingredientID := uuid.NewString()
	req := domain.CreateRecipeRequest{
		Name:        "Borscht",
		Text:        "Cook it slowly",
		CookingTime: 90,
		Image:       "https://example.com/borscht.png",
		Ingredients: []domain.RecipeIngredientRequest{{ID: ingredientID, Amount: 2}},
		Tags:        []string{uuid.NewString()},
	}

	m.ingredientRepo.On("GetIngredientsByIDs", mock.Anything, []string{ingredientID}).
		Return([]*entities.Ingredient{}, nil)

	_, err := svc.CreateRecipe(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	m.recipeRepo.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRecipeForbiddenForOtherUser(t *testing.T) {
	svc, m := newRecipeService(t)

	recipe := sampleRecipe(uuid.New())
	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)

	req := domain.UpdateRecipeRequest{
		Name:        "Borscht",
		Text:        "Cook it slowly",
		CookingTime: 90,
		Ingredients: []domain.RecipeIngredientRequest{{ID: uuid.NewString(), Amount: 2}},
		Tags:        []string{uuid.NewString()},
	}

	_, err := svc.UpdateRecipe(context.Background(), recipe.ID.String(), req, uuid.NewString(), domain.RoleUser)

	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
	m.recipeRepo.AssertNotCalled(t, "UpdateRecipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRecipeOmittedTags(t *testing.T) {
	svc, m := newRecipeService(t)

	authorID := uuid.New()
	recipe := sampleRecipe(authorID)
	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)

	req := domain.UpdateRecipeRequest{
		Name:        "Borscht",
		Text:        "Cook it slowly",
		CookingTime: 90,
		Ingredients: []domain.RecipeIngredientRequest{{ID: uuid.NewString(), Amount: 2}},
	}

	_, err := svc.UpdateRecipe(context.Background(), recipe.ID.String(), req, authorID.String(), domain.RoleUser)

	assert.ErrorIs(t, err, domain.ErrTagsRequired)
}

func TestUpdateRecipeOmittedIngredients(t *testing.T) {
	svc, m := newRecipeService(t)

	authorID := uuid.New()
	recipe := sampleRecipe(authorID)
	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)

	req := domain.UpdateRecipeRequest{
		Name:        "Borscht",
		Text:        "Cook it slowly",
		CookingTime: 90,
		Tags:        []string{uuid.NewString()},
	}

	_, err := svc.UpdateRecipe(context.Background(), recipe.ID.String(), req, authorID.String(), domain.RoleUser)

	assert.ErrorIs(t, err, domain.ErrIngredientsRequired)
}

func TestGetRecipesAnonymousFavoritedFilter(t *testing.T) {
	svc, m := newRecipeService(t)

	res, count, err := svc.GetRecipes(context.Background(), domain.RecipeFilter{IsFavorited: true}, 1, 20)

	assert.NoError(t, err)
	assert.Empty(t, res)
	assert.Equal(t, int64(0), count)
	m.recipeRepo.AssertNotCalled(t, "GetRecipes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddFavoriteTwice(t *testing.T) {
	svc, m := newRecipeService(t)

	userID := uuid.NewString()
	recipe := sampleRecipe(uuid.New())
	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)
	m.recipeRepo.On("IsFavorited", mock.Anything, userID, recipe.ID.String()).Return(true, nil)

	_, err := svc.AddFavorite(context.Background(), recipe.ID.String(), userID)

	assert.ErrorIs(t, err, domain.ErrAlreadyFavorited)
	m.recipeRepo.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything)
}

func TestAddFavoriteReturnsShortView(t *testing.T) {
	svc, m := newRecipeService(t)

	userID := uuid.NewString()
	recipe := sampleRecipe(uuid.New())
	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)
	m.recipeRepo.On("IsFavorited", mock.Anything, userID, recipe.ID.String()).Return(false, nil)
	m.recipeRepo.On("AddFavorite", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.AddFavorite(context.Background(), recipe.ID.String(), userID)

	assert.NoError(t, err)
	assert.Equal(t, recipe.ID.String(), res.ID)
	assert.Equal(t, recipe.Name, res.Name)
	assert.Equal(t, recipe.ImageURL, res.Image)
	assert.Equal(t, recipe.CookingTime, res.CookingTime)
}

func TestAddToCartDuplicateKeyRace(t *testing.T) {
	svc, m := newRecipeService(t)

	userID := uuid.NewString()
	recipe := sampleRecipe(uuid.New())
	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)
	m.recipeRepo.On("IsInCart", mock.Anything, userID, recipe.ID.String()).Return(false, nil)
	m.recipeRepo.On("AddToCart", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.AddToShoppingCart(context.Background(), recipe.ID.String(), userID)

	assert.ErrorIs(t, err, domain.ErrAlreadyInCart)
}

func TestRemoveFavoriteNeverAdded(t *testing.T) {
	svc, m := newRecipeService(t)

	userID := uuid.NewString()
	recipe := sampleRecipe(uuid.New())
	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)
	m.recipeRepo.On("RemoveFavorite", mock.Anything, userID, recipe.ID.String()).Return(int64(0), nil)

	err := svc.RemoveFavorite(context.Background(), recipe.ID.String(), userID)

	assert.ErrorIs(t, err, domain.ErrNotFavorited)
}

func TestRemoveFavoriteMissingRecipe(t *testing.T) {
	svc, m := newRecipeService(t)

	recipeID := uuid.NewString()
	m.recipeRepo.On("GetRecipeByID", mock.Anything, recipeID).Return(nil, gorm.ErrRecordNotFound)

	err := svc.RemoveFavorite(context.Background(), recipeID, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	m.recipeRepo.AssertNotCalled(t, "RemoveFavorite", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildShoppingListFormat(t *testing.T) {
	svc, m := newRecipeService(t)

	userID := uuid.NewString()
	m.recipeRepo.On("GetShoppingList", mock.Anything, userID).Return([]domain.ShoppingListItem{
		{Name: "Flour", MeasurementUnit: "kg", TotalAmount: 2},
		{Name: "Sugar", MeasurementUnit: "g", TotalAmount: 150},
	}, nil)

	list, err := svc.BuildShoppingList(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, "Flour: 2 kg\nSugar: 150 g\n", list)
}

func TestBuildShoppingListEmptyCart(t *testing.T) {
	svc, m := newRecipeService(t)

	userID := uuid.NewString()
	m.recipeRepo.On("GetShoppingList", mock.Anything, userID).Return([]domain.ShoppingListItem{}, nil)

	list, err := svc.BuildShoppingList(context.Background(), userID)

	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateRecipeInvalidName(t *testing.T) {
	svc, _ := newRecipeService(t)

	req := domain.CreateRecipeRequest{
		Name:        "Borscht!!!",
		Text:        "Cook it slowly",
		CookingTime: 90,
		Image:       "https://example.com/borscht.png",
		Ingredients: []domain.RecipeIngredientRequest{{ID: uuid.NewString(), Amount: 2}},
		Tags:        []string{uuid.NewString()},
	}

	_, err := svc.CreateRecipe(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
