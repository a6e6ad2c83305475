package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/utils"
	"Foodgram-Backend/internal/utils/storage"
	"Foodgram-Backend/pkg/ingredient"
	"Foodgram-Backend/pkg/tag"
	"Foodgram-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID, role string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID, role string) error
		GetRecipe(ctx context.Context, id string, viewerID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error)

		AddFavorite(ctx context.Context, recipeID, userID string) (domain.RecipeShortResponse, error)
		RemoveFavorite(ctx context.Context, recipeID, userID string) error
		AddToShoppingCart(ctx context.Context, recipeID, userID string) (domain.RecipeShortResponse, error)
		RemoveFromShoppingCart(ctx context.Context, recipeID, userID string) error
		BuildShoppingList(ctx context.Context, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		tagRepository        tag.TagRepository
		userRepository       user.UserRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	tagRepository tag.TagRepository,
	userRepository user.UserRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		tagRepository:        tagRepository,
		userRepository:       userRepository,
		s3:                   s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if _, err := utils.ValidateName(req.Name); err != nil {
		return domain.RecipeResponse{}, err
	}
	if req.Image == "" {
		return domain.RecipeResponse{}, domain.ErrImageRequired
	}

	ingredients, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	authorUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorUUID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	imageURL, err := s.storeImage(recipe.ID.String(), req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe.ImageURL = imageURL

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, ingredients, tags); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipe(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID, role string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.AuthorID.String() != userID && role != domain.RoleAdmin {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	if _, err := utils.ValidateName(req.Name); err != nil {
		return domain.RecipeResponse{}, err
	}
	// both relation lists are mandatory on update
	if req.Ingredients == nil {
		return domain.RecipeResponse{}, domain.ErrIngredientsRequired
	}
	if req.Tags == nil {
		return domain.RecipeResponse{}, domain.ErrTagsRequired
	}

	ingredients, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.Name = req.Name
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime
	if req.Image != "" {
		imageURL, err := s.storeImage(recipe.ID.String(), req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.ImageURL = imageURL
	}

	// detach loaded relations before save; the repository replaces them
	recipe.Tags = nil
	recipe.Ingredients = nil

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, ingredients, tags); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipe(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID, role string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.AuthorID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if recipe.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipe(ctx context.Context, id string, viewerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	favorited := false
	inCart := false
	subscribed := false
	if viewerID != "" {
		if favorited, err = s.recipeRepository.IsFavorited(ctx, viewerID, id); err != nil {
			return domain.RecipeResponse{}, err
		}
		if inCart, err = s.recipeRepository.IsInCart(ctx, viewerID, id); err != nil {
			return domain.RecipeResponse{}, err
		}
		if viewerID != recipe.AuthorID.String() {
			if subscribed, err = s.userRepository.IsSubscribed(ctx, viewerID, recipe.AuthorID.String()); err != nil {
				return domain.RecipeResponse{}, err
			}
		}
	}

	return toRecipeResponse(recipe, favorited, inCart, subscribed), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error) {
	// a relation flag from an anonymous viewer yields an empty set, not an error
	if filter.Viewer == "" && (filter.IsFavorited || filter.IsInShoppingCart) {
		return []domain.RecipeResponse{}, 0, nil
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	recipeIDs := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID.String())
	}

	favoritedSet, err := s.recipeRepository.GetFavoritedSet(ctx, filter.Viewer, recipeIDs)
	if err != nil {
		return nil, 0, err
	}
	cartSet, err := s.recipeRepository.GetCartSet(ctx, filter.Viewer, recipeIDs)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		subscribed := false
		if filter.Viewer != "" && filter.Viewer != recipe.AuthorID.String() {
			if subscribed, err = s.userRepository.IsSubscribed(ctx, filter.Viewer, recipe.AuthorID.String()); err != nil {
				return nil, 0, err
			}
		}
		id := recipe.ID.String()
		response = append(response, toRecipeResponse(recipe, favoritedSet[id], cartSet[id], subscribed))
	}
	return response, count, nil
}

func (s *recipeService) AddFavorite(ctx context.Context, recipeID, userID string) (domain.RecipeShortResponse, error) {
	return s.addRelation(
		ctx, recipeID, userID,
		s.recipeRepository.IsFavorited,
		func(ctx context.Context, userUUID, recipeUUID uuid.UUID) error {
			return s.recipeRepository.AddFavorite(ctx, &entities.Favorite{UserID: userUUID, RecipeID: recipeUUID})
		},
		domain.ErrAlreadyFavorited,
	)
}

func (s *recipeService) RemoveFavorite(ctx context.Context, recipeID, userID string) error {
	return s.removeRelation(ctx, recipeID, userID, s.recipeRepository.RemoveFavorite, domain.ErrNotFavorited)
}

func (s *recipeService) AddToShoppingCart(ctx context.Context, recipeID, userID string) (domain.RecipeShortResponse, error) {
	return s.addRelation(
		ctx, recipeID, userID,
		s.recipeRepository.IsInCart,
		func(ctx context.Context, userUUID, recipeUUID uuid.UUID) error {
			return s.recipeRepository.AddToCart(ctx, &entities.ShoppingCart{UserID: userUUID, RecipeID: recipeUUID})
		},
		domain.ErrAlreadyInCart,
	)
}

func (s *recipeService) RemoveFromShoppingCart(ctx context.Context, recipeID, userID string) error {
	return s.removeRelation(ctx, recipeID, userID, s.recipeRepository.RemoveFromCart, domain.ErrNotInCart)
}

// BuildShoppingList renders the aggregated cart as one text line per
// (ingredient, unit) group. An empty cart renders an empty list.
func (s *recipeService) BuildShoppingList(ctx context.Context, userID string) (string, error) {
	items, err := s.recipeRepository.GetShoppingList(ctx, userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s: %d %s\n", item.Name, item.TotalAmount, item.MeasurementUnit)
	}
	return b.String(), nil
}

func (s *recipeService) addRelation(
	ctx context.Context,
	recipeID, userID string,
	exists func(ctx context.Context, userID, recipeID string) (bool, error),
	create func(ctx context.Context, userUUID, recipeUUID uuid.UUID) error,
	conflictErr error,
) (domain.RecipeShortResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeShortResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeShortResponse{}, err
	}

	alreadyAdded, err := exists(ctx, userID, recipeID)
	if err != nil {
		return domain.RecipeShortResponse{}, err
	}
	if alreadyAdded {
		return domain.RecipeShortResponse{}, conflictErr
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeShortResponse{}, domain.ErrParseUUID
	}

	if err := create(ctx, userUUID, recipe.ID); err != nil {
		// the unique constraint is authoritative under concurrent adds
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeShortResponse{}, conflictErr
		}
		return domain.RecipeShortResponse{}, err
	}

	return domain.RecipeShortResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}, nil
}

func (s *recipeService) removeRelation(
	ctx context.Context,
	recipeID, userID string,
	remove func(ctx context.Context, userID, recipeID string) (int64, error),
	missingErr error,
) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	affected, err := remove(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return missingErr
	}
	return nil
}

// resolveIngredients validates the submitted list (non-empty, no repeated
// ingredient, amount >= 1, every id known) and builds the join rows.
func (s *recipeService) resolveIngredients(ctx context.Context, reqs []domain.RecipeIngredientRequest) ([]*entities.RecipeIngredient, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrEmptyIngredients
	}

	ids := make([]string, 0, len(reqs))
	seen := make(map[string]struct{}, len(reqs))
	for _, req := range reqs {
		if req.Amount < 1 {
			return nil, domain.ErrInvalidAmount
		}
		if _, ok := seen[req.ID]; ok {
			return nil, domain.ErrDuplicateIngredients
		}
		seen[req.ID] = struct{}{}
		ids = append(ids, req.ID)
	}

	found, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, domain.ErrIngredientNotFound
	}

	rows := make([]*entities.RecipeIngredient, 0, len(reqs))
	for _, req := range reqs {
		ingredientUUID, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		rows = append(rows, &entities.RecipeIngredient{
			IngredientID: ingredientUUID,
			Amount:       req.Amount,
		})
	}
	return rows, nil
}

func (s *recipeService) resolveTags(ctx context.Context, ids []string) ([]*entities.Tag, error) {
	if len(ids) == 0 {
		return nil, domain.ErrEmptyTags
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return nil, domain.ErrDuplicateTags
		}
		seen[id] = struct{}{}
	}

	tags, err := s.tagRepository.GetTagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, domain.ErrTagNotFound
	}
	return tags, nil
}

// storeImage uploads inline base64 payloads; already stored links pass
// through unchanged.
func (s *recipeService) storeImage(recipeID, image string) (string, error) {
	if !storage.IsBase64Image(image) {
		return image, nil
	}
	objectKey, err := s.s3.UploadBase64(fmt.Sprintf("recipe-%s", recipeID), image, "recipes")
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

func toRecipeResponse(recipe *entities.Recipe, favorited, inCart, subscribed bool) domain.RecipeResponse {
	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, domain.TagResponse{
			ID:    t.ID.String(),
			Name:  t.Name,
			Color: t.Color,
			Slug:  t.Slug,
		})
	}

	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, ri := range recipe.Ingredients {
		item := domain.RecipeIngredientResponse{
			ID:     ri.IngredientID.String(),
			Amount: ri.Amount,
		}
		if ri.Ingredient != nil {
			item.Name = ri.Ingredient.Name
			item.MeasurementUnit = ri.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, item)
	}

	author := domain.UserResponse{}
	if recipe.Author != nil {
		author = domain.UserResponse{
			Email:        recipe.Author.Email,
			ID:           recipe.Author.ID.String(),
			Username:     recipe.Author.Username,
			FirstName:    recipe.Author.FirstName,
			LastName:     recipe.Author.LastName,
			IsSubscribed: subscribed,
		}
	}

	return domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             recipe.Name,
		Image:            recipe.ImageURL,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		PubDate:          recipe.CreatedAt,
	}
}
