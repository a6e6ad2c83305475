package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessAddFavorite     = "recipe added to favorites"
	MessageSuccessRemoveFavorite  = "recipe removed from favorites"
	MessageSuccessAddToCart       = "recipe added to shopping cart"
	MessageSuccessRemoveFromCart  = "recipe removed from shopping cart"
	MessageSuccessShoppingList    = "success build shopping list"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedFavorite        = "failed to update favorites"
	MessageFailedShoppingCart    = "failed to update shopping cart"
	MessageFailedShoppingList    = "failed to build shopping list"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrEmptyIngredients         = errors.New("recipe must contain at least one ingredient")
	ErrDuplicateIngredients     = errors.New("ingredients cannot repeat within one recipe")
	ErrInvalidAmount            = errors.New("ingredient amount must be at least 1")
	ErrEmptyTags                = errors.New("recipe must contain at least one tag")
	ErrDuplicateTags            = errors.New("tags cannot repeat within one recipe")
	ErrImageRequired            = errors.New("recipe image is required")
	ErrIngredientsRequired      = errors.New("field 'ingredients' is required for update")
	ErrTagsRequired             = errors.New("field 'tags' is required for update")
	ErrAlreadyFavorited         = errors.New("recipe already added to favorites")
	ErrNotFavorited             = errors.New("recipe was not added to favorites")
	ErrAlreadyInCart            = errors.New("recipe already added to shopping cart")
	ErrNotInCart                = errors.New("recipe was not added to shopping cart")
)

type (
	RecipeIngredientRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount" validate:"required,min=1"`
	}

	// Image is either a data:image/<ext>;base64 payload decoded and stored
	// before persistence, or an already stored object link.
	CreateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required,plainname,max=200"`
		Text        string                    `json:"text" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required,min=1"`
		Image       string                    `json:"image" validate:"required"`
		Tags        []string                  `json:"tags" validate:"omitempty,dive,uuid"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	UpdateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required,plainname,max=200"`
		Text        string                    `json:"text" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required,min=1"`
		Image       string                    `json:"image" validate:"omitempty"`
		Tags        []string                  `json:"tags" validate:"omitempty,dive,uuid"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	RecipeIngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               string                     `json:"id"`
		Tags             []TagResponse              `json:"tags"`
		Author           UserResponse               `json:"author"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
		PubDate          time.Time                  `json:"pub_date"`
	}

	// RecipeShortResponse is the minimal view used in nested contexts.
	RecipeShortResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	// RecipeFilter carries the collection query params. Viewer is the
	// authenticated requester id, empty for anonymous requests.
	RecipeFilter struct {
		Author           string
		TagSlugs         []string
		IsFavorited      bool
		IsInShoppingCart bool
		Viewer           string
	}

	ShoppingListItem struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		TotalAmount     int    `json:"total_amount"`
	}
)
