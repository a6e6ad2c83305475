package handlers

import (
	"Foodgram-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusCode maps domain errors onto HTTP statuses: missing entities are
// 404, forbidden mutations 403, business-rule failures 400, anything
// unrecognized 500.
func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedRecipeAccess),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrCredentialsNotMatch),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrEmptyIngredients),
		errors.Is(err, domain.ErrDuplicateIngredients),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyTags),
		errors.Is(err, domain.ErrDuplicateTags),
		errors.Is(err, domain.ErrImageRequired),
		errors.Is(err, domain.ErrIngredientsRequired),
		errors.Is(err, domain.ErrTagsRequired),
		errors.Is(err, domain.ErrAlreadyFavorited),
		errors.Is(err, domain.ErrNotFavorited),
		errors.Is(err, domain.ErrAlreadyInCart),
		errors.Is(err, domain.ErrNotInCart),
		errors.Is(err, domain.ErrAlreadySubscribed),
		errors.Is(err, domain.ErrSubscriptionNotFound),
		errors.Is(err, domain.ErrSelfSubscribe),
		errors.Is(err, domain.ErrDuplicateTag),
		errors.Is(err, domain.ErrDuplicateIngredient),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrUsernameAlreadyExists),
		errors.Is(err, domain.ErrEmailAlreadyVerified):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
