package domain

import (
	"errors"
)

var (
	MessageSuccessGetIngredients = "success get ingredients"
	MessageSuccessSaveIngredient = "ingredient saved successfully"

	MessageFailedGetIngredients = "failed to get ingredients"
	MessageFailedSaveIngredient = "failed to save ingredient"

	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrDuplicateIngredient = errors.New("ingredient with the same name and measurement unit already exists")
)

type (
	CreateIngredientRequest struct {
		Name            string `json:"name" validate:"required,plainname,max=200"`
		MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
	}

	IngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)
