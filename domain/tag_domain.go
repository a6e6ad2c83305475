package domain

import (
	"errors"
)

var (
	MessageSuccessGetTags      = "success get tags"
	MessageSuccessGetTagDetail = "success get tag detail"
	MessageSuccessSaveTag      = "tag saved successfully"

	MessageFailedGetTags      = "failed to get tags"
	MessageFailedGetTagDetail = "failed to get tag detail"
	MessageFailedSaveTag      = "failed to save tag"

	ErrTagNotFound  = errors.New("tag not found")
	ErrDuplicateTag = errors.New("tag with the same name, color or slug already exists")
)

type (
	CreateTagRequest struct {
		Name  string `json:"name" validate:"required,plainname,max=200"`
		Color string `json:"color" validate:"required,hexcolor3or6"`
		Slug  string `json:"slug" validate:"required,tagslug,max=200"`
	}

	TagResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Slug  string `json:"slug"`
	}
)
