package model

type CreateTodoDTO struct {
	Title string `json:"title" example:"buy milk"`
}

// UpdateTodoDTO carries a partial update; nil fields are left untouched.
type UpdateTodoDTO struct {
	Title     *string `json:"title,omitempty" example:"buy oat milk"`
	Completed *bool   `json:"completed,omitempty" example:"true"`
}
