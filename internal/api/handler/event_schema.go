package handler

type eventRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date"        validate:"required"`
}
