package request

type CreateTaskRequest struct {
	Name string `json:"name" validate:"required,max=500"`
}
