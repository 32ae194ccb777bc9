package response

import "time"

type TaskResponse struct {
	Id        uint       `json:"id"`
	Name      string     `json:"name"`
	Completed bool       `json:"completed"`
	CreatedAt *time.Time `json:"created_at"`
}
