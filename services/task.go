package services

import (
	"task_management_ms/domain"
	"task_management_ms/dtos/response"
	"task_management_ms/repository"

	"gorm.io/gorm"
)

type ITaskService interface {
	List(username string) ([]response.TaskResponse, error)
	Create(username, name string) (*response.TaskResponse, error)
	Toggle(username string, id uint) (bool, error)
	Delete(username string, id uint) (bool, error)
}

type TaskService struct {
	db   *gorm.DB
	repo repository.ITaskRepository
}

func NewTaskService(db *gorm.DB, repo repository.ITaskRepository) ITaskService {
	return &TaskService{db: db, repo: repo}
}

func (t *TaskService) List(username string) ([]response.TaskResponse, error) {
	tasks, err := t.repo.ListByUsername(t.db, username)
	if err != nil {
		return nil, err
	}

	views := make([]response.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, toTaskResponse(&task))
	}
	return views, nil
}

func (t *TaskService) Create(username, name string) (*response.TaskResponse, error) {
	task, err := t.repo.Create(t.db, &domain.Task{Name: name, Username: username})
	if err != nil {
		return nil, err
	}
	view := toTaskResponse(task)
	return &view, nil
}

func (t *TaskService) Toggle(username string, id uint) (bool, error) {
	affected, err := t.repo.Toggle(t.db, id, username)
	return affected > 0, err
}

func (t *TaskService) Delete(username string, id uint) (bool, error) {
	affected, err := t.repo.Delete(t.db, id, username)
	return affected > 0, err
}

func toTaskResponse(task *domain.Task) response.TaskResponse {
	return response.TaskResponse{
		Id:        task.Id,
		Name:      task.Name,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
	}
}
