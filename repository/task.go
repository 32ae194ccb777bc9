package repository

import (
	"task_management_ms/domain"

	"gorm.io/gorm"
)

type ITaskRepository interface {
	ListByUsername(db *gorm.DB, username string) ([]domain.Task, error)
	Create(db *gorm.DB, task *domain.Task) (*domain.Task, error)
	Toggle(db *gorm.DB, id uint, username string) (int64, error)
	Delete(db *gorm.DB, id uint, username string) (int64, error)
}

type TaskRepository struct {
}

func NewTaskRepository() ITaskRepository {
	return &TaskRepository{}
}

func (t *TaskRepository) ListByUsername(db *gorm.DB, username string) ([]domain.Task, error) {
	tasks := []domain.Task{}
	err := db.Where("username = ?", username).Order("created_at ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (t *TaskRepository) Create(db *gorm.DB, task *domain.Task) (*domain.Task, error) {
	return task, db.Create(task).Error
}

func (t *TaskRepository) Toggle(db *gorm.DB, id uint, username string) (int64, error) {
	result := db.Model(&domain.Task{}).
		Where("id = ? AND username = ?", id, username).
		Update("completed", gorm.Expr("NOT completed"))
	return result.RowsAffected, result.Error
}

func (t *TaskRepository) Delete(db *gorm.DB, id uint, username string) (int64, error) {
	result := db.Where("id = ? AND username = ?", id, username).Delete(&domain.Task{})
	return result.RowsAffected, result.Error
}
