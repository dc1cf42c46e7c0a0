package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskdeck-dev/taskdeck/internal/apperr"
	"github.com/taskdeck-dev/taskdeck/internal/models"
)

type gormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %w", apperr.ErrConflict)
		}
		return err
	}
	return nil
}

func (s *gormStore) FindUserByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (s *gormStore) FindUserByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (s *gormStore) CreateProject(project *models.Project) error {
	return s.db.Create(project).Error
}

func (s *gormStore) FindProjectByID(id uint) (*models.Project, error) {
	var project models.Project

	if err := s.db.Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (s *gormStore) FindProjectsByOwner(ownerID uint) ([]models.Project, error) {
	var projects []models.Project

	// id breaks ties between rows created in the same instant
	err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&projects).Error

	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (s *gormStore) SaveProject(project *models.Project) error {
	return s.db.Save(project).Error
}

func (s *gormStore) DeleteProject(id uint) error {
	return s.db.Delete(&models.Project{}, id).Error
}

func (s *gormStore) CreateTask(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *gormStore) FindTaskByID(id uint) (*models.Task, error) {
	var task models.Task

	if err := s.db.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

func (s *gormStore) FindTasksByProject(projectID uint) ([]models.Task, error) {
	var tasks []models.Task

	err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s *gormStore) SaveTask(task *models.Task) error {
	return s.db.Save(task).Error
}

func (s *gormStore) DeleteTask(id uint) error {
	return s.db.Delete(&models.Task{}, id).Error
}

func (s *gormStore) DeleteTasksByProject(projectID uint) error {
	return s.db.Where("project_id = ?", projectID).Delete(&models.Task{}).Error
}

func (s *gormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
