package service

import (
	"errors"

	"midday/internal/model"
	"midday/internal/repository/mysql"

	"gorm.io/gorm"
)

type AboutService struct {
	repo     *mysql.ContentRepository[model.AboutEntry]
	uploader Uploader
}

func NewAboutService(db *gorm.DB, uploader Uploader) *AboutService {
	return &AboutService{
		repo:     &mysql.ContentRepository[model.AboutEntry]{DB: db},
		uploader: uploader,
	}
}

type AboutInput struct {
	Title       string
	Description string
}

func (s *AboutService) Create(in AboutInput, image []byte, imageName string) (*model.AboutEntry, error) {
	if in.Title == "" {
		return nil, errors.New("title required")
	}

	imageURL, err := uploadIfPresent(s.uploader, image, imageName)
	if err != nil {
		return nil, err
	}

	entry := &model.AboutEntry{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    imageURL,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *AboutService) Update(id uint64, in AboutInput, image []byte, imageName string) (*model.AboutEntry, error) {
	imageURL, err := uploadIfPresent(s.uploader, image, imageName)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	entry.Title = in.Title
	entry.Description = in.Description
	if imageURL != "" {
		entry.ImageURL = imageURL
	}

	if err := s.repo.Save(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *AboutService) Delete(id uint64) error {
	return s.repo.Delete(id)
}

func (s *AboutService) List(page, size int) ([]model.AboutEntry, error) {
	offset, limit := normalizePage(page, size)
	return s.repo.List(offset, limit)
}
