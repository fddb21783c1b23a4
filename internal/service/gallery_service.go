package service

import (
	"errors"

	"midday/internal/model"
	"midday/internal/repository/mysql"
	"midday/internal/storage"

	"gorm.io/gorm"
)

type GalleryService struct {
	repo     *mysql.ContentRepository[model.GalleryItem]
	uploader Uploader
}

func NewGalleryService(db *gorm.DB, uploader Uploader) *GalleryService {
	return &GalleryService{
		repo:     &mysql.ContentRepository[model.GalleryItem]{DB: db},
		uploader: uploader,
	}
}

type GalleryInput struct {
	Title       string
	Description string
}

func (s *GalleryService) Create(in GalleryInput, media []byte, mediaName string) (*model.GalleryItem, error) {
	if in.Title == "" {
		return nil, errors.New("title required")
	}

	mediaURL, err := uploadIfPresent(s.uploader, media, mediaName)
	if err != nil {
		return nil, err
	}

	item := &model.GalleryItem{
		Title:       in.Title,
		Description: in.Description,
		MediaURL:    mediaURL,
	}
	if mediaURL != "" {
		item.MediaType = storage.ResourceType(mediaName)
	}

	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) Update(id uint64, in GalleryInput, media []byte, mediaName string) (*model.GalleryItem, error) {
	mediaURL, err := uploadIfPresent(s.uploader, media, mediaName)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Description = in.Description
	if mediaURL != "" {
		item.MediaURL = mediaURL
		item.MediaType = storage.ResourceType(mediaName)
	}

	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) Delete(id uint64) error {
	return s.repo.Delete(id)
}

func (s *GalleryService) List(page, size int) ([]model.GalleryItem, error) {
	offset, limit := normalizePage(page, size)
	return s.repo.List(offset, limit)
}
