package service

import (
	"errors"

	"midday/internal/model"
	"midday/internal/repository/mysql"

	"gorm.io/gorm"
)

type ProudMentionService struct {
	repo     *mysql.ContentRepository[model.ProudMention]
	uploader Uploader
}

func NewProudMentionService(db *gorm.DB, uploader Uploader) *ProudMentionService {
	return &ProudMentionService{
		repo:     &mysql.ContentRepository[model.ProudMention]{DB: db},
		uploader: uploader,
	}
}

type ProudMentionInput struct {
	Name             string
	ShortDescription string
	Tags             []string
}

func (s *ProudMentionService) Create(in ProudMentionInput, image []byte, imageName string) (*model.ProudMention, error) {
	if in.Name == "" {
		return nil, errors.New("name required")
	}
	tags, err := cleanTags(in.Tags, model.MaxMentionTags)
	if err != nil {
		return nil, err
	}

	// 先传媒体，传不上去就不落库
	imageURL, err := uploadIfPresent(s.uploader, image, imageName)
	if err != nil {
		return nil, err
	}

	m := &model.ProudMention{
		Name:             in.Name,
		ShortDescription: in.ShortDescription,
		Tags:             tags,
		ImageURL:         imageURL,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ProudMentionService) Update(id uint64, in ProudMentionInput, image []byte, imageName string) (*model.ProudMention, error) {
	tags, err := cleanTags(in.Tags, model.MaxMentionTags)
	if err != nil {
		return nil, err
	}

	imageURL, err := uploadIfPresent(s.uploader, image, imageName)
	if err != nil {
		return nil, err
	}

	m, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	m.Name = in.Name
	m.ShortDescription = in.ShortDescription
	m.Tags = tags
	if imageURL != "" {
		m.ImageURL = imageURL
	}

	if err := s.repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ProudMentionService) Delete(id uint64) error {
	return s.repo.Delete(id)
}

func (s *ProudMentionService) List(page, size int) ([]model.ProudMention, error) {
	offset, limit := normalizePage(page, size)
	return s.repo.List(offset, limit)
}
