package service

import (
	"errors"

	"midday/internal/model"
	"midday/internal/repository/mysql"

	"gorm.io/gorm"
)

type NoticeService struct {
	repo *mysql.ContentRepository[model.Notice]
}

func NewNoticeService(db *gorm.DB) *NoticeService {
	return &NoticeService{repo: &mysql.ContentRepository[model.Notice]{DB: db}}
}

type NoticeInput struct {
	Date        string
	Title       string
	Description string
	Link        string
}

func (s *NoticeService) Create(in NoticeInput) (*model.Notice, error) {
	if in.Title == "" || in.Date == "" {
		return nil, errors.New("date and title required")
	}

	n := &model.Notice{
		Date:        in.Date,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	}
	if err := s.repo.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NoticeService) Update(id uint64, in NoticeInput) (*model.Notice, error) {
	n, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	n.Date = in.Date
	n.Title = in.Title
	n.Description = in.Description
	n.Link = in.Link

	if err := s.repo.Save(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NoticeService) Delete(id uint64) error {
	return s.repo.Delete(id)
}

func (s *NoticeService) List(page, size int) ([]model.Notice, error) {
	offset, limit := normalizePage(page, size)
	return s.repo.List(offset, limit)
}
