package service

import (
	"errors"

	"midday/internal/model"
	"midday/internal/repository/mysql"

	"gorm.io/gorm"
)

var ErrTooManyTags = errors.New("too many tags")

type AchievementService struct {
	repo *mysql.ContentRepository[model.Achievement]
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{repo: &mysql.ContentRepository[model.Achievement]{DB: db}}
}

type AchievementInput struct {
	Title            string
	ShortDescription string
	Date             string
	Link             string
	Tags             []string
}

// cleanTags 去掉空白项，再检查上限；超限直接拒绝，不截断
func cleanTags(tags []string, max int) ([]string, error) {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	if len(out) > max {
		return nil, ErrTooManyTags
	}
	return out, nil
}

func (s *AchievementService) Create(in AchievementInput) (*model.Achievement, error) {
	if in.Title == "" {
		return nil, errors.New("title required")
	}
	tags, err := cleanTags(in.Tags, model.MaxAchievementTags)
	if err != nil {
		return nil, err
	}

	a := &model.Achievement{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Date:             in.Date,
		Link:             in.Link,
		Tags:             tags,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AchievementService) Update(id uint64, in AchievementInput) (*model.Achievement, error) {
	tags, err := cleanTags(in.Tags, model.MaxAchievementTags)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	a.Title = in.Title
	a.ShortDescription = in.ShortDescription
	a.Date = in.Date
	a.Link = in.Link
	a.Tags = tags

	if err := s.repo.Save(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AchievementService) Delete(id uint64) error {
	return s.repo.Delete(id)
}

func (s *AchievementService) List(page, size int) ([]model.Achievement, error) {
	offset, limit := normalizePage(page, size)
	return s.repo.List(offset, limit)
}
