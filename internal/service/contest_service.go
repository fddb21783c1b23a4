package service

import (
	"errors"
	"time"

	"midday/internal/model"
	"midday/internal/pkg"
	"midday/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrContestTimes     = errors.New("end time must be after start time")
	ErrContestResources = errors.New("contest needs 2 to 3 learning resources")
	ErrContestEnum      = errors.New("invalid contest type, status or difficulty")
)

// ContestService 竞赛只增不改：没有 update/delete
type ContestService struct {
	repo *mysql.ContestRepository
}

func NewContestService(db *gorm.DB) *ContestService {
	return &ContestService{repo: &mysql.ContestRepository{DB: db}}
}

type ContestInput struct {
	Name              string
	Topic             string
	Type              string
	Status            string
	Difficulty        string
	LearningResources []string
	StartTime         time.Time
	EndTime           time.Time
}

func (s *ContestService) Create(in ContestInput) (*model.Contest, error) {
	if in.Name == "" {
		return nil, errors.New("contest name required")
	}
	if !model.ValidContestType(in.Type) || !model.ValidContestStatus(in.Status) || !model.ValidDifficulty(in.Difficulty) {
		return nil, ErrContestEnum
	}

	resources := make([]string, 0, len(in.LearningResources))
	for _, r := range in.LearningResources {
		if r != "" {
			resources = append(resources, r)
		}
	}
	if len(resources) < 2 || len(resources) > 3 {
		return nil, ErrContestResources
	}

	if !in.EndTime.After(in.StartTime) {
		return nil, ErrContestTimes
	}

	contest := &model.Contest{
		Name:              in.Name,
		Topic:             in.Topic,
		Type:              in.Type,
		Status:            in.Status,
		Difficulty:        in.Difficulty,
		LearningResources: resources,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
	}
	if err := s.repo.Create(contest); err != nil {
		return nil, err
	}
	return contest, nil
}

// ContestView 列表项，时长每次读取时重算
type ContestView struct {
	model.Contest
	Duration string `json:"duration"`
}

func (s *ContestService) List(page, size int) ([]ContestView, error) {
	offset, limit := normalizePage(page, size)
	list, err := s.repo.List(offset, limit)
	if err != nil {
		return nil, err
	}

	views := make([]ContestView, 0, len(list))
	for _, c := range list {
		d, ok := pkg.ContestDuration(c.StartTime, c.EndTime)
		if !ok {
			// 落库前校验过 end > start，这里兜底标记而不是显示负值
			d = "invalid"
		}
		views = append(views, ContestView{Contest: c, Duration: d})
	}
	return views, nil
}
