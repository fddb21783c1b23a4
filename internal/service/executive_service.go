package service

import (
	"errors"

	"midday/internal/model"
	"midday/internal/repository/mysql"

	"gorm.io/gorm"
)

// ExecutiveService 现任和历届执行成员两块名单，表结构相同但互相独立
type ExecutiveService struct {
	repo       *mysql.ContentRepository[model.Executive]
	seniorRepo *mysql.ContentRepository[model.SeniorExecutive]
	uploader   Uploader
}

func NewExecutiveService(db *gorm.DB, uploader Uploader) *ExecutiveService {
	return &ExecutiveService{
		repo:       &mysql.ContentRepository[model.Executive]{DB: db},
		seniorRepo: &mysql.ContentRepository[model.SeniorExecutive]{DB: db},
		uploader:   uploader,
	}
}

type ExecutiveInput struct {
	Name        string
	Designation string
	Session     string
	Email       string
	Phone       string
}

func (in ExecutiveInput) validate() error {
	if in.Name == "" || in.Designation == "" {
		return errors.New("name and designation required")
	}
	return nil
}

func (s *ExecutiveService) CreateExecutive(in ExecutiveInput, image []byte, imageName string) (*model.Executive, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	imageURL, err := uploadIfPresent(s.uploader, image, imageName)
	if err != nil {
		return nil, err
	}

	e := &model.Executive{
		Name:        in.Name,
		Designation: in.Designation,
		Session:     in.Session,
		Email:       in.Email,
		Phone:       in.Phone,
		ImageURL:    imageURL,
	}
	if err := s.repo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExecutiveService) UpdateExecutive(id uint64, in ExecutiveInput, image []byte, imageName string) (*model.Executive, error) {
	imageURL, err := uploadIfPresent(s.uploader, image, imageName)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	e.Name = in.Name
	e.Designation = in.Designation
	e.Session = in.Session
	e.Email = in.Email
	e.Phone = in.Phone
	if imageURL != "" {
		e.ImageURL = imageURL
	}

	if err := s.repo.Save(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExecutiveService) DeleteExecutive(id uint64) error {
	return s.repo.Delete(id)
}

func (s *ExecutiveService) ListExecutives(page, size int) ([]model.Executive, error) {
	offset, limit := normalizePage(page, size)
	return s.repo.List(offset, limit)
}

func (s *ExecutiveService) CreateSenior(in ExecutiveInput, image []byte, imageName string) (*model.SeniorExecutive, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	imageURL, err := uploadIfPresent(s.uploader, image, imageName)
	if err != nil {
		return nil, err
	}

	e := &model.SeniorExecutive{
		Name:        in.Name,
		Designation: in.Designation,
		Session:     in.Session,
		Email:       in.Email,
		Phone:       in.Phone,
		ImageURL:    imageURL,
	}
	if err := s.seniorRepo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExecutiveService) UpdateSenior(id uint64, in ExecutiveInput, image []byte, imageName string) (*model.SeniorExecutive, error) {
	imageURL, err := uploadIfPresent(s.uploader, image, imageName)
	if err != nil {
		return nil, err
	}

	e, err := s.seniorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	e.Name = in.Name
	e.Designation = in.Designation
	e.Session = in.Session
	e.Email = in.Email
	e.Phone = in.Phone
	if imageURL != "" {
		e.ImageURL = imageURL
	}

	if err := s.seniorRepo.Save(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExecutiveService) DeleteSenior(id uint64) error {
	return s.seniorRepo.Delete(id)
}

func (s *ExecutiveService) ListSeniors(page, size int) ([]model.SeniorExecutive, error) {
	offset, limit := normalizePage(page, size)
	return s.seniorRepo.List(offset, limit)
}
