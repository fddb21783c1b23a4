package service

import (
	"errors"

	"midday/internal/model"
	"midday/internal/repository/mysql"

	"gorm.io/gorm"
)

var ErrNotProfileOwner = errors.New("profile belongs to another user")

// MemberService 公开成员名录和个人档案维护
type MemberService struct {
	repo     *mysql.MemberRepository
	uploader Uploader
	pageSize int
}

func NewMemberService(db *gorm.DB, uploader Uploader, pageSize int) *MemberService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &MemberService{
		repo:     &mysql.MemberRepository{DB: db},
		uploader: uploader,
		pageSize: pageSize,
	}
}

// Directory 固定页大小的名录，keyword 模糊匹配 name/session/specialty。
// 读侧按状态过滤：pending/removed 永远不出现
func (s *MemberService) Directory(keyword string, page int) ([]model.MemberProfile, int64, error) {
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * s.pageSize
	return s.repo.SearchActive(keyword, offset, s.pageSize)
}

func (s *MemberService) PageSize() int { return s.pageSize }

// ProfileFor 档案只对本人和管理员开放，公开信息走 Directory
func (s *MemberService) ProfileFor(callerID uint64, callerRole int, id uint64) (*model.MemberProfile, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.UserID != callerID && callerRole != model.RoleAdmin {
		return nil, ErrNotProfileOwner
	}
	return p, nil
}

// ProfileUpdate 档案可改字段；不含 status，状态只能走生命周期服务
type ProfileUpdate struct {
	Name       string
	Phone      string
	Github     string
	Linkedin   string
	Codeforces string
	Codechef   string
	Hackerrank string
	Toph       string
	Session    string
	Specialty  string
	Rating     int
}

// UpdateProfile 有新头像就先传后写，没有就保留原 URL。
// 只有档案本人或管理员可以改：rating 会出现在晋升界面，不能被别人代写。
func (s *MemberService) UpdateProfile(callerID uint64, callerRole int, id uint64, in ProfileUpdate, image []byte, imageName string) error {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if p.UserID != callerID && callerRole != model.RoleAdmin {
		return ErrNotProfileOwner
	}

	imageURL, err := uploadIfPresent(s.uploader, image, imageName)
	if err != nil {
		return err
	}

	fields := map[string]any{
		"name":       in.Name,
		"phone":      in.Phone,
		"github":     in.Github,
		"linkedin":   in.Linkedin,
		"codeforces": in.Codeforces,
		"codechef":   in.Codechef,
		"hackerrank": in.Hackerrank,
		"toph":       in.Toph,
		"session":    in.Session,
		"specialty":  in.Specialty,
		"rating":     in.Rating,
	}
	if imageURL != "" {
		fields["image_url"] = imageURL
	}

	return s.repo.UpdateContact(id, fields)
}
