package service

import (
	"errors"

	"midday/internal/model"
	"midday/internal/pkg"
	"midday/internal/repository/mysql"
	"midday/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// codeVerifier 注册/重置前的验证码校验，测试时可替换
type codeVerifier interface {
	VerifyCode(scope, email, code string) (bool, error)
}

// sessionStore 单点登录的会话存取，测试时可替换
type sessionStore interface {
	AddUserToken(usrID uint64, token string) error
	DeleteUserToken(usrID uint64) error
}

type AuthService struct {
	db       *gorm.DB
	userRepo *mysql.UserRepository
	rSession sessionStore
	verifier codeVerifier
}

func NewAuthService(db *gorm.DB, emailSvc *EmailService) *AuthService {
	return &AuthService{
		db:       db,
		userRepo: &mysql.UserRepository{DB: db},
		rSession: &redis.SessionRepository{},
		verifier: emailSvc,
	}
}

// RegisterInput 注册时一并提交的档案字段
type RegisterInput struct {
	Email    string
	Password string
	Code     string

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
}

// Register 账号和档案同事务创建，档案初始状态 pending，
// 等管理员在审核界面通过后才在站点可见
func (s *AuthService) Register(in RegisterInput) error {
	ok, err := s.verifier.VerifyCode("register", in.Email, in.Code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := &mysql.UserRepository{DB: tx}
		memberRepo := &mysql.MemberRepository{DB: tx}

		// email 是档案的自然主键，先查重再写
		if _, err := memberRepo.FindByEmail(in.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, mysql.ErrMemberNotFound) {
			return err
		}

		user := &model.User{
			Email:    in.Email,
			Password: string(hash),
			Role:     model.RoleMember,
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}

		return memberRepo.Create(&model.MemberProfile{
			UserID:     user.ID,
			Name:       in.Name,
			Email:      in.Email,
			Phone:      in.Phone,
			Github:     in.Github,
			Linkedin:   in.Linkedin,
			Codeforces: in.Codeforces,
			Codechef:   in.Codechef,
			Hackerrank: in.Hackerrank,
			Toph:       in.Toph,
			Session:    in.Session,
			Specialty:  in.Specialty,
			Status:     model.StatusPending,
		})
	})
}

func (s *AuthService) Login(email, password string) (*pkg.Pair, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	// 单点登录：redis 只保留最新 token
	if err = s.rSession.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *AuthService) Logout(usrID uint64) error {
	return s.rSession.DeleteUserToken(usrID)
}

// Refresh 换新 token 对，同时把新 access 写进会话，
// 否则中间件比对 redis 里的旧值会把新 token 当场拒掉
func (s *AuthService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err = s.rSession.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// ResetPassword 凭邮箱验证码重置
func (s *AuthService) ResetPassword(email, code, newPassword string) error {
	ok, err := s.verifier.VerifyCode("reset", email, code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(user, string(hash))
}

// ChangePassword 登录态修改密码，改完强制下线
func (s *AuthService) ChangePassword(usrID uint64, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(usrID)
	if err != nil {
		return ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err = s.userRepo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}

	return s.Logout(usrID)
}
