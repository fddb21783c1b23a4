package service

import (
	"errors"
	"testing"

	"midday/internal/model"
	"midday/internal/pkg"
	"midday/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// stubVerifier 固定验证码 123456
type stubVerifier struct{}

func (stubVerifier) VerifyCode(scope, email, code string) (bool, error) {
	return code == "123456", nil
}

// fakeSessionStore 内存版会话表
type fakeSessionStore struct {
	tokens map[uint64]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{tokens: make(map[uint64]string)}
}

func (f *fakeSessionStore) AddUserToken(usrID uint64, token string) error {
	f.tokens[usrID] = token
	return nil
}

func (f *fakeSessionStore) DeleteUserToken(usrID uint64) error {
	delete(f.tokens, usrID)
	return nil
}

func newTestAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:       db,
		userRepo: &mysql.UserRepository{DB: db},
		rSession: newFakeSessionStore(),
		verifier: stubVerifier{},
	}
}

func TestRegisterCreatesPendingProfile(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(db)

	err := svc.Register(RegisterInput{
		Email:      "new@example.com",
		Password:   "s3cret-pw",
		Code:       "123456",
		Name:       "New Member",
		Codeforces: "new_cf",
		Session:    "2023-24",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var user model.User
	if err := db.Where("email = ?", "new@example.com").First(&user).Error; err != nil {
		t.Fatalf("user row: %v", err)
	}
	if user.Role != model.RoleMember {
		t.Errorf("role = %d, want member", user.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pw")) != nil {
		t.Error("stored password is not a valid bcrypt hash of the input")
	}

	var profile model.MemberProfile
	if err := db.Where("email = ?", "new@example.com").First(&profile).Error; err != nil {
		t.Fatalf("profile row: %v", err)
	}
	if profile.Status != model.StatusPending {
		t.Errorf("new profile status = %q, want pending", profile.Status)
	}
	if profile.UserID != user.ID {
		t.Errorf("profile.UserID = %d, want %d", profile.UserID, user.ID)
	}
}

func TestRegisterRejectsBadCode(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(db)

	err := svc.Register(RegisterInput{Email: "x@example.com", Password: "pw", Code: "000000"})
	if err == nil {
		t.Fatal("register with wrong code should fail")
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 0 {
		t.Errorf("user rows = %d, want 0", count)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(db)

	in := RegisterInput{Email: "dup@example.com", Password: "pw", Code: "123456", Name: "Dup"}
	if err := svc.Register(in); err != nil {
		t.Fatal(err)
	}

	err := svc.Register(in)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	// 重复注册不能留下第二个账号
	var users, profiles int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.MemberProfile{}).Count(&profiles)
	if users != 1 || profiles != 1 {
		t.Errorf("rows after duplicate register = %d users, %d profiles", users, profiles)
	}
}

// 刷新后的 access 必须顶掉会话里的旧 token，否则中间件会拒绝新 token
func TestRefreshReplacesSessionToken(t *testing.T) {
	store := newFakeSessionStore()
	svc := &AuthService{rSession: store}

	old, err := pkg.GeneratePair(42, model.RoleMember)
	if err != nil {
		t.Fatal(err)
	}
	store.tokens[42] = old.AccessToken

	fresh, err := svc.Refresh(old.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := pkg.ParseAccess(fresh.AccessToken)
	if err != nil {
		t.Fatalf("new access does not parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if store.tokens[42] != fresh.AccessToken {
		t.Errorf("session token = %q, want the refreshed access token", store.tokens[42])
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	store := newFakeSessionStore()
	svc := &AuthService{rSession: store}

	if _, err := svc.Refresh("not-a-token"); err == nil {
		t.Fatal("garbage refresh token should fail")
	}
	if len(store.tokens) != 0 {
		t.Errorf("failed refresh must not touch sessions: %v", store.tokens)
	}
}

func TestChangePasswordForcesLogout(t *testing.T) {
	db := openTestDB(t)
	store := newFakeSessionStore()
	svc := newTestAuthService(db)
	svc.rSession = store

	if err := svc.Register(RegisterInput{Email: "c@example.com", Password: "old-pw-8", Code: "123456", Name: "C"}); err != nil {
		t.Fatal(err)
	}
	var user model.User
	db.Where("email = ?", "c@example.com").First(&user)
	store.tokens[user.ID] = "live-token"

	if err := svc.ChangePassword(user.ID, "old-pw-8", "new-pw-8"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, live := store.tokens[user.ID]; live {
		t.Error("session should be dropped after password change")
	}
}

func TestResetPassword(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(db)

	if err := svc.Register(RegisterInput{Email: "r@example.com", Password: "old-pw", Code: "123456", Name: "R"}); err != nil {
		t.Fatal(err)
	}

	if err := svc.ResetPassword("r@example.com", "123456", "new-pw"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	var user model.User
	db.Where("email = ?", "r@example.com").First(&user)
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-pw")) != nil {
		t.Error("password not updated")
	}

	// 未注册邮箱
	if err := svc.ResetPassword("ghost@example.com", "123456", "pw"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
