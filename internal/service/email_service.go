package service

import (
	"midday/internal/pkg"
	"midday/internal/repository/redis"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

var codeSubjects = map[string]string{
	"register": "Mid-Day signup verification",
	"reset":    "Mid-Day password reset",
}

// SendCode 先写 pending 键，邮件发出去之后再转 confirmed，
// 确认失败就清掉 pending，不留半状态
func (s *EmailService) SendCode(scope, email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}

	if err = s.rds.SetPending(scope, email, code); err != nil {
		return err
	}

	html := pkg.EmailCodeHTML(codeSubjects[scope], code, redis.DefaultEmailCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, codeSubjects[scope], html); err != nil {
		return err
	}

	if err = s.rds.ConfirmPending(scope, email); err != nil {
		_ = s.rds.DeletePending(scope, email)
		return err
	}
	return nil
}

// VerifyCode 校验并一次性消费验证码
func (s *EmailService) VerifyCode(scope, email, code string) (bool, error) {
	val, err := s.rds.GetConfirmed(scope, email)
	if err != nil {
		// 不存在或已过期
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteConfirmed(scope, email); err != nil {
		return false, err
	}
	return true, nil
}
