package member

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// bcryptCost 每+1耗时翻倍,12约250ms
const bcryptCost = 12

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetter    = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// Service 会员领域服务
type Service interface {
	// Register 注册普通会员
	Register(ctx context.Context, email, password, name string) (*Member, error)

	// Authenticate 校验邮箱密码
	Authenticate(ctx context.Context, email, password string) (*Member, error)

	// MustExist 会员不存在时返回ErrMemberNotFound
	MustExist(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
	cost int
}

// NewService 创建会员服务
func NewService(repo Repository) Service {
	return &service{repo: repo, cost: bcryptCost}
}

// Register 会员注册
// 1. 邮箱格式、密码强度(8-20位,字母+数字)、昵称长度
// 2. bcrypt加密
// 3. 邮箱唯一由数据库UNIQUE索引保证,Repository转换为ErrEmailDuplicate
func (s *service) Register(ctx context.Context, email, password, name string) (*Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return nil, ErrInvalidName
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	m := NewMember(email, string(hashed), name)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Authenticate 邮箱不存在与密码错误都返回ErrInvalidPassword,避免暴露注册情况
func (s *service) Authenticate(ctx context.Context, email, password string) (*Member, error) {
	m, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}
	return m, nil
}

func (s *service) MustExist(ctx context.Context, id uint) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMemberNotFound
	}
	return nil
}

// validatePasswordStrength 8-20位,必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return apperrors.ErrWeakPassword
	}
	return nil
}
