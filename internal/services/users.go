package services

import (
	"errors"
	"strings"

	"github.com/linkup-dev/linkup/internal/apperr"
	"github.com/linkup-dev/linkup/internal/logger"
	"github.com/linkup-dev/linkup/internal/models"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService owns user records and credentials.
type UserService struct {
	db        *gorm.DB
	sanitizer *bluemonday.Policy
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db:        db,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// ProfileUpdate carries the optional profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Name *string
	Bio  *string
}

// UserPage is one page of a user listing.
type UserPage struct {
	Users      []models.User
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// Register creates a user with a bcrypt credential. Email uniqueness is
// enforced by the unique index rather than a pre-check, so two concurrent
// registrations cannot both slip through; the loser gets a conflict.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to hash password")
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Wrap(err, apperr.KindConflict, "Email address already exists")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to create user")
	}

	logger.Info("user registered", "user_id", user.ID)

	return &user, nil
}

// Authenticate returns the user for a valid email/password pair. Unknown
// email and wrong password produce the same error so account existence is
// not leaked.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User

	err := s.db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindUnauthorized, "Invalid email or password")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.New(apperr.KindUnauthorized, "Invalid email or password")
	}

	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to load user")
	}

	return &user, nil
}

// UpdateProfile applies the provided fields. Bio is stripped of any HTML
// before it is stored.
func (s *UserService) UpdateProfile(id uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperr.New(apperr.KindValidation, "Name must not be empty")
		}
		updates["name"] = name
	}

	if update.Bio != nil {
		updates["bio"] = s.sanitizer.Sanitize(*update.Bio)
	}

	if len(updates) == 0 {
		return nil, apperr.New(apperr.KindValidation, "No valid fields to update")
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to update profile")
	}

	return user, nil
}

// ListUsers pages through users other than userID, optionally filtered by
// a case-insensitive name search.
func (s *UserService) ListUsers(userID uint, search string, page, perPage int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	query := s.db.Model(&models.User{}).Where("id != ?", userID)

	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to count users")
	}

	var users []models.User

	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&users).Error; err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to list users")
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return &UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}
