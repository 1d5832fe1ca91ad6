package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/accountsvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags). The unique
// index on email enforces the uniqueness invariant at the schema level, so a
// race between two concurrent signups cannot create a duplicate.
type DBUser struct {
	ID               uint       `gorm:"primaryKey"`
	Name             string     `gorm:"size:255"`
	Email            string     `gorm:"uniqueIndex;size:255"`
	PasswordHash     string     `gorm:"column:password"`
	EmailVerified    bool       `gorm:"index"`
	ResetToken       *string    `gorm:"index;size:64"`
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByEmailAndResetToken implements domain.UserRepository. A miss means the
// pair did not match; the caller cannot distinguish a wrong token from an
// unknown email, which keeps the reset flow opaque.
func (r *UserRepositoryImpl) FindByEmailAndResetToken(ctx context.Context, email, token string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ? AND reset_token = ?", email, token).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindAll implements domain.UserRepository
func (r *UserRepositoryImpl) FindAll(ctx context.Context) ([]*domain.User, error) {
	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Order("id").Find(&dbUsers).Error; err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// Update implements domain.UserRepository. Save writes every column,
// including nil reset token fields, so clearing a token persists.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// MarkEmailVerified implements domain.UserRepository
func (r *UserRepositoryImpl) MarkEmailVerified(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("email_verified", true).Error
}

// DeleteByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) DeleteByEmail(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).Where("email = ?", email).Delete(&DBUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteByID implements domain.UserRepository
func (r *UserRepositoryImpl) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		EmailVerified:    user.EmailVerified,
		ResetToken:       user.ResetToken,
		ResetTokenExpiry: user.ResetTokenExpiry,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		Name:             dbUser.Name,
		Email:            dbUser.Email,
		PasswordHash:     dbUser.PasswordHash,
		EmailVerified:    dbUser.EmailVerified,
		ResetToken:       dbUser.ResetToken,
		ResetTokenExpiry: dbUser.ResetTokenExpiry,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}
