package repository

import (
	"context"
	"errors"

	"connectly/internal/cache"
	"connectly/internal/models"
	"connectly/internal/secure"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users. Profile variants
// run the sensitive fields through the injected codec; the plain variants
// never touch ciphertext and are safe to cache.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetProfile(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, user *models.User) error
	SetRole(ctx context.Context, id uint, role models.Role) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type userRepository struct {
	db    *gorm.DB
	codec *secure.Codec
}

// NewUserRepository returns a new UserRepository implementation. The codec is
// the explicit encrypt/decrypt dependency for phone and address storage; it
// may be nil, in which case profile fields are stored as empty.
func NewUserRepository(db *gorm.DB, codec *secure.Codec) UserRepository {
	return &userRepository{db: db, codec: codec}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	err := cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetProfile loads the user with phone and address decrypted. It bypasses the
// cache so plaintext never leaves process memory.
func (r *userRepository) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.openProfile(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.sealProfile(user); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewDuplicateError("Username or email already taken")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// SetRole updates only the role column. Cached copies of the user omit the
// password hash and ciphertext fields, so a full Save of a cached struct
// would blank them; a role change must never touch other columns.
func (r *userRepository) SetRole(ctx context.Context, id uint, role models.Role) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// UpdateProfile persists the user after re-sealing phone and address.
func (r *userRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	if err := r.sealProfile(user); err != nil {
		return err
	}
	return r.Update(ctx, user)
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *userRepository) sealProfile(user *models.User) error {
	if r.codec == nil {
		user.EncryptedPhone = nil
		user.EncryptedAddress = nil
		return nil
	}
	phone, err := r.codec.Encrypt(user.Phone)
	if err != nil {
		return models.NewInternalError(err)
	}
	address, err := r.codec.Encrypt(user.Address)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.EncryptedPhone = phone
	user.EncryptedAddress = address
	return nil
}

func (r *userRepository) openProfile(user *models.User) error {
	if r.codec == nil {
		return nil
	}
	phone, err := r.codec.Decrypt(user.EncryptedPhone)
	if err != nil {
		return models.NewInternalError(err)
	}
	address, err := r.codec.Decrypt(user.EncryptedAddress)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Phone = phone
	user.Address = address
	return nil
}
