package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dugout-server-go/internal/domain/auth/model"
	platformerrors "dugout-server-go/internal/platform/errors"
)

// User is the persisted account record. The password hash is excluded from
// every serialization; it only travels to the auth domain for verification.
type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"            json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null"                               json:"-"`
	Nickname  string    `gorm:"type:varchar(255)"                      json:"nickname"`
	Email     string    `gorm:"type:varchar(255)"                      json:"email"`
	CreatedAt time.Time `                                              json:"createdAt"`
	UpdatedAt time.Time `                                              json:"updatedAt"`
}

// UserRepository implements the auth domain's credential store contract on
// top of gorm. Username lookups are exact and case-sensitive (the column uses
// sqlite's default BINARY collation).
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository wraps the database handle.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername returns (nil, nil) when no user matches; errors indicate
// infrastructure failure only.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.Wrap(
			platformerrors.KindStorage, "users.find", "query user by username", err)
	}
	return toAuthUser(&user), nil
}

// Create inserts a new user. The password must already be hashed; this layer
// never sees plaintext. A missing ID gets a fresh uuid.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	record := User{
		ID:       user.ID,
		Username: user.Username,
		Password: user.PasswordHash,
		Nickname: user.Nickname,
		Email:    user.Email,
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, platformerrors.Wrap(
			platformerrors.KindStorage, "users.create", "insert user", err)
	}
	return toAuthUser(&record), nil
}

// EnsureSeedUser provisions the configured account when the username is not
// taken yet. Provisioning is otherwise out-of-band (see cmd/hashpw).
func (r *UserRepository) EnsureSeedUser(ctx context.Context, seed model.User) error {
	if seed.Username == "" || seed.PasswordHash == "" {
		return nil
	}

	existing, err := r.FindByUsername(ctx, seed.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = r.Create(ctx, &seed)
	return err
}

func toAuthUser(record *User) *model.User {
	return &model.User{
		ID:           record.ID,
		Username:     record.Username,
		PasswordHash: record.Password,
		Nickname:     record.Nickname,
		Email:        record.Email,
	}
}
