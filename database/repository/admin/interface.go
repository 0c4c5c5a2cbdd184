// File: database/repository/admin/interface.go
package adminRepo

import (
	"context"

	"terravista/database"
	"terravista/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AdminUserRepository gives access to the admin_users collection.
type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id string) (*models.AdminUser, error)
	Create(ctx context.Context, u *models.AdminUser) error
}

type mongoAdminUserRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminUserRepo constructs a new MongoDB AdminUserRepository.
func NewMongoAdminUserRepo() AdminUserRepository {
	repo := &mongoAdminUserRepo{coll: database.DB().Collection("admin_users")}
	repo.ensureIndexes()
	return repo
}
