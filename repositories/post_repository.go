package repositories

import (
	"context"
	"errors"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IPostRepository interface {
	GetPublishedPosts(ctx context.Context, params requests.ListParams) ([]models.Post, int64, error)
	GetAllPosts(ctx context.Context, params requests.ListParams) ([]models.Post, int64, error)
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetPostsByIDs(ctx context.Context, ids []uint) ([]models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id uint) error
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository() IPostRepository {
	return NewPostRepositoryWithDB(databaseconfig.GetDB())
}

func NewPostRepositoryWithDB(db *gorm.DB) IPostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) listPosts(ctx context.Context, params requests.ListParams, publishedOnly bool) ([]models.Post, int64, error) {
	var (
		posts      []models.Post
		totalCount int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Post{})
		if publishedOnly {
			query = query.Where("published_at IS NOT NULL")
		}

		if err := query.Count(&totalCount).Error; err != nil {
			return err
		}

		return query.
			Order("created_at DESC").
			Limit(params.PerPage).
			Offset(params.Offset()).
			Find(&posts).Error
	})
	if err != nil {
		logconfig.Log.Error("Post listing query failed", zap.Error(err))
		return nil, 0, err
	}

	return posts, totalCount, nil
}

func (r *PostRepository) GetPublishedPosts(ctx context.Context, params requests.ListParams) ([]models.Post, int64, error) {
	return r.listPosts(ctx, params, true)
}

func (r *PostRepository) GetAllPosts(ctx context.Context, params requests.ListParams) ([]models.Post, int64, error) {
	return r.listPosts(ctx, params, false)
}

func (r *PostRepository) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		logconfig.Log.Error("Post lookup (slug) failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) GetPostsByIDs(ctx context.Context, ids []uint) ([]models.Post, error) {
	if len(ids) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		logconfig.Log.Error("Post creation failed", zap.String("title", post.Title), zap.Error(err))
		return err
	}
	return nil
}

func (r *PostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	result := r.db.WithContext(ctx).Save(post)
	if result.Error != nil {
		logconfig.Log.Error("Post update failed", zap.Uint("post_id", post.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}
