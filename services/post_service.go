package services

import (
	"context"
	"errors"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/repositories"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"
)

type IPostService interface {
	GetPublishedPosts(ctx context.Context, params requests.ListParams) (*requests.PaginatedResult, error)
	GetAllPosts(ctx context.Context, params requests.ListParams) (*requests.PaginatedResult, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	GetPostsByIDs(ctx context.Context, ids []uint) ([]models.Post, error)
	CreatePost(ctx context.Context, req requests.PostRequest) error
	UpdatePost(ctx context.Context, id uint, req requests.PostRequest) error
	DeletePost(ctx context.Context, id uint) error
}

type PostService struct {
	repo repositories.IPostRepository
}

func NewPostService() IPostService {
	return &PostService{repo: repositories.NewPostRepository()}
}

func (s *PostService) GetPublishedPosts(ctx context.Context, params requests.ListParams) (*requests.PaginatedResult, error) {
	posts, totalCount, err := s.repo.GetPublishedPosts(ctx, params)
	if err != nil {
		return nil, err
	}
	return requests.CreatePaginatedResult(posts, totalCount, params.Page, params.PerPage), nil
}

func (s *PostService) GetAllPosts(ctx context.Context, params requests.ListParams) (*requests.PaginatedResult, error) {
	posts, totalCount, err := s.repo.GetAllPosts(ctx, params)
	if err != nil {
		return nil, err
	}
	return requests.CreatePaginatedResult(posts, totalCount, params.Page, params.PerPage), nil
}

func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	post, err := s.repo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, errors.New("không tìm thấy bài viết")
	}
	return post, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		return nil, errors.New("không tìm thấy bài viết")
	}
	return post, nil
}

func (s *PostService) GetPostsByIDs(ctx context.Context, ids []uint) ([]models.Post, error) {
	return s.repo.GetPostsByIDs(ctx, ids)
}

func (s *PostService) CreatePost(ctx context.Context, req requests.PostRequest) error {
	post := &models.Post{
		Title:      req.Title,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Content:    req.Content,
		CoverImage: req.CoverImage,
	}
	post.IsActive = true
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	return s.repo.CreatePost(ctx, post)
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, req requests.PostRequest) error {
	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		return errors.New("không tìm thấy bài viết")
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Summary = req.Summary
	post.Content = req.Content
	post.CoverImage = req.CoverImage

	if req.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if !req.Published {
		post.PublishedAt = nil
	}

	return s.repo.UpdatePost(ctx, post)
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.repo.DeletePost(ctx, id)
}
