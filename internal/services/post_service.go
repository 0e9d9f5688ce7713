package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/repository"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"github.com/slklaos/backoffice/pkg/logger"
	"github.com/slklaos/backoffice/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// PostService manages news articles. Slugs are derived from titles and
// PublishedAt is stamped on the first publish.
type PostService interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*models.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPublished(ctx context.Context) ([]models.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, updates *UpdatePostInput) (*models.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
}

type CreatePostInput struct {
	Title     string
	Excerpt   string
	Body      string
	Category  string
	Tags      []string
	Published bool
}

type UpdatePostInput struct {
	Title     *string
	Excerpt   *string
	Body      *string
	Category  *string
	Tags      []string
	Published *bool
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

var _ PostService = (*postService)(nil)

func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "title is required")
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	tagJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid tags")
	}

	p := &models.Post{
		AuthorID:  authorID,
		Title:     input.Title,
		Slug:      utils.Slugify(input.Title),
		Excerpt:   input.Excerpt,
		Body:      input.Body,
		Category:  input.Category,
		Tags:      datatypes.JSON(tagJSON),
		Published: input.Published,
	}
	if input.Published {
		now := time.Now()
		p.PublishedAt = &now
	}

	if err := s.postRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("post created", zap.String("post_id", p.ID.String()), zap.String("slug", p.Slug))
	return p, nil
}

func (s *postService) GetPost(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	var p models.Post
	if err := s.postRepo.GetByID(ctx, postID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.ListAll(ctx)
}

func (s *postService) ListPublished(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.ListPublished(ctx)
}

func (s *postService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var p models.Post
	if err := s.postRepo.GetPublishedBySlug(ctx, slug, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *postService) UpdatePost(ctx context.Context, postID uuid.UUID, updates *UpdatePostInput) (*models.Post, error) {
	var p models.Post
	if err := s.postRepo.GetByID(ctx, postID, &p); err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if strings.TrimSpace(*updates.Title) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "title is required")
		}
		p.Title = *updates.Title
		p.Slug = utils.Slugify(*updates.Title)
	}
	if updates.Excerpt != nil {
		p.Excerpt = *updates.Excerpt
	}
	if updates.Body != nil {
		p.Body = *updates.Body
	}
	if updates.Category != nil {
		p.Category = *updates.Category
	}
	if updates.Tags != nil {
		b, err := json.Marshal(updates.Tags)
		if err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid tags")
		}
		p.Tags = datatypes.JSON(b)
	}
	if updates.Published != nil {
		if *updates.Published && !p.Published {
			now := time.Now()
			p.PublishedAt = &now
		}
		p.Published = *updates.Published
	}

	if err := s.postRepo.Update(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *postService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	logger.L().Info("post deleted", zap.String("post_id", postID.String()))
	return nil
}
