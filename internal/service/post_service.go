package service

import (
	"context"
	"time"

	"blogicum/internal/models"
	"blogicum/internal/observability"
	"blogicum/internal/repository"
)

const (
	maxTitleLen = 256
	maxTextLen  = 50000
)

// PostService implements the post use cases: public listing, visibility-gated
// detail, and author-gated mutation.
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	isStaff      func(ctx context.Context, userID uint) (bool, error)
	now          func() time.Time
}

type CreatePostInput struct {
	AuthorID   uint
	Title      string
	Text       string
	ImageURL   string
	CategoryID *uint
	LocationID *uint
	PubDate    time.Time
	// IsPublished defaults to true when nil.
	IsPublished *bool
}

type UpdatePostInput struct {
	ActorID     uint
	PostID      uint
	Title       string
	Text        string
	ImageURL    string
	CategoryID  *uint
	LocationID  *uint
	PubDate     *time.Time
	IsPublished *bool
}

type DeletePostInput struct {
	ActorID uint
	PostID  uint
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
	isStaff func(ctx context.Context, userID uint) (bool, error),
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		isStaff:      isStaff,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ListPosts returns the publicly visible posts, newest publication first.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.ListPublic(ctx, limit, offset)
}

// ListCategoryPosts returns the publicly visible posts of a published
// category. An unknown or unpublished slug is NotFound.
func (s *PostService) ListCategoryPosts(ctx context.Context, slug string, limit, offset int) (*models.Category, []*models.Post, error) {
	category, err := s.categoryRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.postRepo.ListPublicByCategory(ctx, category.ID, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return category, posts, nil
}

// GetPost returns a post when the viewer may see it. Hidden posts report
// NotFound, indistinguishable from missing ones.
func (s *PostService) GetPost(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !IsVisible(post, viewerID, s.now()) {
		observability.HiddenPostLookups.Inc()
		return nil, models.NewNotFoundError("Post", id)
	}
	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := s.validatePostFields(in.Title, in.Text); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, in.CategoryID, in.LocationID); err != nil {
		return nil, err
	}

	pubDate := in.PubDate
	if pubDate.IsZero() {
		pubDate = s.now()
	}
	isPublished := true
	if in.IsPublished != nil {
		isPublished = *in.IsPublished
	}

	post := &models.Post{
		Title:       in.Title,
		Text:        in.Text,
		ImageURL:    in.ImageURL,
		AuthorID:    in.AuthorID,
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
		PubDate:     pubDate,
		IsPublished: isPublished,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !CanEditPost(post, in.ActorID) {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Text != "" {
		post.Text = in.Text
	}
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}
	if in.CategoryID != nil {
		post.CategoryID = in.CategoryID
	}
	if in.LocationID != nil {
		post.LocationID = in.LocationID
	}
	if in.PubDate != nil {
		post.PubDate = *in.PubDate
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}

	if err := s.validatePostFields(post.Title, post.Text); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, in.CategoryID, in.LocationID); err != nil {
		return nil, err
	}

	// Save the row without the loaded associations to avoid GORM upserting them.
	post.Category = nil
	post.Location = nil
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	staff := false
	if post.AuthorID != in.ActorID && s.isStaff != nil {
		staff, err = s.isStaff(ctx, in.ActorID)
		if err != nil {
			return err
		}
	}
	if !CanDeletePost(post, in.ActorID, staff) {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

func (s *PostService) validatePostFields(title, text string) error {
	if title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 256 characters)")
	}
	if text == "" {
		return models.NewValidationError("Text is required")
	}
	if len(text) > maxTextLen {
		return models.NewValidationError("Text too long (max 50000 characters)")
	}
	return nil
}

// checkReferences verifies that referenced category and location rows exist.
func (s *PostService) checkReferences(ctx context.Context, categoryID, locationID *uint) error {
	if categoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *categoryID); err != nil {
			return err
		}
	}
	if locationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *locationID); err != nil {
			return err
		}
	}
	return nil
}
