package service

import (
	"context"
	"strings"
	"testing"

	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateComment_MissingPost(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	svc := NewCommentService(commentRepo, postRepo)

	postRepo.On("GetByID", mock.Anything, uint(404)).
		Return(nil, models.NewNotFoundError("Post", 404))

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		AuthorID: 1,
		PostID:   404,
		Text:     "hello",
	})
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateComment(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	svc := NewCommentService(commentRepo, postRepo)

	postRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.Post{ID: 1}, nil)
	commentRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Comment).ID = 7
	}).Return(nil)
	commentRepo.On("GetByID", mock.Anything, uint(7)).
		Return(&models.Comment{ID: 7, Text: "hello", AuthorID: 1, PostID: 1}, nil)

	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		AuthorID: 1,
		PostID:   1,
		Text:     "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), comment.ID)
}

func TestCreateComment_Validation(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	svc := NewCommentService(commentRepo, postRepo)

	postRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.Post{ID: 1}, nil)

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{AuthorID: 1, PostID: 1})
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, err.(*models.AppError).Code)

	_, err = svc.CreateComment(context.Background(), CreateCommentInput{
		AuthorID: 1,
		PostID:   1,
		Text:     strings.Repeat("a", maxCommentLen+1),
	})
	require.Error(t, err)
}

func TestUpdateComment_AuthorOnly(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	svc := NewCommentService(commentRepo, postRepo)

	comment := &models.Comment{ID: 1, AuthorID: 10, Text: "original"}
	commentRepo.On("GetByID", mock.Anything, uint(1)).Return(comment, nil)

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		ActorID:   99,
		CommentID: 1,
		Text:      "edited",
	})
	require.Error(t, err)
	assert.Equal(t, models.CodeForbidden, err.(*models.AppError).Code)
	commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteComment(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	svc := NewCommentService(commentRepo, postRepo)

	comment := &models.Comment{ID: 1, AuthorID: 10}
	commentRepo.On("GetByID", mock.Anything, uint(1)).Return(comment, nil)
	commentRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

	// stranger forbidden
	_, err := svc.DeleteComment(context.Background(), DeleteCommentInput{ActorID: 99, CommentID: 1})
	require.Error(t, err)
	assert.Equal(t, models.CodeForbidden, err.(*models.AppError).Code)

	// author allowed
	deleted, err := svc.DeleteComment(context.Background(), DeleteCommentInput{ActorID: 10, CommentID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(1), deleted.ID)
}

func TestListComments_MissingPost(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	svc := NewCommentService(commentRepo, postRepo)

	postRepo.On("GetByID", mock.Anything, uint(404)).
		Return(nil, models.NewNotFoundError("Post", 404))

	_, err := svc.ListComments(context.Background(), 404)
	require.Error(t, err)
}
