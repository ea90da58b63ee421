package service

import (
	"context"

	"wayfarer/internal/models"
	"wayfarer/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	journalRepo repository.JournalRepository
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

type CreateCommentInput struct {
	UserID    uint
	JournalID uint
	ParentID  *uint
	Content   string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	journalRepo repository.JournalRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		journalRepo: journalRepo,
		isAdmin:     isAdmin,
	}
}

const maxCommentLen = 10000

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.journalRepo.GetByID(ctx, in.JournalID, 0); err != nil {
		return nil, models.NewNotFoundError("Journal", in.JournalID)
	}

	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, models.NewNotFoundError("Comment", *in.ParentID)
		}
		if parent.JournalID != in.JournalID {
			return nil, models.NewValidationError("Parent comment belongs to a different journal")
		}
		depth, err := s.commentRepo.Depth(ctx, *in.ParentID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		if depth >= models.MaxReplyDepth {
			return nil, models.NewValidationError("Reply nesting too deep")
		}
	}

	comment := &models.Comment{
		Content:   in.Content,
		UserID:    in.UserID,
		JournalID: in.JournalID,
		ParentID:  in.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) ListComments(ctx context.Context, journalID uint) ([]*models.Comment, error) {
	if _, err := s.journalRepo.GetByID(ctx, journalID, 0); err != nil {
		return nil, models.NewNotFoundError("Journal", journalID)
	}
	comments, err := s.commentRepo.ListByJournal(ctx, journalID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, models.NewNotFoundError("Comment", in.CommentID)
	}
	if comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own comments")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

// DeleteComment removes a comment and its replies. Admins may delete any
// comment.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return models.NewNotFoundError("Comment", in.CommentID)
	}
	if comment.UserID != in.UserID {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("You can only delete your own comments")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return models.NewInternalError(err)
		}
		if !admin {
			return models.NewUnauthorizedError("You can only delete your own comments")
		}
	}
	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
