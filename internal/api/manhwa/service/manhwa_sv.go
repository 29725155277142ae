package manhwaService

import (
	"context"
	"strings"

	"ManhwaCatalog/internal/api/manhwa"
	"ManhwaCatalog/internal/entity"
	contextPkg "ManhwaCatalog/pkg/context"
	"ManhwaCatalog/pkg/response"
	"ManhwaCatalog/pkg/utils"

	"github.com/sirupsen/logrus"
)

func (s *manhwaService) GetAllManhwas(ctx context.Context) ([]manhwa.ManhwaResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.manhwaRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.WithCause(manhwa.ErrGetManhwas, err)
	}

	manhwas, err := repo.Manhwas.GetAllManhwas(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get manhwa")
		return nil, response.WithCause(manhwa.ErrGetManhwas, err)
	}

	return toResponses(manhwas), nil
}

// SearchManhwas returns every entry whose title contains title as sent, ignoring case.
// A blank title is a client error.
func (s *manhwaService) SearchManhwas(ctx context.Context, title string) ([]manhwa.ManhwaResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(title) == "" {
		return nil, manhwa.ErrTitleRequired
	}

	repo, err := s.manhwaRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.WithCause(manhwa.ErrGetManhwas, err)
	}

	manhwas, err := repo.Manhwas.SearchManhwasByTitle(ctx, title)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"title":      title,
			"error":      err.Error(),
		}).Error("Failed to search manhwa")
		return nil, response.WithCause(manhwa.ErrGetManhwas, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"title":      title,
		"results":    len(manhwas),
	}).Debug("Search completed")

	return toResponses(manhwas), nil
}

// GetManhwasByCategory normalizes category into a URL token and matches it against
// the equally normalized stored categories. No match is a not-found error.
func (s *manhwaService) GetManhwasByCategory(ctx context.Context, category string) ([]manhwa.ManhwaResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	token := utils.CategoryToken(category)
	if token == "" {
		return nil, manhwa.ErrCategoryRequired
	}

	repo, err := s.manhwaRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.WithCause(manhwa.ErrGetManhwas, err)
	}

	manhwas, err := repo.Manhwas.GetManhwasByCategory(ctx, token)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   token,
			"error":      err.Error(),
		}).Error("Failed to get manhwa by category")
		return nil, response.WithCause(manhwa.ErrGetManhwas, err)
	}

	if len(manhwas) == 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   token,
		}).Warn("Category has no manhwa")
		return nil, manhwa.ErrCategoryNotFound
	}

	return toResponses(manhwas), nil
}

func toResponses(manhwas []entity.Manhwa) []manhwa.ManhwaResponse {
	responses := make([]manhwa.ManhwaResponse, 0, len(manhwas))
	for _, m := range manhwas {
		responses = append(responses, manhwa.ManhwaResponse{
			ID:         m.ID,
			Title:      m.Title,
			Categories: m.Categories,
		})
	}
	return responses
}
