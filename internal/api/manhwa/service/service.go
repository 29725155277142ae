package manhwaService

import (
	"context"

	"ManhwaCatalog/internal/api/manhwa"
	manhwaRepository "ManhwaCatalog/internal/api/manhwa/repository"

	"github.com/sirupsen/logrus"
)

type IManhwaService interface {
	GetAllManhwas(ctx context.Context) ([]manhwa.ManhwaResponse, error)
	SearchManhwas(ctx context.Context, title string) ([]manhwa.ManhwaResponse, error)
	GetManhwasByCategory(ctx context.Context, category string) ([]manhwa.ManhwaResponse, error)
}

type manhwaService struct {
	log        *logrus.Logger
	manhwaRepo manhwaRepository.Repository
}

func NewManhwaService(
	log *logrus.Logger,
	manhwaRepo manhwaRepository.Repository,
) IManhwaService {
	return &manhwaService{
		log:        log,
		manhwaRepo: manhwaRepo,
	}
}
