package listService

import (
	"context"

	listRepository "ManhwaCatalog/internal/api/list/repository"
	"ManhwaCatalog/internal/entity"
	"ManhwaCatalog/pkg/extraction"

	"github.com/sirupsen/logrus"
)

type IListService interface {
	CreateList(ctx context.Context, names []string, title, description string) (int64, error)
	CreateListFromText(ctx context.Context, text string) (int64, error)
	GetManhwasBySlug(ctx context.Context, slug string) ([]entity.Manhwa, error)
}

type listService struct {
	log       *logrus.Logger
	listRepo  listRepository.Repository
	extractor extraction.IListExtractor
}

// NewListService wires the list builder. extractor may be nil, in which case
// text requests fail with ErrExtractorNotEnabled.
func NewListService(
	log *logrus.Logger,
	listRepo listRepository.Repository,
	extractor extraction.IListExtractor,
) IListService {
	return &listService{
		log:       log,
		listRepo:  listRepo,
		extractor: extractor,
	}
}
