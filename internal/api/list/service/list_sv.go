package listService

import (
	"context"
	"errors"

	lists "ManhwaCatalog/internal/api/list"
	"ManhwaCatalog/internal/entity"
	contextPkg "ManhwaCatalog/pkg/context"
	"ManhwaCatalog/pkg/response"
	"ManhwaCatalog/pkg/utils"

	"github.com/sirupsen/logrus"
)

// CreateList stores a list named title and links every manhwa whose title
// exactly matches one of names. Names without a match are dropped.
func (s *listService) CreateList(ctx context.Context, names []string, title, description string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.listRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, response.WithCause(lists.ErrCreateList, err)
	}
	defer repo.Rollback()

	manhwas := []entity.Manhwa{}
	if len(names) > 0 {
		manhwas, err = repo.Manhwas.GetManhwasByTitles(ctx, names)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to resolve manhwa titles")
			return 0, response.WithCause(lists.ErrCreateList, err)
		}
	}

	if unmatched := unmatchedNames(names, manhwas); len(unmatched) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"unmatched":  unmatched,
		}).Debug("Dropping names without a catalog entry")
	}

	list := entity.List{
		Name:        title,
		Description: description,
		Slug:        utils.ListSlug(title),
	}

	listID, err := repo.Lists.CreateList(ctx, list)
	if err != nil {
		if errors.Is(err, lists.ErrListSlugTaken) {
			return 0, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       list.Slug,
			"error":      err.Error(),
		}).Error("Failed to create list")
		return 0, response.WithCause(lists.ErrCreateList, err)
	}

	for _, m := range manhwas {
		err := repo.ListManhwas.CreateListManhwa(ctx, entity.ListManhwa{
			List:   listID,
			Manhwa: m.ID,
		})
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"list_id":    listID,
				"manhwa_id":  m.ID,
				"error":      err.Error(),
			}).Error("Failed to link manhwa to list")
			return 0, response.WithCause(lists.ErrCreateList, err)
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit list")
		return 0, response.WithCause(lists.ErrCreateList, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"list_id":    listID,
		"slug":       list.Slug,
		"members":    len(manhwas),
	}).Info("List created")

	return listID, nil
}

// CreateListFromText asks the extractor for a title, description and names,
// then builds the list from whatever came back, empty fields included.
func (s *listService) CreateListFromText(ctx context.Context, text string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.extractor == nil {
		return 0, lists.ErrExtractorNotEnabled
	}

	extracted, err := s.extractor.ExtractList(ctx, text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to extract list from text")
		return 0, response.WithCause(lists.ErrExtractionFailed, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"title":      extracted.Title,
		"names":      len(extracted.Manhwas),
	}).Debug("Extracted list from text")

	return s.CreateList(ctx, extracted.Manhwas, extracted.Title, extracted.Description)
}

func (s *listService) GetManhwasBySlug(ctx context.Context, slug string) ([]entity.Manhwa, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.listRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.WithCause(lists.ErrGetList, err)
	}

	manhwas, err := repo.ListManhwas.GetManhwasByListSlug(ctx, slug)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
			"error":      err.Error(),
		}).Error("Failed to get list members")
		return nil, response.WithCause(lists.ErrGetList, err)
	}

	return manhwas, nil
}

func unmatchedNames(names []string, found []entity.Manhwa) []string {
	titles := make(map[string]struct{}, len(found))
	for _, m := range found {
		titles[m.Title] = struct{}{}
	}

	var unmatched []string
	for _, name := range names {
		if _, ok := titles[name]; !ok {
			unmatched = append(unmatched, name)
		}
	}
	return unmatched
}
