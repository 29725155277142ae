package listRepository

import (
	"context"

	manhwaRepository "ManhwaCatalog/internal/api/manhwa/repository"
	"ManhwaCatalog/internal/entity"
	contextPkg "ManhwaCatalog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *listManhwasRepository) CreateListManhwa(ctx context.Context, listManhwa entity.ListManhwa) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"list":   listManhwa.List,
		"manhwa": listManhwa.Manhwa,
	}

	query, args, err := sqlx.Named(queryCreateListManhwa, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateListManhwa")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"list":       listManhwa.List,
			"manhwa":     listManhwa.Manhwa,
			"error":      err.Error(),
		}).Error("CreateListManhwa execution err")
		return err
	}

	return nil
}

// GetManhwasByListSlug returns the members of the list in insertion order.
// An unknown slug and a list without members both give an empty slice.
func (r *listManhwasRepository) GetManhwasByListSlug(ctx context.Context, slug string) ([]entity.Manhwa, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"slug": slug,
	}

	query, args, err := sqlx.Named(queryGetManhwasByListSlug, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for GetManhwasByListSlug")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []manhwaRepository.ManhwaDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
			"error":      err.Error(),
		}).Error("GetManhwasByListSlug execution err")
		return nil, err
	}

	manhwas := make([]entity.Manhwa, 0, len(rows))
	for _, row := range rows {
		manhwas = append(manhwas, manhwaRepository.MakeManhwa(row))
	}

	return manhwas, nil
}
