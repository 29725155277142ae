package listRepository

import (
	"context"

	manhwaRepository "ManhwaCatalog/internal/api/manhwa/repository"
	"ManhwaCatalog/internal/entity"
	contextPkg "ManhwaCatalog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// GetManhwasByTitles resolves exact titles. Titles with no row are simply absent from the result.
func (r *manhwasRepository) GetManhwasByTitles(ctx context.Context, titles []string) ([]entity.Manhwa, error) {
	requestID := contextPkg.GetRequestID(ctx)
	if len(titles) == 0 {
		return []entity.Manhwa{}, nil
	}

	argsKV := map[string]interface{}{
		"titles": titles,
	}

	query, args, err := sqlx.Named(queryGetManhwasByTitles, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetManhwasByTitles named query preparation err")
		return nil, err
	}

	query, args, err = sqlx.In(query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetManhwasByTitles IN expansion err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []manhwaRepository.ManhwaDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetManhwasByTitles execution err")
		return nil, err
	}

	manhwas := make([]entity.Manhwa, 0, len(rows))
	for _, row := range rows {
		manhwas = append(manhwas, manhwaRepository.MakeManhwa(row))
	}

	return manhwas, nil
}
