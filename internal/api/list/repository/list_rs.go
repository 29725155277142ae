package listRepository

import (
	"context"
	"database/sql"
	"errors"

	lists "ManhwaCatalog/internal/api/list"
	"ManhwaCatalog/internal/entity"
	contextPkg "ManhwaCatalog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type ListDB struct {
	ID          sql.NullInt64  `db:"id"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	Slug        sql.NullString `db:"slug"`
}

func (r *listsRepository) CreateList(ctx context.Context, list entity.List) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"name":        list.Name,
		"description": list.Description,
		"slug":        list.Slug,
	}

	query, args, err := sqlx.Named(queryCreateList, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateList")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       list.Slug,
				"error":      err.Error(),
			}).Warn("List slug already exists")
			return 0, lists.ErrListSlugTaken
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateList execution err")
		return 0, err
	}

	return id, nil
}

func (r *listsRepository) GetAllLists(ctx context.Context) ([]entity.List, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var rows []ListDB
	if err := r.q.SelectContext(ctx, &rows, queryGetAllLists); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllLists execution err")
		return nil, err
	}

	result := make([]entity.List, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeList(row))
	}

	return result, nil
}

func makeList(list ListDB) entity.List {
	return entity.List{
		ID:          list.ID.Int64,
		Name:        list.Name.String,
		Description: list.Description.String,
		Slug:        list.Slug.String,
	}
}
