package manhwaRepository

import (
	"context"
	"database/sql"
	"strings"

	"ManhwaCatalog/internal/entity"
	contextPkg "ManhwaCatalog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type ManhwaDB struct {
	ID         sql.NullInt64  `db:"id"`
	Title      sql.NullString `db:"title"`
	Categories pq.StringArray `db:"categories"`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *manhwasRepository) GetAllManhwas(ctx context.Context) ([]entity.Manhwa, error) {
	return r.selectManhwas(ctx, queryGetAllManhwas, map[string]interface{}{}, "GetAllManhwas")
}

// SearchManhwasByTitle matches title as a case-insensitive substring; LIKE wildcards in title are literal.
func (r *manhwasRepository) SearchManhwasByTitle(ctx context.Context, title string) ([]entity.Manhwa, error) {
	argsKV := map[string]interface{}{
		"pattern": "%" + likeEscaper.Replace(title) + "%",
	}
	return r.selectManhwas(ctx, querySearchManhwasByTitle, argsKV, "SearchManhwasByTitle")
}

func (r *manhwasRepository) GetManhwasByCategory(ctx context.Context, token string) ([]entity.Manhwa, error) {
	argsKV := map[string]interface{}{
		"token": token,
	}
	return r.selectManhwas(ctx, queryGetManhwasByCategory, argsKV, "GetManhwasByCategory")
}

// GetAllCategories returns every category value of every row, duplicates included.
func (r *manhwasRepository) GetAllCategories(ctx context.Context) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []sql.NullString

	if err := r.q.SelectContext(ctx, &rows, queryGetAllCategories); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	categories := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Valid {
			categories = append(categories, row.String)
		}
	}

	return categories, nil
}

func (r *manhwasRepository) selectManhwas(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) ([]entity.Manhwa, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var manhwaList []ManhwaDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &manhwaList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, err
	}

	manhwas := make([]entity.Manhwa, 0, len(manhwaList))
	for _, manhwaDB := range manhwaList {
		manhwas = append(manhwas, MakeManhwa(manhwaDB))
	}

	return manhwas, nil
}

// MakeManhwa converts a scanned row; the list domain scans the same columns.
func MakeManhwa(manhwa ManhwaDB) entity.Manhwa {
	categories := []string(manhwa.Categories)
	if categories == nil {
		categories = []string{}
	}
	return entity.Manhwa{
		ID:         manhwa.ID.Int64,
		Title:      manhwa.Title.String,
		Categories: categories,
	}
}
