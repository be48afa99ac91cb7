package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/models"
)

var pastoralColumns = []string{"id", "nome", "descricao", "comunidade_id", "coordenador_id", "ativa", "criado_em"}

// pastoralRepository is the PostgreSQL-backed implementation of
// [PastoralRepository].
type pastoralRepository struct {
	logger *logger.Logger
	db     *DB
	sb     squirrel.StatementBuilderType
}

// NewPastoralRepository constructs a [PastoralRepository] backed by the
// provided database connection and logger.
func NewPastoralRepository(db *DB, logger *logger.Logger) PastoralRepository {
	logger.Debug().Msg("creating pastoral repository")
	return &pastoralRepository{
		db:     db,
		logger: logger,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *pastoralRepository) List(ctx context.Context, filter PastoralFilter) ([]models.Pastoral, error) {
	log := logger.FromContext(ctx)

	q := r.sb.Select(pastoralColumns...).
		From(models.Pastoral{}.TableName()).
		OrderBy("nome")
	if filter.CommunityID != nil {
		q = q.Where(squirrel.Eq{"comunidade_id": *filter.CommunityID})
	}
	if filter.ActiveOnly {
		q = q.Where(squirrel.Eq{"ativa": true})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*pastoralRepository.List").Msg("error: query failed")
		return nil, r.db.wrapUnavailable("list pastorals", err)
	}
	defer rows.Close()

	pastorals := make([]models.Pastoral, 0)
	for rows.Next() {
		var pastoral models.Pastoral
		if err := scanPastoral(rows, &pastoral); err != nil {
			log.Err(err).Str("func", "*pastoralRepository.List").Msg("error: scanning error")
			return nil, r.db.wrapUnavailable("list pastorals", err)
		}
		pastorals = append(pastorals, pastoral)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrapUnavailable("list pastorals", err)
	}

	return pastorals, nil
}

func (r *pastoralRepository) FindByID(ctx context.Context, id int64) (models.Pastoral, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(pastoralColumns...).
		From(models.Pastoral{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Pastoral{}, err
	}

	var pastoral models.Pastoral
	if err := scanPastoral(r.db.QueryRowContext(ctx, query, args...), &pastoral); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Pastoral{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*pastoralRepository.FindByID").Msg("error: scanning error")
		return models.Pastoral{}, r.db.wrapUnavailable("find pastoral", err)
	}

	return pastoral, nil
}

func (r *pastoralRepository) Create(ctx context.Context, pastoral models.Pastoral) (models.Pastoral, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Insert(models.Pastoral{}.TableName()).
		Columns("nome", "descricao", "comunidade_id", "coordenador_id", "ativa").
		Values(pastoral.Name, pastoral.Description, pastoral.CommunityID, pastoral.CoordinatorID, pastoral.Active).
		Suffix("RETURNING " + strings.Join(pastoralColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Pastoral{}, err
	}

	var created models.Pastoral
	if err := scanPastoral(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Pastoral{}, ErrReferenceViolated
		}

		log.Err(err).Str("func", "*pastoralRepository.Create").Msg("error: insert failed")
		return models.Pastoral{}, r.db.wrapUnavailable("create pastoral", err)
	}

	return created, nil
}

func (r *pastoralRepository) Update(ctx context.Context, id int64, update models.PastoralUpdate) (models.Pastoral, error) {
	log := logger.FromContext(ctx)

	fields := map[string]any{}
	if update.Name != nil {
		fields["nome"] = *update.Name
	}
	if update.Description != nil {
		fields["descricao"] = *update.Description
	}
	if update.CommunityID != nil {
		fields["comunidade_id"] = *update.CommunityID
	}
	if update.CoordinatorID != nil {
		fields["coordenador_id"] = *update.CoordinatorID
	}
	if update.Active != nil {
		fields["ativa"] = *update.Active
	}
	if len(fields) == 0 {
		return models.Pastoral{}, ErrNoFieldsToUpdate
	}

	query, args, err := r.sb.Update(models.Pastoral{}.TableName()).
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(pastoralColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Pastoral{}, err
	}

	var updated models.Pastoral
	if err := scanPastoral(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Pastoral{}, ErrRecordNotFound
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Pastoral{}, ErrReferenceViolated
		}

		log.Err(err).Str("func", "*pastoralRepository.Update").Msg("error: update failed")
		return models.Pastoral{}, r.db.wrapUnavailable("update pastoral", err)
	}

	return updated, nil
}

func (r *pastoralRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Delete(models.Pastoral{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrReferenceViolated
		}

		log.Err(err).Str("func", "*pastoralRepository.Delete").Msg("error: delete failed")
		return r.db.wrapUnavailable("delete pastoral", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapUnavailable("delete pastoral", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanPastoral(row scanner, pastoral *models.Pastoral) error {
	return row.Scan(
		&pastoral.ID,
		&pastoral.Name,
		&pastoral.Description,
		&pastoral.CommunityID,
		&pastoral.CoordinatorID,
		&pastoral.Active,
		&pastoral.CreatedAt,
	)
}
