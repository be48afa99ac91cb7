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

var actionColumns = []string{"id", "titulo", "objetivo", "status", "pastoral_id", "data_inicio", "data_fim", "criado_em"}

// actionRepository is the PostgreSQL-backed implementation of
// [ActionRepository].
type actionRepository struct {
	logger *logger.Logger
	db     *DB
	sb     squirrel.StatementBuilderType
}

// NewActionRepository constructs an [ActionRepository] backed by the
// provided database connection and logger.
func NewActionRepository(db *DB, logger *logger.Logger) ActionRepository {
	logger.Debug().Msg("creating action repository")
	return &actionRepository{
		db:     db,
		logger: logger,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *actionRepository) List(ctx context.Context, filter ActionFilter) ([]models.Action, error) {
	log := logger.FromContext(ctx)

	q := r.sb.Select(actionColumns...).
		From(models.Action{}.TableName()).
		OrderBy("criado_em DESC")
	if filter.PastoralID != nil {
		q = q.Where(squirrel.Eq{"pastoral_id": *filter.PastoralID})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*actionRepository.List").Msg("error: query failed")
		return nil, r.db.wrapUnavailable("list actions", err)
	}
	defer rows.Close()

	actions := make([]models.Action, 0)
	for rows.Next() {
		var action models.Action
		if err := scanAction(rows, &action); err != nil {
			log.Err(err).Str("func", "*actionRepository.List").Msg("error: scanning error")
			return nil, r.db.wrapUnavailable("list actions", err)
		}
		actions = append(actions, action)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrapUnavailable("list actions", err)
	}

	return actions, nil
}

func (r *actionRepository) FindByID(ctx context.Context, id int64) (models.Action, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(actionColumns...).
		From(models.Action{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Action{}, err
	}

	var action models.Action
	if err := scanAction(r.db.QueryRowContext(ctx, query, args...), &action); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Action{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*actionRepository.FindByID").Msg("error: scanning error")
		return models.Action{}, r.db.wrapUnavailable("find action", err)
	}

	return action, nil
}

func (r *actionRepository) Create(ctx context.Context, action models.Action) (models.Action, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Insert(models.Action{}.TableName()).
		Columns("titulo", "objetivo", "status", "pastoral_id", "data_inicio", "data_fim").
		Values(action.Title, action.Objective, action.Status, action.PastoralID, action.StartDate, action.EndDate).
		Suffix("RETURNING " + strings.Join(actionColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Action{}, err
	}

	var created models.Action
	if err := scanAction(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Action{}, ErrReferenceViolated
		}

		log.Err(err).Str("func", "*actionRepository.Create").Msg("error: insert failed")
		return models.Action{}, r.db.wrapUnavailable("create action", err)
	}

	return created, nil
}

func (r *actionRepository) Update(ctx context.Context, id int64, update models.ActionUpdate) (models.Action, error) {
	log := logger.FromContext(ctx)

	fields := map[string]any{}
	if update.Title != nil {
		fields["titulo"] = *update.Title
	}
	if update.Objective != nil {
		fields["objetivo"] = *update.Objective
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.PastoralID != nil {
		fields["pastoral_id"] = *update.PastoralID
	}
	if update.StartDate != nil {
		fields["data_inicio"] = *update.StartDate
	}
	if update.EndDate != nil {
		fields["data_fim"] = *update.EndDate
	}
	if len(fields) == 0 {
		return models.Action{}, ErrNoFieldsToUpdate
	}

	query, args, err := r.sb.Update(models.Action{}.TableName()).
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(actionColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Action{}, err
	}

	var updated models.Action
	if err := scanAction(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Action{}, ErrRecordNotFound
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Action{}, ErrReferenceViolated
		}

		log.Err(err).Str("func", "*actionRepository.Update").Msg("error: update failed")
		return models.Action{}, r.db.wrapUnavailable("update action", err)
	}

	return updated, nil
}

func (r *actionRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Delete(models.Action{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*actionRepository.Delete").Msg("error: delete failed")
		return r.db.wrapUnavailable("delete action", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapUnavailable("delete action", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanAction(row scanner, action *models.Action) error {
	return row.Scan(
		&action.ID,
		&action.Title,
		&action.Objective,
		&action.Status,
		&action.PastoralID,
		&action.StartDate,
		&action.EndDate,
		&action.CreatedAt,
	)
}
