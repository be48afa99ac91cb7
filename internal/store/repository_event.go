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

var eventColumns = []string{"id", "nome", "descricao", "data", "local_id", "comunidade_id", "criado_em"}

// eventRepository is the PostgreSQL-backed implementation of
// [EventRepository].
type eventRepository struct {
	logger *logger.Logger
	db     *DB
	sb     squirrel.StatementBuilderType
}

// NewEventRepository constructs an [EventRepository] backed by the provided
// database connection and logger.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *eventRepository) List(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	q := r.sb.Select(eventColumns...).
		From(models.Event{}.TableName()).
		OrderBy("data")
	if filter.CommunityID != nil {
		q = q.Where(squirrel.Eq{"comunidade_id": *filter.CommunityID})
	}
	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"data": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(squirrel.LtOrEq{"data": *filter.To})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.List").Msg("error: query failed")
		return nil, r.db.wrapUnavailable("list events", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		if err := scanEvent(rows, &event); err != nil {
			log.Err(err).Str("func", "*eventRepository.List").Msg("error: scanning error")
			return nil, r.db.wrapUnavailable("list events", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrapUnavailable("list events", err)
	}

	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id int64) (models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(eventColumns...).
		From(models.Event{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Event{}, err
	}

	var event models.Event
	if err := scanEvent(r.db.QueryRowContext(ctx, query, args...), &event); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*eventRepository.FindByID").Msg("error: scanning error")
		return models.Event{}, r.db.wrapUnavailable("find event", err)
	}

	return event, nil
}

func (r *eventRepository) Create(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Insert(models.Event{}.TableName()).
		Columns("nome", "descricao", "data", "local_id", "comunidade_id").
		Values(event.Name, event.Description, event.Date, event.VenueID, event.CommunityID).
		Suffix("RETURNING " + strings.Join(eventColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Event{}, err
	}

	var created models.Event
	if err := scanEvent(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Event{}, ErrReferenceViolated
		}

		log.Err(err).Str("func", "*eventRepository.Create").Msg("error: insert failed")
		return models.Event{}, r.db.wrapUnavailable("create event", err)
	}

	return created, nil
}

func (r *eventRepository) Update(ctx context.Context, id int64, update models.EventUpdate) (models.Event, error) {
	log := logger.FromContext(ctx)

	fields := map[string]any{}
	if update.Name != nil {
		fields["nome"] = *update.Name
	}
	if update.Description != nil {
		fields["descricao"] = *update.Description
	}
	if update.Date != nil {
		fields["data"] = *update.Date
	}
	if update.VenueID != nil {
		fields["local_id"] = *update.VenueID
	}
	if update.CommunityID != nil {
		fields["comunidade_id"] = *update.CommunityID
	}
	if len(fields) == 0 {
		return models.Event{}, ErrNoFieldsToUpdate
	}

	query, args, err := r.sb.Update(models.Event{}.TableName()).
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(eventColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Event{}, err
	}

	var updated models.Event
	if err := scanEvent(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrRecordNotFound
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Event{}, ErrReferenceViolated
		}

		log.Err(err).Str("func", "*eventRepository.Update").Msg("error: update failed")
		return models.Event{}, r.db.wrapUnavailable("update event", err)
	}

	return updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Delete(models.Event{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.Delete").Msg("error: delete failed")
		return r.db.wrapUnavailable("delete event", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapUnavailable("delete event", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanEvent(row scanner, event *models.Event) error {
	return row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Date,
		&event.VenueID,
		&event.CommunityID,
		&event.CreatedAt,
	)
}
