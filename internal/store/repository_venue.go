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

var venueColumns = []string{"id", "nome", "endereco", "capacidade", "criado_em"}

// venueRepository is the PostgreSQL-backed implementation of
// [VenueRepository].
type venueRepository struct {
	logger *logger.Logger
	db     *DB
	sb     squirrel.StatementBuilderType
}

// NewVenueRepository constructs a [VenueRepository] backed by the provided
// database connection and logger.
func NewVenueRepository(db *DB, logger *logger.Logger) VenueRepository {
	logger.Debug().Msg("creating venue repository")
	return &venueRepository{
		db:     db,
		logger: logger,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *venueRepository) List(ctx context.Context) ([]models.Venue, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(venueColumns...).
		From(models.Venue{}.TableName()).
		OrderBy("nome").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*venueRepository.List").Msg("error: query failed")
		return nil, r.db.wrapUnavailable("list venues", err)
	}
	defer rows.Close()

	venues := make([]models.Venue, 0)
	for rows.Next() {
		var venue models.Venue
		if err := scanVenue(rows, &venue); err != nil {
			log.Err(err).Str("func", "*venueRepository.List").Msg("error: scanning error")
			return nil, r.db.wrapUnavailable("list venues", err)
		}
		venues = append(venues, venue)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrapUnavailable("list venues", err)
	}

	return venues, nil
}

func (r *venueRepository) FindByID(ctx context.Context, id int64) (models.Venue, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(venueColumns...).
		From(models.Venue{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Venue{}, err
	}

	var venue models.Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, query, args...), &venue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Venue{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*venueRepository.FindByID").Msg("error: scanning error")
		return models.Venue{}, r.db.wrapUnavailable("find venue", err)
	}

	return venue, nil
}

func (r *venueRepository) Create(ctx context.Context, venue models.Venue) (models.Venue, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Insert(models.Venue{}.TableName()).
		Columns("nome", "endereco", "capacidade").
		Values(venue.Name, venue.Address, venue.Capacity).
		Suffix("RETURNING " + strings.Join(venueColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Venue{}, err
	}

	var created models.Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).Str("func", "*venueRepository.Create").Msg("error: insert failed")
		return models.Venue{}, r.db.wrapUnavailable("create venue", err)
	}

	return created, nil
}

func (r *venueRepository) Update(ctx context.Context, id int64, update models.VenueUpdate) (models.Venue, error) {
	log := logger.FromContext(ctx)

	fields := map[string]any{}
	if update.Name != nil {
		fields["nome"] = *update.Name
	}
	if update.Address != nil {
		fields["endereco"] = *update.Address
	}
	if update.Capacity != nil {
		fields["capacidade"] = *update.Capacity
	}
	if len(fields) == 0 {
		return models.Venue{}, ErrNoFieldsToUpdate
	}

	query, args, err := r.sb.Update(models.Venue{}.TableName()).
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(venueColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Venue{}, err
	}

	var updated models.Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Venue{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*venueRepository.Update").Msg("error: update failed")
		return models.Venue{}, r.db.wrapUnavailable("update venue", err)
	}

	return updated, nil
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Delete(models.Venue{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		// events referencing the venue block the delete
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrReferenceViolated
		}

		log.Err(err).Str("func", "*venueRepository.Delete").Msg("error: delete failed")
		return r.db.wrapUnavailable("delete venue", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapUnavailable("delete venue", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanVenue(row scanner, venue *models.Venue) error {
	return row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Address,
		&venue.Capacity,
		&venue.CreatedAt,
	)
}
