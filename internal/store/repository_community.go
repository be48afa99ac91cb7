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

var communityColumns = []string{"id", "nome", "endereco", "cidade", "telefone", "criado_em"}

// communityRepository is the PostgreSQL-backed implementation of
// [CommunityRepository]. Statements are built with squirrel so the List
// filter and the partial UPDATE stay free of hand-assembled SQL.
type communityRepository struct {
	logger *logger.Logger
	db     *DB
	sb     squirrel.StatementBuilderType
}

// NewCommunityRepository constructs a [CommunityRepository] backed by the
// provided database connection and logger.
func NewCommunityRepository(db *DB, logger *logger.Logger) CommunityRepository {
	logger.Debug().Msg("creating community repository")
	return &communityRepository{
		db:     db,
		logger: logger,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *communityRepository) List(ctx context.Context, filter CommunityFilter) ([]models.Community, error) {
	log := logger.FromContext(ctx)

	q := r.sb.Select(communityColumns...).
		From(models.Community{}.TableName()).
		OrderBy("nome")
	if filter.City != "" {
		q = q.Where(squirrel.Eq{"cidade": filter.City})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*communityRepository.List").Msg("error: query failed")
		return nil, r.db.wrapUnavailable("list communities", err)
	}
	defer rows.Close()

	communities := make([]models.Community, 0)
	for rows.Next() {
		var community models.Community
		if err := rows.Scan(&community.ID, &community.Name, &community.Address, &community.City, &community.Phone, &community.CreatedAt); err != nil {
			log.Err(err).Str("func", "*communityRepository.List").Msg("error: scanning error")
			return nil, r.db.wrapUnavailable("list communities", err)
		}
		communities = append(communities, community)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrapUnavailable("list communities", err)
	}

	return communities, nil
}

func (r *communityRepository) FindByID(ctx context.Context, id int64) (models.Community, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(communityColumns...).
		From(models.Community{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Community{}, err
	}

	var community models.Community
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&community.ID, &community.Name, &community.Address, &community.City, &community.Phone, &community.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Community{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*communityRepository.FindByID").Msg("error: scanning error")
		return models.Community{}, r.db.wrapUnavailable("find community", err)
	}

	return community, nil
}

func (r *communityRepository) Create(ctx context.Context, community models.Community) (models.Community, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Insert(models.Community{}.TableName()).
		Columns("nome", "endereco", "cidade", "telefone").
		Values(community.Name, community.Address, community.City, community.Phone).
		Suffix("RETURNING " + strings.Join(communityColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Community{}, err
	}

	var created models.Community
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Name, &created.Address, &created.City, &created.Phone, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*communityRepository.Create").Msg("error: insert failed")
		return models.Community{}, r.db.wrapUnavailable("create community", err)
	}

	return created, nil
}

func (r *communityRepository) Update(ctx context.Context, id int64, update models.CommunityUpdate) (models.Community, error) {
	log := logger.FromContext(ctx)

	fields := map[string]any{}
	if update.Name != nil {
		fields["nome"] = *update.Name
	}
	if update.Address != nil {
		fields["endereco"] = *update.Address
	}
	if update.City != nil {
		fields["cidade"] = *update.City
	}
	if update.Phone != nil {
		fields["telefone"] = *update.Phone
	}
	if len(fields) == 0 {
		return models.Community{}, ErrNoFieldsToUpdate
	}

	query, args, err := r.sb.Update(models.Community{}.TableName()).
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(communityColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Community{}, err
	}

	var updated models.Community
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Address, &updated.City, &updated.Phone, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Community{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*communityRepository.Update").Msg("error: update failed")
		return models.Community{}, r.db.wrapUnavailable("update community", err)
	}

	return updated, nil
}

func (r *communityRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Delete(models.Community{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		// other tables still referencing the community block the delete
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrReferenceViolated
		}

		log.Err(err).Str("func", "*communityRepository.Delete").Msg("error: delete failed")
		return r.db.wrapUnavailable("delete community", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapUnavailable("delete community", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
