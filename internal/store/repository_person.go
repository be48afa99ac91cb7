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

var personColumns = []string{"id", "nome", "email", "telefone", "data_nascimento", "comunidade_id", "criado_em"}

// personRepository is the PostgreSQL-backed implementation of
// [PersonRepository].
type personRepository struct {
	logger *logger.Logger
	db     *DB
	sb     squirrel.StatementBuilderType
}

// NewPersonRepository constructs a [PersonRepository] backed by the
// provided database connection and logger.
func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("creating person repository")
	return &personRepository{
		db:     db,
		logger: logger,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *personRepository) List(ctx context.Context, filter PersonFilter) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	q := r.sb.Select(personColumns...).
		From(models.Person{}.TableName()).
		OrderBy("nome")
	if filter.CommunityID != nil {
		q = q.Where(squirrel.Eq{"comunidade_id": *filter.CommunityID})
	}
	if filter.Name != "" {
		q = q.Where(squirrel.ILike{"nome": "%" + filter.Name + "%"})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.List").Msg("error: query failed")
		return nil, r.db.wrapUnavailable("list people", err)
	}
	defer rows.Close()

	people := make([]models.Person, 0)
	for rows.Next() {
		var person models.Person
		if err := scanPerson(rows, &person); err != nil {
			log.Err(err).Str("func", "*personRepository.List").Msg("error: scanning error")
			return nil, r.db.wrapUnavailable("list people", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrapUnavailable("list people", err)
	}

	return people, nil
}

func (r *personRepository) FindByID(ctx context.Context, id int64) (models.Person, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(personColumns...).
		From(models.Person{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Person{}, err
	}

	var person models.Person
	if err := scanPerson(r.db.QueryRowContext(ctx, query, args...), &person); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Person{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*personRepository.FindByID").Msg("error: scanning error")
		return models.Person{}, r.db.wrapUnavailable("find person", err)
	}

	return person, nil
}

func (r *personRepository) Create(ctx context.Context, person models.Person) (models.Person, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Insert(models.Person{}.TableName()).
		Columns("nome", "email", "telefone", "data_nascimento", "comunidade_id").
		Values(person.Name, person.Email, person.Phone, person.BirthDate, person.CommunityID).
		Suffix("RETURNING " + strings.Join(personColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Person{}, err
	}

	var created models.Person
	if err := scanPerson(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Person{}, ErrReferenceViolated
		}

		log.Err(err).Str("func", "*personRepository.Create").Msg("error: insert failed")
		return models.Person{}, r.db.wrapUnavailable("create person", err)
	}

	return created, nil
}

func (r *personRepository) Update(ctx context.Context, id int64, update models.PersonUpdate) (models.Person, error) {
	log := logger.FromContext(ctx)

	fields := map[string]any{}
	if update.Name != nil {
		fields["nome"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Phone != nil {
		fields["telefone"] = *update.Phone
	}
	if update.BirthDate != nil {
		fields["data_nascimento"] = *update.BirthDate
	}
	if update.CommunityID != nil {
		fields["comunidade_id"] = *update.CommunityID
	}
	if len(fields) == 0 {
		return models.Person{}, ErrNoFieldsToUpdate
	}

	query, args, err := r.sb.Update(models.Person{}.TableName()).
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(personColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Person{}, err
	}

	var updated models.Person
	if err := scanPerson(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Person{}, ErrRecordNotFound
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Person{}, ErrReferenceViolated
		}

		log.Err(err).Str("func", "*personRepository.Update").Msg("error: update failed")
		return models.Person{}, r.db.wrapUnavailable("update person", err)
	}

	return updated, nil
}

func (r *personRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Delete(models.Person{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		// user accounts and pastorals may still reference the person
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrReferenceViolated
		}

		log.Err(err).Str("func", "*personRepository.Delete").Msg("error: delete failed")
		return r.db.wrapUnavailable("delete person", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapUnavailable("delete person", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanPerson(row scanner, person *models.Person) error {
	return row.Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.Phone,
		&person.BirthDate,
		&person.CommunityID,
		&person.CreatedAt,
	)
}
