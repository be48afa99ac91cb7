package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/paroquia-on/server/internal/logger"
)

func newTestDashboardRepo(t *testing.T) (*dashboardRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &dashboardRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCountAll_Success(t *testing.T) {
	repo, mock, db := newTestDashboardRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT(.+) FROM comunidades").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery("SELECT COUNT(.+) FROM pastorais").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))
	mock.ExpectQuery("SELECT COUNT(.+) FROM pessoas").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(150))
	mock.ExpectQuery("SELECT COUNT(.+) FROM eventos").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("SELECT COUNT(.+) FROM acoes").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))

	summary, err := repo.CountAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Communities != 4 || summary.People != 150 || summary.Actions != 23 {
		t.Errorf("unexpected totals: %+v", summary)
	}
}

func TestCountAll_DBError(t *testing.T) {
	repo, mock, db := newTestDashboardRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT(.+) FROM comunidades").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CountAll(context.Background())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestEventsByMonth_Success(t *testing.T) {
	repo, mock, db := newTestDashboardRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"mes", "total"}).
		AddRow("2026-07", 3).
		AddRow("2026-08", 5)

	mock.ExpectQuery("SELECT to_char").
		WillReturnRows(rows)

	buckets, err := repo.EventsByMonth(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Month != "2026-07" || buckets[0].Total != 3 {
		t.Errorf("unexpected first bucket: %+v", buckets[0])
	}
}

func TestActionsByStatus_Success(t *testing.T) {
	repo, mock, db := newTestDashboardRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"status", "total"}).
		AddRow("concluida", 8).
		AddRow("planejada", 11)

	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(rows)

	buckets, err := repo.ActionsByStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[1].Status != "planejada" {
		t.Errorf("expected planejada, got %s", buckets[1].Status)
	}
}
