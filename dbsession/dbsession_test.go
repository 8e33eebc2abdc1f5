package dbsession

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOpenEmptyDSN(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatalf("empty DSN must be rejected")
	}
}

func TestPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatal(err)
	}
	s := NewFromDB(db)
	defer s.Close()

	mock.ExpectPing()
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatal(err)
	}
	s := NewFromDB(db)
	defer s.Close()

	down := errors.New("server has gone away")
	mock.ExpectPing().WillReturnError(down)
	if err := s.Ping(context.Background()); !errors.Is(err, down) {
		t.Errorf("Ping err = %v, want %v", err, down)
	}
}

func TestDBExposesHandle(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	s := NewFromDB(db)
	defer s.Close()

	if s.DB() != db {
		t.Errorf("DB() returned a different handle")
	}
}
