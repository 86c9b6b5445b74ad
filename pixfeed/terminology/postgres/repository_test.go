package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const lookupQuery = `SELECT target_code FROM concept_map WHERE source_system = $1 AND source_code = $2 AND target_system = $3 LIMIT 1`

type RepositoryTestSuite struct {
	suite.Suite
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (r *RepositoryTestSuite) TestLookup() {
	dbErr := errors.New("connection reset")
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		queryErr error
		expected string
		expErr   error
	}{
		{"Found", sqlmock.NewRows([]string{"target_code"}).AddRow("mo"), nil, "mo", nil},
		{"NoRows", nil, sql.ErrNoRows, "", nil},
		{"DatabaseError", nil, dbErr, "", dbErr},
	}

	for _, tt := range tests {
		r.T().Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer func() {
				assert.NoError(t, mock.ExpectationsWereMet())
				db.Close()
			}()
			repository := NewRepository(db)

			query := mock.ExpectQuery(fmt.Sprintf("^%s$", regexp.QuoteMeta(lookupQuery))).
				WithArgs("1.0.639.3", "moh", "1.0.639.1")
			if tt.rows != nil {
				query.WillReturnRows(tt.rows)
			} else {
				query.WillReturnError(tt.queryErr)
			}

			target, err := repository.Lookup(context.Background(), "moh", "1.0.639.3", "1.0.639.1")
			assert.Equal(t, tt.expected, target)
			if tt.expErr == nil {
				assert.NoError(t, err)
				return
			}
			var lookupErr *LookupError
			assert.True(t, errors.As(err, &lookupErr))
			assert.True(t, errors.Is(err, tt.expErr))
			assert.Equal(t, "moh", lookupErr.Code)
		})
	}
}

func (r *RepositoryTestSuite) TestTranslator() {
	db, mock, err := sqlmock.New()
	r.NoError(err)
	defer db.Close()

	logger, hook := test.NewNullLogger()
	translator := &Translator{Repository: NewRepository(db), Logger: logger}

	mock.ExpectQuery(regexp.QuoteMeta(lookupQuery)).
		WithArgs("1.0.639.3", "moh", "1.0.639.1").
		WillReturnRows(sqlmock.NewRows([]string{"target_code"}).AddRow("mo"))
	mock.ExpectQuery(regexp.QuoteMeta(lookupQuery)).
		WithArgs("1.0.639.3", "xxx", "1.0.639.1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(lookupQuery)).
		WithArgs("1.0.639.3", "err", "1.0.639.1").
		WillReturnError(errors.New("timeout"))

	code, ok := translator.Translate("moh", "1.0.639.3", "1.0.639.1")
	r.True(ok)
	r.Equal("mo", code)

	_, ok = translator.Translate("xxx", "1.0.639.3", "1.0.639.1")
	r.False(ok)
	r.Empty(hook.Entries)

	_, ok = translator.Translate("err", "1.0.639.3", "1.0.639.1")
	r.False(ok)
	r.Len(hook.Entries, 1)
	r.Contains(hook.LastEntry().Message, "failed to look up err")

	r.NoError(mock.ExpectationsWereMet())
}

func (r *RepositoryTestSuite) TestConnectBadURL() {
	cfg := &Config{DatabaseURL: "postgres://nobody@127.0.0.1:1/none?connect_timeout=1", MaxOpenConns: 1, PingRetries: 0}
	db, err := Connect(context.Background(), cfg)
	r.Error(err)
	r.Nil(db)
}
