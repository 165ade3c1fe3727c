package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const AuditRunsSchema = `
	CREATE TABLE IF NOT EXISTS audit_runs (
		id VARCHAR NOT NULL,
		account VARCHAR NOT NULL,
		overall_score INTEGER NOT NULL,
		grade VARCHAR NOT NULL,
		total_issues INTEGER NOT NULL,
		dimension_scores JSON,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (account, id)
	);
`

const CreativeStatusSchema = `
	CREATE TABLE IF NOT EXISTS creative_status (
		account VARCHAR NOT NULL,
		creative_id VARCHAR NOT NULL,
		status VARCHAR NOT NULL,
		score INTEGER NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (account, creative_id)
	);
`

var bootQueries = []string{
	AuditRunsSchema,
	CreativeStatusSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
