package submission

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/supplier-sourcing/model"
	"github.com/muhammadheryan/supplier-sourcing/utils/metrics"
)

type SQL struct {
	conn *sqlx.DB
}

type SubmissionRepository interface {
	EnsureSchema(ctx context.Context) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SubmissionEntity) (uint64, error)
	List(ctx context.Context) ([]model.SubmissionEntity, error)
}

func NewSubmissionRepository(conn *sqlx.DB) SubmissionRepository {
	return &SQL{conn: conn}
}

const (
	createTableMySQL = `CREATE TABLE IF NOT EXISTS form_submissions (
	id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	supplier_name VARCHAR(255) NOT NULL,
	product_info TEXT NOT NULL,
	product_url TEXT NULL,
	category VARCHAR(255) NOT NULL,
	quantity BIGINT NOT NULL,
	timeline VARCHAR(255) NOT NULL,
	location VARCHAR(255) NOT NULL,
	required_for VARCHAR(255) NOT NULL,
	INDEX idx_form_submissions_supplier_name (supplier_name)
)`

	createTablePostgres = `CREATE TABLE IF NOT EXISTS form_submissions (
	id BIGSERIAL PRIMARY KEY,
	supplier_name TEXT NOT NULL,
	product_info TEXT NOT NULL,
	product_url TEXT NULL,
	category TEXT NOT NULL,
	quantity BIGINT NOT NULL,
	timeline TEXT NOT NULL,
	location TEXT NOT NULL,
	required_for TEXT NOT NULL
)`

	createIndexPostgres = `CREATE INDEX IF NOT EXISTS idx_form_submissions_supplier_name ON form_submissions (supplier_name)`

	insertSubmissionQuery = `INSERT INTO form_submissions (supplier_name, product_info, product_url, category, quantity, timeline, location, required_for) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	listSubmissionsQuery = `SELECT id, supplier_name, product_info, product_url, category, quantity, timeline, location, required_for FROM form_submissions ORDER BY id`
)

func (s *SQL) isPostgres() bool {
	return s.conn.DriverName() == "postgres"
}

func (s *SQL) EnsureSchema(ctx context.Context) error {
	if !s.isPostgres() {
		_, err := s.conn.ExecContext(ctx, createTableMySQL)
		return err
	}
	if _, err := s.conn.ExecContext(ctx, createTablePostgres); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx, createIndexPostgres)
	return err
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SubmissionEntity) (uint64, error) {
	defer metrics.TrackDBOperation("submission_insert")(time.Now())

	args := []any{data.SupplierName, data.ProductInfo, data.ProductURL, data.Category, data.Quantity, data.Timeline, data.Location, data.RequiredFor}

	// lib/pq has no LastInsertId
	if s.isPostgres() {
		var id uint64
		if err := tx.QueryRowxContext(ctx, tx.Rebind(insertSubmissionQuery+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := tx.ExecContext(ctx, insertSubmissionQuery, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) List(ctx context.Context) ([]model.SubmissionEntity, error) {
	defer metrics.TrackDBOperation("submission_list")(time.Now())

	rows, err := s.conn.QueryxContext(ctx, listSubmissionsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SubmissionEntity, 0)
	for rows.Next() {
		var it model.SubmissionEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
