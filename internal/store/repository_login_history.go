// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/models"
)

type loginHistoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLoginHistoryRepository(db *DB, logger *logger.Logger) LoginHistoryRepository {
	logger.Debug().Msg("LoginHistoryRepository created")
	return &loginHistoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *loginHistoryRepository) RecordLogin(ctx context.Context, record models.LoginRecord) error {
	if record.LoggedAt.IsZero() {
		record.LoggedAt = time.Now()
	}

	query, args, err := insertLoginRecordQuery(r.db.Builder(), record).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.execRetry(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*loginHistoryRepository.RecordLogin").Msg("error recording login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *loginHistoryRepository) History(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginRecord, error) {
	query, args, err := selectLoginHistoryQuery(r.db.Builder(), filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*loginHistoryRepository.History").Msg("error querying login history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.LoginRecord
	for rows.Next() {
		var (
			record models.LoginRecord
			userID sql.NullInt64
		)
		err := rows.Scan(
			&record.ID,
			&userID,
			&record.SourceIP,
			&record.UserAgent,
			&record.Success,
			&record.FailureReason,
			&record.LoggedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		record.UserID = userID.Int64
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *loginHistoryRepository) Stats(ctx context.Context, since time.Time) (models.LoginStats, error) {
	query, args, err := selectLoginStatsQuery(r.db.Builder(), since).ToSql()
	if err != nil {
		return models.LoginStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.LoginStats
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&stats.TotalLogins,
		&stats.SuccessfulLogins,
		&stats.FailedLogins,
		&stats.UniqueUsers,
	)
	if err != nil {
		r.logger.Err(err).Str("func", "*loginHistoryRepository.Stats").Msg("error querying login stats")
		return models.LoginStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}
