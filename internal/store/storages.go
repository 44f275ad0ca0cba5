package store

import (
	"github.com/MKhiriev/go-asset-guard/internal/logger"
)

type Storages struct {
	UserRepository         UserRepository
	LoginHistoryRepository LoginHistoryRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		LoginHistoryRepository: NewLoginHistoryRepository(db, log),
	}
}
