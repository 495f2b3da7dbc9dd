package repository

import (
	"time"

	"payroll/internal/domain"
	"payroll/pkg/logger"
)

// AuditLogRepository denetim kayıtlarını bellekte tutar; veri kümesi gibi
// kayıtlar da süreçle birlikte yaşar ve ölür.
type AuditLogRepository struct {
	logs   []*domain.AuditLog
	nextID int64
	logger logger.Logger
}

func NewAuditLogRepository(logger logger.Logger) domain.AuditLogRepository {
	return &AuditLogRepository{
		logs:   make([]*domain.AuditLog, 0),
		logger: logger,
	}
}

func (r *AuditLogRepository) Create(log *domain.AuditLog) error {
	r.nextID++
	log.ID = r.nextID
	log.CreatedAt = time.Now()

	r.logs = append(r.logs, log)
	return nil
}

func (r *AuditLogRepository) FindByEntityID(entityType domain.EntityType, entityID int64) ([]*domain.AuditLog, error) {
	result := make([]*domain.AuditLog, 0)
	// En yeni kayıt önce gelir.
	for i := len(r.logs) - 1; i >= 0; i-- {
		log := r.logs[i]
		if log.EntityType == entityType && log.EntityID == entityID {
			result = append(result, log)
		}
	}
	return result, nil
}

func (r *AuditLogRepository) FindAll(limit, offset int) ([]*domain.AuditLog, error) {
	result := make([]*domain.AuditLog, 0, limit)
	for i := len(r.logs) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		result = append(result, r.logs[i])
	}
	return result, nil
}
