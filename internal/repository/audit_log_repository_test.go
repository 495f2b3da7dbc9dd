package repository

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain"
	"payroll/pkg/logger"
)

func newTestAuditLogRepository() domain.AuditLogRepository {
	return NewAuditLogRepository(logger.New(logger.ErrorLevel, io.Discard))
}

func TestAuditLogCreateAssignsID(t *testing.T) {
	repo := newTestAuditLogRepository()

	first := &domain.AuditLog{EntityType: domain.EntityTypeEmployee, EntityID: 1, Action: domain.ActionTypeCreate}
	second := &domain.AuditLog{EntityType: domain.EntityTypeEmployee, EntityID: 1, Action: domain.ActionTypeUpdate}

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestAuditLogFindByEntityID(t *testing.T) {
	repo := newTestAuditLogRepository()

	require.NoError(t, repo.Create(&domain.AuditLog{EntityType: domain.EntityTypeEmployee, EntityID: 1, Action: domain.ActionTypeCreate}))
	require.NoError(t, repo.Create(&domain.AuditLog{EntityType: domain.EntityTypeEmployee, EntityID: 2, Action: domain.ActionTypeCreate}))
	require.NoError(t, repo.Create(&domain.AuditLog{EntityType: domain.EntityTypeEmployee, EntityID: 1, Action: domain.ActionTypeDelete}))

	logs, err := repo.FindByEntityID(domain.EntityTypeEmployee, 1)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// En yeni kayıt önce gelir.
	assert.Equal(t, domain.ActionTypeDelete, logs[0].Action)
	assert.Equal(t, domain.ActionTypeCreate, logs[1].Action)
}

func TestAuditLogFindAllPagination(t *testing.T) {
	repo := newTestAuditLogRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(&domain.AuditLog{EntityType: domain.EntityTypeEmployee, EntityID: int64(i + 1), Action: domain.ActionTypeCreate}))
	}

	page, err := repo.FindAll(2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(5), page[0].EntityID)
	assert.Equal(t, int64(4), page[1].EntityID)

	page, err = repo.FindAll(2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(1), page[0].EntityID)
}
