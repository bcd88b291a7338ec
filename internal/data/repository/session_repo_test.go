package repository

import (
	"context"
	"testing"
	"time"

	"ophelia-market/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionRepository_FindValidSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewSessionRepository(mock, zap.NewNop())

	token := uuid.New()
	userID := uuid.New()
	expires := time.Now().Add(time.Hour).UTC()
	var none *string
	var notRevoked *time.Time

	mock.ExpectQuery("FROM sessions").
		WithArgs(token.String()).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "token", "role", "user_agent", "ip_address",
			"expires_at", "revoked_at", "created_at",
		}).AddRow(uuid.New(), userID, token, entity.RoleSeller, none, none, expires, notRevoked, time.Now().UTC()))

	session, err := repo.FindValidSession(context.Background(), token.String())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, entity.RoleSeller, session.Role)
}

func TestSessionRepository_FindValidSession_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewSessionRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM sessions").WillReturnError(pgx.ErrNoRows)

	session, err := repo.FindValidSession(context.Background(), "gone")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepository_UpdateRoleAndRevoke(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewSessionRepository(mock, zap.NewNop())

	mock.ExpectExec("UPDATE sessions").
		WithArgs("tok", entity.RoleBuyer).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE sessions").
		WithArgs("tok").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE sessions").
		WithArgs("tok").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ctx := context.Background()
	assert.NoError(t, repo.UpdateRole(ctx, "tok", entity.RoleBuyer))
	assert.NoError(t, repo.Revoke(ctx, "tok"))
	assert.ErrorIs(t, repo.Revoke(ctx, "tok"), ErrNoRowsAffected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
