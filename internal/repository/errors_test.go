package repository

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribnuu/PERN-Task1-sub000/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		field  string
	}{
		{name: "nil", err: nil},
		{name: "unique_nic", err: &pgconn.PgError{Code: "23505", ConstraintName: "persons_nic_key"}, target: domain.ErrConflict},
		{name: "age_check", err: &pgconn.PgError{Code: "23514", ConstraintName: "family_members_age_check"}, target: domain.ErrValidation, field: "family.age"},
		{name: "not_null", err: &pgconn.PgError{Code: "23502", TableName: "persons", ColumnName: "nic"}, target: domain.ErrValidation, field: "persons.nic"},
		{name: "too_long", err: &pgconn.PgError{Code: "22001"}, target: domain.ErrValidation, field: "payload"},
		{name: "admin_shutdown", err: &pgconn.PgError{Code: "57P01"}, target: domain.ErrStoreUnavailable},
		{name: "schema_missing", err: &pgconn.PgError{Code: "42P01"}, target: domain.ErrStoreUnavailable},
		{name: "connection_exception", err: &pgconn.PgError{Code: "08006"}, target: domain.ErrStoreUnavailable},
		{name: "dial", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, target: domain.ErrStoreUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			if tc.err == nil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			assert.ErrorIs(t, got, tc.target)
			if tc.field != "" {
				var ve *domain.ValidationError
				require.ErrorAs(t, got, &ve)
				assert.Contains(t, ve.Fields, tc.field)
			}
		})
	}
}

func TestClassify_CheckHidesConstraint(t *testing.T) {
	got := classify(&pgconn.PgError{Code: "23514", ConstraintName: "used_devices_imei_check"})

	var ve *domain.ValidationError
	require.ErrorAs(t, got, &ve)
	assert.Equal(t, map[string]string{"usedDevices.imei": "invalid value"}, ve.Fields)
	assert.Contains(t, got.Error(), "used_devices_imei_check")
}

func TestClassify_UnknownPassesThrough(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42703"}
	assert.Equal(t, error(pgErr), classify(pgErr))
	assert.Equal(t, context.Canceled, classify(context.Canceled))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%jo%", likePattern("jo"))
	assert.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
}
