package repository

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ribnuu/PERN-Task1-sub000/internal/domain"
)

// constraintFields maps store constraints to the payload field they guard.
var constraintFields = map[string]string{
	"persons_nic_key":                      "personal.nic",
	"bank_accounts_person_id_key":          "bank",
	"family_members_relation_check":        "family.relation",
	"family_members_custom_relation_check": "family.customRelation",
	"family_members_age_check":             "family.age",
	"body_marks_type_check":                "bodyMarks.type",
	"body_marks_picture_size_check":        "bodyMarks.picture",
	"used_devices_device_type_check":       "usedDevices.deviceType",
	"used_devices_imei_check":              "usedDevices.imei",
	"call_history_call_type_check":         "callHistory.callType",
}

// classify maps store failures onto the domain taxonomy. Errors it does not
// recognise are returned unchanged and end up as internal errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
		case "23514":
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, domain.NewValidationError(fieldFor(pgErr), "invalid value"))
		case "23502":
			return domain.NewValidationError(fieldFor(pgErr), "required")
		case "22001":
			return domain.NewValidationError(fieldFor(pgErr), "value too long")
		case "22003":
			return domain.NewValidationError(fieldFor(pgErr), "numeric value out of range")
		case "57P01", "57P02", "57P03", "53300", "42P01":
			// 42P01: the schema is not migrated yet.
			return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		if strings.HasPrefix(pgErr.Code, "08") {
			return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		return err
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}

func fieldFor(pgErr *pgconn.PgError) string {
	if f, ok := constraintFields[pgErr.ConstraintName]; ok {
		return f
	}
	if pgErr.ColumnName != "" {
		return pgErr.TableName + "." + pgErr.ColumnName
	}
	return "payload"
}

// likePattern turns free text into an ILIKE substring pattern.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}
