package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/JuanDavidBarr/TalentoPlus/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError turns store-level failures into the error taxonomy.
// The unique indexes are the real guard against racing writers: a 23505
// here produces the same Conflict the pre-checks produce.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employee_document_number":
				return employeeerrors.ErrDocumentNumberTaken
			case "uq_employee_email":
				return employeeerrors.ErrEmailTaken
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_document_number") {
		return employeeerrors.ErrDocumentNumberTaken
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email") {
		return employeeerrors.ErrEmailTaken
	}

	return err
}
