package auth

import (
	"errors"
	"strings"

	autherrors "github.com/JuanDavidBarr/TalentoPlus/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRegistrationError collapses a racing duplicate insert into the same
// conflict the pre-check reports. Either unique index counts: the
// registration contract does not say which field collided.
func mapRegistrationError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrAlreadyRegistered
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return autherrors.ErrAlreadyRegistered
	}

	return err
}
