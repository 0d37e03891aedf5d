package impl

import (
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
)

// field pairs a request field name with whether the caller supplied it.
type field struct {
	name    string
	present bool
}

// requireFields returns ErrValidationFailed naming every absent field, or nil.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// parseStatus accepts active or inactive, and def when raw is empty.
func parseStatus(raw string, def entity.Status) (entity.Status, error) {
	if raw == "" {
		return def, nil
	}
	status := entity.Status(raw)
	if !status.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("Status must be either 'active' or 'inactive'")
	}

	return status, nil
}

// userNotFound maps the repository sentinel onto the API error and leaves other errors alone.
func userNotFound(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return err
}
