package validator

import (
	"errors"
	"strconv"
	"strings"

	"record-manager-api/internal/domain/user"
	dto "record-manager-api/internal/interface/api/rest/dto/user"
)

// ValidateID parses a path or form user id. Ids are store-assigned positive
// integers.
func ValidateID(s string) (user.ID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}

	return user.ID(id), nil
}

// ValidateUser checks the create/update payload. The error text is part of
// the published contract.
func ValidateUser(r dto.Request) error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("Username is missing")
	}

	return nil
}
