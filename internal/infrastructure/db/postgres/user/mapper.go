package user

import (
	domain "record-manager-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:       domain.ID(model.ID),
		Username: model.Username,

		DateCreated:  model.DateCreated,
		DateModified: model.DateModified,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
