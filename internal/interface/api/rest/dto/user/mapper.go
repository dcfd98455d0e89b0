package user

import (
	"record-manager-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:           int64(uDomain.ID),
		Username:     uDomain.Username,
		DateModified: uDomain.DateModified,
		DateCreated:  uDomain.DateCreated,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}
