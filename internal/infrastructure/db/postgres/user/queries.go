package user

const (
	SelectUsers = `
		SELECT id, username, date_modified, date_created
		FROM users
		ORDER BY id
	`
	SelectUserByID = `
		SELECT id, username, date_modified, date_created
		FROM users
		WHERE id = $1
	`
	InsertUser = `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING id, username, date_modified, date_created
	`
	UpdateUserByID = `
		UPDATE users
		SET username = $1,
		    date_modified = now()
		WHERE id = $2
		RETURNING id, username, date_modified, date_created
	`
	DeleteUserByID = `DELETE FROM users WHERE id = $1`
)
