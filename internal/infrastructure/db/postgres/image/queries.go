package image

const (
	SelectFilenamesByUser = `
		SELECT filename
		FROM user_images
		WHERE user_id = $1
		ORDER BY id
	`
	InsertUserImage = `
		INSERT INTO user_images (user_id, mimetype, filename, size)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, mimetype, filename, size, date_modified, date_created
	`
	DeleteUserImagesByUser = `DELETE FROM user_images WHERE user_id = $1`
)
