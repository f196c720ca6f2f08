package authRepository

const (
	queryGetUserByID = `
		SELECT
			id,
			name,
			email,
			photo_url,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			name,
			email,
			photo_url,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpsertUser = `
		INSERT INTO users (
			id,
			name,
			email,
			photo_url,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:email,
			:photo_url,
			:created_at,
			:updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			photo_url = EXCLUDED.photo_url,
			updated_at = EXCLUDED.updated_at
	`
)
