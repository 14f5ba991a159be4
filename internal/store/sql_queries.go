package store

const (
	createUser = `INSERT INTO users (user_id, email, password_hash, password_salt, role, name, phone, address, addresses, image)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING user_id, email, password_hash, password_salt, role, name, phone, address, addresses, image, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, password_salt, role, name, phone, address, addresses, image, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, password_salt, role, name, phone, address, addresses, image, created_at
    FROM users
    WHERE user_id = $1;`

	// hash and salt always travel together in one statement so a reset can
	// never leave the record half-updated
	updateCredentials = `UPDATE users
    SET password_hash = $2, password_salt = $3
    WHERE user_id = $1;`
)
