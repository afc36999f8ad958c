package dbhelper

import (
	"github.com/google/uuid"

	"github.com/ray-remotestate/qrcafe/database"
	"github.com/ray-remotestate/qrcafe/models"
)

func CreateUser(name, email, hashedPassword string, role models.Role) (models.User, error) {
	user := models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	err := database.QRCafe.QueryRow(`
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		name, email, hashedPassword, role).
		Scan(&user.ID, &user.CreatedAt)
	return user, err
}

func IsUserExists(email string) (bool, error) {
	var count int
	err := database.QRCafe.QueryRow(`
		SELECT COUNT(*) FROM users
		WHERE LOWER(email) = LOWER($1) AND archived_at IS NULL`, email).
		Scan(&count)
	return count > 0, err
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := database.QRCafe.QueryRow(`
		SELECT id, name, email, password, role, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1) AND archived_at IS NULL`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	return user, err
}

func GetUserByID(id uuid.UUID) (models.User, error) {
	var user models.User
	err := database.QRCafe.QueryRow(`
		SELECT id, name, email, password, role, created_at
		FROM users
		WHERE id = $1 AND archived_at IS NULL`, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	return user, err
}
