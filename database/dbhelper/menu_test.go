package dbhelper

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuItemByID(t *testing.T) {
	mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery("FROM menu_items").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "category", "image", "is_available", "created_at",
		}).AddRow(id.String(), "Latte", "with oat milk", 4.5, "drinks", nil, true, time.Now()))

	item, err := GetMenuItemByID(id)
	require.NoError(t, err)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, 4.5, item.Price)
	assert.Nil(t, item.Image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMenuItemArchives(t *testing.T) {
	mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE menu_items").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, DeleteMenuItem(id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMenuItemNotFound(t *testing.T) {
	mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE menu_items").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := DeleteMenuItem(id)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
