package repository_test_test

import (
	"testing"

	"task_management_ms/domain"
	"task_management_ms/repository"
	"task_management_ms/repository/repository_test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFindPasskeyByCredentialID_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	credID := []byte{0xaa, 0xbb, 0xcc}
	rows := sqlmock.NewRows([]string{"id", "credential_id", "data", "username", "sign_count"}).
		AddRow(1, credID, []byte(`{}`), "alice", 7)

	// The credential id is passed as $1, and LIMIT is $2
	mock.ExpectQuery(`SELECT \* FROM "user_passkeys" WHERE credential_id = \$1 ORDER BY "user_passkeys"\."id" LIMIT \$2`).
		WithArgs(credID, 1).
		WillReturnRows(rows)

	repo := repository.NewPasskeyRepository()
	passkey, err := repo.FindByCredentialID(conn, credID)

	assert.NoError(t, err)
	assert.NotNil(t, passkey)
	assert.Equal(t, "alice", passkey.Username)
	assert.Equal(t, uint32(7), passkey.SignCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPasskeyByCredentialID_Unknown_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "user_passkeys" WHERE credential_id = \$1 ORDER BY "user_passkeys"\."id" LIMIT \$2`).
		WithArgs([]byte{0x00}, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := repository.NewPasskeyRepository()
	passkey, err := repo.FindByCredentialID(conn, []byte{0x00})

	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
	assert.Nil(t, passkey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPasskeysByUsername_NoRows_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "user_passkeys" WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := repository.NewPasskeyRepository()
	passkeys, err := repo.FindByUsername(conn, "nobody")

	assert.NoError(t, err)
	assert.NotNil(t, passkeys)
	assert.Empty(t, passkeys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCredential_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	credID := []byte{0xaa, 0xbb}
	data := []byte(`{"sign_count":8}`)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "user_passkeys" SET`).
		WithArgs(data, 8, sqlmock.AnyArg(), credID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := repository.NewPasskeyRepository()
	err := repo.UpdateCredential(conn, credID, data, 8)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
