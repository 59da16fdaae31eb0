package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE trainer_records (id INTEGER PRIMARY KEY, name TEXT NOT NULL, payload TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "trainer_records")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "text", colMap["name"].Type)
	assert.Equal(t, "NO", colMap["name"].Null)
	assert.Equal(t, "YES", colMap["payload"].Null)

	// PRAGMA table_info returns no rows for a table that does not exist.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE trainer_records (id INTEGER PRIMARY KEY, NAME TEXT, payload TEXT)").Error)

	missing, err := MissingColumns(db, "trainer_records", []string{"name", "position", "payload"})
	require.NoError(t, err)
	assert.Equal(t, []string{"position"}, missing)

	missing, err = MissingColumns(db, "absent", []string{"name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, missing)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "INT(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("Name", "VARCHAR(128)", "NO", "UNI", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `trainer_records`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "trainer_records")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "int(11)", columns[0].Type)
	assert.Equal(t, "name", columns[1].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}
