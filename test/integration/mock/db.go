package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database migrated from gorm models.
type Db struct {
	DbConn *gorm.DB
	models []any
	tables map[string]any
}

// NewDb opens the shared database once. Models are migrated in the given order
// and cleared in reverse, so parents must come before their children.
func NewDb(models ...any) *Db {
	once.Do(func() {
		db = open(models)
	})

	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
		tables: make(map[string]any, len(models)),
	}

	for _, model := range models {
		tableName, err := newDbMock.tableName(model)
		if err != nil {
			panic(err)
		}
		newDbMock.tables[tableName] = model
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB removes every row, children first.
func (d *Db) ClearDB() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for i := len(d.models) - 1; i >= 0; i-- {
			err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Unscoped().
				Delete(d.models[i]).Error
			if err != nil {
				return fmt.Errorf("failed to clear %T: %w", d.models[i], err)
			}
		}
		return nil
	})
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.tables[table]
	return model, ok
}

func (d *Db) tableName(model any) (string, error) {
	stmt := &gorm.Statement{DB: d.DbConn}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}
