package utils

import (
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
	mu   sync.RWMutex
)

// OpenDB connects to MySQL with the given DSN. Schema management and
// pooling belong to the calling application; this package only hands out
// the connection the services need.
func OpenDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// InitDB stores the shared database handle
func InitDB(database *gorm.DB) {
	once.Do(func() {
		db = database
	})
}

// GetDB returns the shared database handle
func GetDB() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return db
}
