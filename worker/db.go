package worker

import (
	"fmt"
	"os"

	"github.com/jlee37/github-action-appetize/vars"
	"github.com/kofj/gorm-driver-d1/gormd1"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Enabled reports whether the optional D1 upload ledger is configured.
func Enabled() bool {
	return os.Getenv("D1_ACCOUNT_ID") != "" &&
		os.Getenv("D1_API_TOKEN") != "" &&
		os.Getenv("D1_DATABASE_ID") != ""
}

// open connects lazily so invocations without ledger credentials never
// touch D1.
func open() (*gorm.DB, error) {
	if db != nil {
		return db, nil
	}

	vars.D1_ACCOUNT_ID = os.Getenv("D1_ACCOUNT_ID")
	vars.D1_API_TOKEN = os.Getenv("D1_API_TOKEN")
	vars.D1_DATABASE_ID = os.Getenv("D1_DATABASE_ID")

	d1Dialect := gormd1.Open(fmt.Sprintf("d1://%s:%s@%s", vars.D1_ACCOUNT_ID, vars.D1_API_TOKEN, vars.D1_DATABASE_ID))
	conn, err := gorm.Open(d1Dialect, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("connecting to ledger database: %w", err)
	}

	if migErr := conn.AutoMigrate(&Upload{}); migErr != nil {
		return nil, fmt.Errorf("migrating ledger schema: %w", migErr)
	}

	db = conn
	return db, nil
}
