package worker

import "gorm.io/gorm/clause"

// RecordUpload appends one entry to the upload ledger.
func RecordUpload(u Upload) error {
	conn, err := open()
	if err != nil {
		return err
	}

	return conn.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&u).Error
}
