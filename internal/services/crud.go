package services

import (
	"errors"

	"gorm.io/gorm"
)

// replaceByID overwrites every column of the row with the given id using the
// values in row. Zero values and nil pointers are written too, so an omitted
// field is cleared rather than preserved. Returns the number of rows matched.
func replaceByID(db *gorm.DB, row interface{}, id uint) (int64, error) {
	result := db.Model(row).Where("id = ?", id).Select("*").Omit("id").Updates(row)
	return result.RowsAffected, result.Error
}

// deleteByID hard-deletes the row. A missing id yields 0, not an error.
func deleteByID(db *gorm.DB, model interface{}, id uint) (int64, error) {
	result := db.Delete(model, id)
	return result.RowsAffected, result.Error
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
