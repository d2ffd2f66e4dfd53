package services

import (
	stderrors "errors"
	"time"

	"jims/constants"
	"jims/errors"
	"jims/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lateCheckInHour marks check-ins at or after this hour as Late
const lateCheckInHour = 9

// DateOnly truncates t to its calendar date in t's location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckInStatus buckets a check-in time as Present or Late
func CheckInStatus(t time.Time) string {
	if t.Hour() >= lateCheckInHour {
		return constants.AttendanceStatusLate
	}
	return constants.AttendanceStatusPresent
}

// CheckIn records today's attendance for an employee. Password check
// and the one-per-day rule run inside a single transaction holding a
// lock on the employee row, so concurrent check-ins cannot both pass
// the existence check.
func CheckIn(db *gorm.DB, employeeID uint, password string, now time.Time) (models.AttendanceRecord, error) {
	var record models.AttendanceRecord

	err := db.Transaction(func(tx *gorm.DB) error {
		var employee models.Employee
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&employee, employeeID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrEmployeeNotFound
			}
			return err
		}

		if !CheckPassword(employee.Password, password) {
			return errors.ErrInvalidPassword
		}

		today := DateOnly(now)
		var existing models.AttendanceRecord
		err := tx.Where("employee_id = ? AND date = ?", employeeID, today).
			First(&existing).Error
		if err == nil {
			return errors.ErrAlreadyCheckedIn
		}
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record = models.AttendanceRecord{
			EmployeeID: employeeID,
			Date:       today,
			TimeIn:     now,
			Status:     CheckInStatus(now),
		}
		return tx.Create(&record).Error
	})

	return record, err
}

// CheckOut stamps timeOut on today's attendance record
func CheckOut(db *gorm.DB, employeeID uint, now time.Time) (models.AttendanceRecord, error) {
	var record models.AttendanceRecord

	err := db.Transaction(func(tx *gorm.DB) error {
		today := DateOnly(now)
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("employee_id = ? AND date = ?", employeeID, today).
			First(&record).Error
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrNoCheckInToday
		}
		if err != nil {
			return err
		}

		if record.TimeOut != nil {
			return errors.ErrAlreadyCheckedOut
		}

		record.TimeOut = &now
		return tx.Save(&record).Error
	})

	return record, err
}
