package repositories

import "fmt"

// MaxNameLength bounds ScoreRecord.Name.
const MaxNameLength = 32

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

// ValidateScoreRecord checks a record before it is stored.
func ValidateScoreRecord(record *ScoreRecord) error {
	if record == nil {
		return fmt.Errorf("record is nil")
	}
	if record.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(record.Name) > MaxNameLength {
		return fmt.Errorf("name is longer than %d characters", MaxNameLength)
	}
	if record.Score < 0 || record.Level < 0 || record.Lines < 0 {
		return fmt.Errorf("score, level and lines must not be negative")
	}
	return nil
}
