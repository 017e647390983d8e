package sqlite

import "strings"

// SQLite reports constraint violations as generic driver errors; the only
// reliable discriminator across driver versions is the message text.

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
