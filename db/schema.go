package db

import (
	"database/sql"
	"fmt"
)

// autoIncPK returns the auto-increment primary key clause for the driver.
func autoIncPK(driver string) string {
	if driver == "sqlite3" {
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return "INT AUTO_INCREMENT PRIMARY KEY"
}

// schemaStatements returns the DDL for the given driver. The composite
// primary keys on course_registrations and submissions, and the unique
// index on users.name, are the source of truth for duplicate detection;
// handler pre-checks are a fast path only.
func schemaStatements(driver string) []string {
	pk := autoIncPK(driver)
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			userid %s,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100),
			password VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL,
			UNIQUE (name)
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS courses (
			course_id %s,
			course_name VARCHAR(255) NOT NULL,
			lecturer_id INT
		)`, pk),
		`CREATE TABLE IF NOT EXISTS course_registrations (
			stud_id INT NOT NULL,
			course_id INT NOT NULL,
			PRIMARY KEY (stud_id, course_id)
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS calendar_events (
			event_id %s,
			course_id INT NOT NULL,
			title VARCHAR(100) NOT NULL,
			event_date VARCHAR(50) NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS forums (
			forum_id %s,
			course_id INT NOT NULL,
			title VARCHAR(100) NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS threads (
			thread_id %s,
			forum_id INT NOT NULL,
			title VARCHAR(255) NOT NULL,
			created_by INT NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS replies (
			reply_id %s,
			thread_id INT NOT NULL,
			user_id INT NOT NULL,
			reply_text TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS sections (
			section_id %s,
			course_id INT NOT NULL,
			title VARCHAR(100) NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS course_contents (
			content_id %s,
			course_id INT NOT NULL,
			section_id INT NOT NULL,
			title VARCHAR(255) NOT NULL,
			url VARCHAR(255) NOT NULL,
			content_type VARCHAR(20) NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS assignments (
			assign_id %s,
			course_id INT NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			due_date VARCHAR(50)
		)`, pk),
		`CREATE TABLE IF NOT EXISTS submissions (
			assign_id INT NOT NULL,
			stud_id INT NOT NULL,
			url VARCHAR(255) NOT NULL,
			grade DOUBLE,
			submitted_at DATETIME NOT NULL,
			PRIMARY KEY (assign_id, stud_id)
		)`,
	}
}

// Migrate creates any missing tables
func Migrate(database *sql.DB, driver string) error {
	for _, stmt := range schemaStatements(driver) {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement failed: %v", err)
		}
	}
	return nil
}
