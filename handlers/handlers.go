package handlers

import (
	"database/sql"

	"github.com/gin-gonic/gin"
)

// getDB pulls the request-scoped database handle set by main
func getDB(c *gin.Context) *sql.DB {
	return c.MustGet("db").(*sql.DB)
}

// userRole returns the role of the given user, or sql.ErrNoRows if the
// user does not exist
func userRole(db *sql.DB, userID int) (string, error) {
	var role string
	err := db.QueryRow("SELECT role FROM users WHERE userid = ?", userID).Scan(&role)
	return role, err
}

// courseLecturer returns the lecturer assigned to a course, or
// sql.ErrNoRows if the course does not exist
func courseLecturer(db *sql.DB, courseID int) (sql.NullInt64, error) {
	var lecturerID sql.NullInt64
	err := db.QueryRow("SELECT lecturer_id FROM courses WHERE course_id = ?", courseID).Scan(&lecturerID)
	return lecturerID, err
}

// courseExists reports whether a course with the given id exists
func courseExists(db *sql.DB, courseID int) (bool, error) {
	var exists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM courses WHERE course_id = ?)", courseID).Scan(&exists)
	return exists, err
}
