package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"unihub/db"
	"unihub/models"
)

// CreateAssignmentHandler creates an assignment for a course; course lecturer only
func CreateAssignmentHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var req models.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

	lecturerID, err := courseLecturer(database, courseID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying course: %v", err)
		return
	}
	if !lecturerID.Valid || int(lecturerID.Int64) != req.LecturerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the course lecturer can create assignments"})
		return
	}

	result, err := database.Exec(
		"INSERT INTO assignments (course_id, title, description, due_date) VALUES (?, ?, ?, ?)",
		courseID, req.Title, req.Description, req.DueDate,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting assignment: %v", err)
		return
	}

	assignID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Assignment created",
		"assign_id": assignID,
	})
}

// GetAssignmentsHandler lists the assignments of a course
func GetAssignmentsHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	database := getDB(c)
	rows, err := database.Query(`
		SELECT assign_id, course_id, title, description, due_date
		FROM assignments
		WHERE course_id = ?`, courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying assignments: %v", err)
		return
	}
	defer rows.Close()

	assignments := []models.Assignment{}
	for rows.Next() {
		var assignment models.Assignment
		var description, dueDate sql.NullString
		if err := rows.Scan(&assignment.AssignID, &assignment.CourseID, &assignment.Title, &description, &dueDate); err != nil {
			log.Printf("Error scanning assignment: %v", err)
			continue
		}
		assignment.Description = description.String
		assignment.DueDate = dueDate.String
		assignments = append(assignments, assignment)
	}

	c.JSON(http.StatusOK, assignments)
}

// SubmitAssignmentHandler records a student's submission; the student must
// be registered for the assignment's course and may submit only once
func SubmitAssignmentHandler(c *gin.Context) {
	assignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

	var courseID int
	err = database.QueryRow(
		"SELECT course_id FROM assignments WHERE assign_id = ?", assignID).Scan(&courseID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying assignment: %v", err)
		return
	}

	var enrolled bool
	err = database.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM course_registrations
			WHERE stud_id = ? AND course_id = ?
		)`, req.StudentID, courseID).Scan(&enrolled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error checking registration: %v", err)
		return
	}
	if !enrolled {
		c.JSON(http.StatusForbidden, gin.H{"error": "Student is not registered for this course"})
		return
	}

	// Fast path; the composite primary key settles concurrent duplicates
	var submitted bool
	err = database.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM submissions WHERE assign_id = ? AND stud_id = ?
		)`, assignID, req.StudentID).Scan(&submitted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error checking submission: %v", err)
		return
	}
	if submitted {
		c.JSON(http.StatusConflict, gin.H{"error": "Assignment already submitted"})
		return
	}

	_, err = database.Exec(
		"INSERT INTO submissions (assign_id, stud_id, url, submitted_at) VALUES (?, ?, ?, ?)",
		assignID, req.StudentID, req.SubmissionURL, time.Now(),
	)
	if err != nil {
		if db.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Assignment already submitted"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting submission: %v", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment submitted"})
}

// GradeSubmissionHandler sets a submission's grade exactly once; only the
// lecturer of the assignment's course may grade
func GradeSubmissionHandler(c *gin.Context) {
	assignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var req models.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

	var courseID int
	err = database.QueryRow(
		"SELECT course_id FROM assignments WHERE assign_id = ?", assignID).Scan(&courseID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying assignment: %v", err)
		return
	}

	lecturerID, err := courseLecturer(database, courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying course: %v", err)
		return
	}
	if !lecturerID.Valid || int(lecturerID.Int64) != req.LecturerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the course lecturer can grade submissions"})
		return
	}

	var grade sql.NullFloat64
	err = database.QueryRow(
		"SELECT grade FROM submissions WHERE assign_id = ? AND stud_id = ?",
		assignID, req.StudentID,
	).Scan(&grade)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying submission: %v", err)
		return
	}
	if grade.Valid {
		c.JSON(http.StatusConflict, gin.H{"error": "Submission already graded"})
		return
	}

	// The IS NULL guard keeps the first grade when requests race
	result, err := database.Exec(
		"UPDATE submissions SET grade = ? WHERE assign_id = ? AND stud_id = ? AND grade IS NULL",
		*req.Grade, assignID, req.StudentID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error updating grade: %v", err)
		return
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Submission already graded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission graded"})
}
