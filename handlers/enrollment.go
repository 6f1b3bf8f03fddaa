package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"unihub/db"
	"unihub/models"
)

// EnrollStudentHandler registers a student for a course
func EnrollStudentHandler(c *gin.Context) {
	var req models.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

	role, err := userRole(database, req.StudID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying student: %v", err)
		return
	}
	if role != models.RoleStudent {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only students can register for courses"})
		return
	}

	exists, err := courseExists(database, req.CourseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying course: %v", err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	// Fast path; the composite primary key settles concurrent duplicates
	var enrolled bool
	err = database.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM course_registrations
			WHERE stud_id = ? AND course_id = ?
		)`, req.StudID, req.CourseID).Scan(&enrolled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error checking registration: %v", err)
		return
	}
	if enrolled {
		c.JSON(http.StatusConflict, gin.H{"error": "Student already registered for this course"})
		return
	}

	_, err = database.Exec(
		"INSERT INTO course_registrations (stud_id, course_id) VALUES (?, ?)",
		req.StudID, req.CourseID,
	)
	if err != nil {
		if db.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Student already registered for this course"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting registration: %v", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Student registered for course"})
}

// AssignLecturerHandler assigns a lecturer to a course
func AssignLecturerHandler(c *gin.Context) {
	var req models.AssignLecturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

	role, err := userRole(database, req.LecturerID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lecturer not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying lecturer: %v", err)
		return
	}
	if role != models.RoleLecturer {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only lecturers can be assigned to courses"})
		return
	}

	lecturerID, err := courseLecturer(database, req.CourseID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying course: %v", err)
		return
	}
	if lecturerID.Valid && int(lecturerID.Int64) == req.LecturerID {
		c.JSON(http.StatusConflict, gin.H{"error": "Lecturer already assigned to this course"})
		return
	}

	_, err = database.Exec(
		"UPDATE courses SET lecturer_id = ? WHERE course_id = ?",
		req.LecturerID, req.CourseID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error assigning lecturer: %v", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lecturer registered for course"})
}

// GetCourseMembersHandler returns the assigned lecturer and the registered
// students of a course. The lecturer slot is null when unassigned or when
// the assigned user no longer holds the lecturer role.
func GetCourseMembersHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
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

	var lecturer *models.CourseMember
	if lecturerID.Valid {
		var member models.CourseMember
		err := database.QueryRow(
			"SELECT userid, name FROM users WHERE userid = ? AND role = ?",
			lecturerID.Int64, models.RoleLecturer,
		).Scan(&member.UserID, &member.Name)
		if err == nil {
			lecturer = &member
		} else if err != sql.ErrNoRows {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			log.Printf("Error querying lecturer: %v", err)
			return
		}
	}

	rows, err := database.Query(`
		SELECT u.userid, u.name
		FROM users u
		JOIN course_registrations r ON u.userid = r.stud_id
		WHERE r.course_id = ?`, courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying students: %v", err)
		return
	}
	defer rows.Close()

	students := []models.CourseMember{}
	for rows.Next() {
		var member models.CourseMember
		if err := rows.Scan(&member.UserID, &member.Name); err != nil {
			log.Printf("Error scanning student: %v", err)
			continue
		}
		students = append(students, member)
	}

	c.JSON(http.StatusOK, gin.H{
		"lecturer": lecturer,
		"students": students,
	})
}
