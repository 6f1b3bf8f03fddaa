package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"unihub/models"
)

// CreateCourseHandler creates a course; admin only
func CreateCourseHandler(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

	role, err := userRole(database, req.UserID)
	if err != nil && err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying requester: %v", err)
		return
	}
	if err == sql.ErrNoRows || role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can create courses"})
		return
	}

	// A supplied lecturer must actually hold the lecturer role
	if req.LecturerID != nil {
		lectRole, err := userRole(database, *req.LecturerID)
		if err == sql.ErrNoRows || (err == nil && lectRole != models.RoleLecturer) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lecturer_id does not reference a lecturer"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			log.Printf("Error querying lecturer: %v", err)
			return
		}
	}

	result, err := database.Exec(
		"INSERT INTO courses (course_name, lecturer_id) VALUES (?, ?)",
		req.CourseName, req.LecturerID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting course: %v", err)
		return
	}

	courseID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Course created",
		"course_id": courseID,
	})
}

// GetCoursesHandler lists all courses
func GetCoursesHandler(c *gin.Context) {
	database := getDB(c)
	rows, err := database.Query("SELECT course_id, course_name FROM courses")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying courses: %v", err)
		return
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.CourseID, &course.CourseName); err != nil {
			log.Printf("Error scanning course: %v", err)
			continue
		}
		courses = append(courses, course)
	}

	c.JSON(http.StatusOK, courses)
}

// GetStudentCoursesHandler lists the courses a student is registered for
func GetStudentCoursesHandler(c *gin.Context) {
	studID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	database := getDB(c)

	role, err := userRole(database, studID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying student: %v", err)
		return
	}
	if role != models.RoleStudent {
		c.JSON(http.StatusForbidden, gin.H{"error": "User is not a student"})
		return
	}

	rows, err := database.Query(`
		SELECT c.course_id, c.course_name
		FROM courses c
		JOIN course_registrations r ON c.course_id = r.course_id
		WHERE r.stud_id = ?`, studID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying student courses: %v", err)
		return
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.CourseID, &course.CourseName); err != nil {
			log.Printf("Error scanning course: %v", err)
			continue
		}
		courses = append(courses, course)
	}

	c.JSON(http.StatusOK, courses)
}

// GetLecturerCoursesHandler lists the courses assigned to a lecturer
func GetLecturerCoursesHandler(c *gin.Context) {
	lectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lecturer ID"})
		return
	}

	database := getDB(c)

	role, err := userRole(database, lectID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lecturer not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying lecturer: %v", err)
		return
	}
	if role != models.RoleLecturer {
		c.JSON(http.StatusForbidden, gin.H{"error": "User is not a lecturer"})
		return
	}

	rows, err := database.Query(
		"SELECT course_id, course_name FROM courses WHERE lecturer_id = ?", lectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying lecturer courses: %v", err)
		return
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.CourseID, &course.CourseName); err != nil {
			log.Printf("Error scanning course: %v", err)
			continue
		}
		courses = append(courses, course)
	}

	c.JSON(http.StatusOK, courses)
}
