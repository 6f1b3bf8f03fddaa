package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"unihub/models"
)

// CreateSectionHandler adds a content section to a course; course lecturer only
func CreateSectionHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var req models.CreateSectionRequest
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
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the course lecturer can add sections"})
		return
	}

	result, err := database.Exec(
		"INSERT INTO sections (course_id, title) VALUES (?, ?)",
		courseID, req.SectionTitle,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting section: %v", err)
		return
	}

	sectionID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, models.Section{
		SectionID: int(sectionID),
		CourseID:  courseID,
		Title:     req.SectionTitle,
	})
}

// GetSectionsHandler lists the sections of a course
func GetSectionsHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	database := getDB(c)
	rows, err := database.Query(
		"SELECT section_id, course_id, title FROM sections WHERE course_id = ?", courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying sections: %v", err)
		return
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(&section.SectionID, &section.CourseID, &section.Title); err != nil {
			log.Printf("Error scanning section: %v", err)
			continue
		}
		sections = append(sections, section)
	}

	c.JSON(http.StatusOK, sections)
}

// AddContentHandler adds a content item to a course section; course lecturer only
func AddContentHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var req models.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if !models.ValidContentType(req.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content_type must be link, file or slide"})
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
	if !lecturerID.Valid || int(lecturerID.Int64) != req.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the course lecturer can add content"})
		return
	}

	// The section must already exist within this course
	var exists bool
	err = database.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM sections WHERE section_id = ? AND course_id = ?
		)`, req.SectionID, courseID).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying section: %v", err)
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Section does not exist"})
		return
	}

	result, err := database.Exec(
		"INSERT INTO course_contents (course_id, section_id, title, url, content_type) VALUES (?, ?, ?, ?, ?)",
		courseID, req.SectionID, req.ContentTitle, req.ContentURL, req.ContentType,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting content: %v", err)
		return
	}

	contentID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, models.CourseContent{
		ContentID:   int(contentID),
		CourseID:    courseID,
		SectionID:   req.SectionID,
		Title:       req.ContentTitle,
		URL:         req.ContentURL,
		ContentType: req.ContentType,
	})
}

// GetContentHandler lists all content of a course; an empty course yields
// an empty list, not an error
func GetContentHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	database := getDB(c)
	rows, err := database.Query(`
		SELECT content_id, course_id, section_id, title, url, content_type
		FROM course_contents
		WHERE course_id = ?`, courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying content: %v", err)
		return
	}
	defer rows.Close()

	contents := []models.CourseContent{}
	for rows.Next() {
		var content models.CourseContent
		if err := rows.Scan(&content.ContentID, &content.CourseID, &content.SectionID, &content.Title, &content.URL, &content.ContentType); err != nil {
			log.Printf("Error scanning content: %v", err)
			continue
		}
		contents = append(contents, content)
	}

	c.JSON(http.StatusOK, contents)
}
