package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"unihub/models"
)

// CreateEventHandler creates a calendar event for a course
func CreateEventHandler(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

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

	_, err = database.Exec(
		"INSERT INTO calendar_events (course_id, title, event_date) VALUES (?, ?, ?)",
		req.CourseID, req.EventTitle, req.EventDate,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting event: %v", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Event created"})
}

// GetCourseEventsHandler lists all calendar events for a course
func GetCourseEventsHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	database := getDB(c)
	rows, err := database.Query(`
		SELECT event_id, course_id, title, event_date
		FROM calendar_events
		WHERE course_id = ?`, courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying events: %v", err)
		return
	}
	defer rows.Close()

	events := []models.CalendarEvent{}
	for rows.Next() {
		var event models.CalendarEvent
		if err := rows.Scan(&event.EventID, &event.CourseID, &event.Title, &event.Date); err != nil {
			log.Printf("Error scanning event: %v", err)
			continue
		}
		events = append(events, event)
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetStudentEventsHandler lists a student's events on an exact date,
// across all courses the student is registered for
func GetStudentEventsHandler(c *gin.Context) {
	studID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}
	date := c.Param("date")

	database := getDB(c)
	rows, err := database.Query(`
		SELECT e.event_id, e.course_id, e.title, e.event_date
		FROM calendar_events e
		JOIN course_registrations r ON e.course_id = r.course_id
		WHERE r.stud_id = ? AND e.event_date = ?`, studID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying student events: %v", err)
		return
	}
	defer rows.Close()

	events := []models.CalendarEvent{}
	for rows.Next() {
		var event models.CalendarEvent
		if err := rows.Scan(&event.EventID, &event.CourseID, &event.Title, &event.Date); err != nil {
			log.Printf("Error scanning event: %v", err)
			continue
		}
		events = append(events, event)
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
