package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPopularCoursesHandler returns the ten courses with the most
// registered students
func GetPopularCoursesHandler(c *gin.Context) {
	database := getDB(c)
	rows, err := database.Query(`
		SELECT c.course_name, COUNT(r.stud_id) AS num_students
		FROM courses c
		JOIN course_registrations r ON c.course_id = r.course_id
		GROUP BY c.course_id, c.course_name
		ORDER BY num_students DESC
		LIMIT 10`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying popular courses: %v", err)
		return
	}
	defer rows.Close()

	report := []gin.H{}
	for rows.Next() {
		var name string
		var students int
		if err := rows.Scan(&name, &students); err != nil {
			log.Printf("Error scanning course count: %v", err)
			continue
		}
		report = append(report, gin.H{"course": name, "students": students})
	}

	c.JSON(http.StatusOK, report)
}
