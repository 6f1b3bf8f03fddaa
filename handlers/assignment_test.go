package handlers_test

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAssignment(t *testing.T) (*gin.Engine, *sql.DB, int) {
	t.Helper()
	r, database := newTestRouter(t)
	registerUser(t, r, 1, "admin", "Admin One")
	registerUser(t, r, 2, "lecturer", "Lecturer Two")
	registerUser(t, r, 3, "student", "Student Three")
	createCourse(t, r, 1, "Distributed Systems", intPtr(2))

	rec := doJSON(t, r, http.MethodPost, "/assignments/1", gin.H{
		"lecturer_id": 2, "title": "Lab 1", "description": "Build a KV store", "due_date": "2026-10-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assignID := int(decodeBody(t, rec)["assign_id"].(float64))
	return r, database, assignID
}

func TestCreateAssignmentRequiresCourseLecturer(t *testing.T) {
	r, _ := newTestRouter(t)
	registerUser(t, r, 1, "admin", "Admin One")
	registerUser(t, r, 2, "lecturer", "Lecturer Two")
	registerUser(t, r, 4, "lecturer", "Other Lecturer")
	createCourse(t, r, 1, "Distributed Systems", intPtr(2))

	rec := doJSON(t, r, http.MethodPost, "/assignments/1", gin.H{
		"lecturer_id": 4, "title": "Lab 1",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/assignments/9", gin.H{
		"lecturer_id": 2, "title": "Lab 1",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAssignments(t *testing.T) {
	r, _, _ := setupAssignment(t)

	rec := doJSON(t, r, http.MethodGet, "/assignments/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assignments := decodeList(t, rec)
	require.Len(t, assignments, 1)
	assert.Equal(t, "Lab 1", assignments[0]["title"])
	assert.Equal(t, "2026-10-15", assignments[0]["due_date"])
}

func TestSubmitAssignment(t *testing.T) {
	r, _, assignID := setupAssignment(t)
	require.Equal(t, 1, assignID)

	t.Run("unknown assignment", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/assignment/9/submit", gin.H{
			"student_id": 3, "submission_url": "https://example.com/lab1.zip",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not registered for the course", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/assignment/1/submit", gin.H{
			"student_id": 3, "submission_url": "https://example.com/lab1.zip",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("succeeds once registered, conflicts on repeat", func(t *testing.T) {
		enrollStudent(t, r, 3, 1)

		rec := doJSON(t, r, http.MethodPost, "/assignment/1/submit", gin.H{
			"student_id": 3, "submission_url": "https://example.com/lab1.zip",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, r, http.MethodPost, "/assignment/1/submit", gin.H{
			"student_id": 3, "submission_url": "https://example.com/lab1-v2.zip",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGradeSubmission(t *testing.T) {
	r, database, _ := setupAssignment(t)
	registerUser(t, r, 4, "lecturer", "Other Lecturer")
	enrollStudent(t, r, 3, 1)

	t.Run("no submission yet", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/assignment/1/grade", gin.H{
			"lecturer_id": 2, "student_id": 3, "grade": 85.5,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	rec := doJSON(t, r, http.MethodPost, "/assignment/1/submit", gin.H{
		"student_id": 3, "submission_url": "https://example.com/lab1.zip",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("only the course lecturer may grade", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/assignment/1/grade", gin.H{
			"lecturer_id": 4, "student_id": 3, "grade": 85.5,
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("grade is set exactly once", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/assignment/1/grade", gin.H{
			"lecturer_id": 2, "student_id": 3, "grade": 85.5,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, r, http.MethodPost, "/assignment/1/grade", gin.H{
			"lecturer_id": 2, "student_id": 3, "grade": 40.0,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)

		// the first grade sticks
		var grade float64
		err := database.QueryRow(
			"SELECT grade FROM submissions WHERE assign_id = 1 AND stud_id = 3").Scan(&grade)
		require.NoError(t, err)
		assert.Equal(t, 85.5, grade)
	})

	t.Run("unknown assignment", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/assignment/9/grade", gin.H{
			"lecturer_id": 2, "student_id": 3, "grade": 85.5,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
