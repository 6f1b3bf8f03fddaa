package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCourseWithLecturer(t *testing.T) (*gin.Engine, int) {
	t.Helper()
	r, _ := newTestRouter(t)
	registerUser(t, r, 1, "admin", "Admin One")
	registerUser(t, r, 2, "lecturer", "Lecturer Two")
	registerUser(t, r, 3, "student", "Student Three")
	courseID := createCourse(t, r, 1, "Machine Learning", intPtr(2))
	return r, courseID
}

func TestCreateSectionRequiresCourseLecturer(t *testing.T) {
	r, _ := setupCourseWithLecturer(t)

	rec := doJSON(t, r, http.MethodPost, "/sections/1", gin.H{
		"lecturer_id": 3, "section_title": "Week 1",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/sections/9", gin.H{
		"lecturer_id": 2, "section_title": "Week 1",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/sections/1", gin.H{
		"lecturer_id": 2, "section_title": "Week 1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["section_id"])

	rec = doJSON(t, r, http.MethodGet, "/sections/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sections := decodeList(t, rec)
	require.Len(t, sections, 1)
	assert.Equal(t, "Week 1", sections[0]["title"])
}

func TestAddContent(t *testing.T) {
	r, _ := setupCourseWithLecturer(t)

	rec := doJSON(t, r, http.MethodPost, "/sections/1", gin.H{
		"lecturer_id": 2, "section_title": "Week 1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("non-lecturer forbidden", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/content/1", gin.H{
			"userid": 3, "content_title": "Notes", "content_url": "https://example.com/notes.pdf",
			"content_type": "file", "section_id": 1,
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid content type", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/content/1", gin.H{
			"userid": 2, "content_title": "Notes", "content_url": "https://example.com/notes.pdf",
			"content_type": "video", "section_id": 1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown section", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/content/1", gin.H{
			"userid": 2, "content_title": "Notes", "content_url": "https://example.com/notes.pdf",
			"content_type": "file", "section_id": 7,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lecturer adds and lists content", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/content/1", gin.H{
			"userid": 2, "content_title": "Notes", "content_url": "https://example.com/notes.pdf",
			"content_type": "file", "section_id": 1,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, r, http.MethodGet, "/content/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		contents := decodeList(t, rec)
		require.Len(t, contents, 1)
		assert.Equal(t, "Notes", contents[0]["title"])
		assert.Equal(t, "file", contents[0]["content_type"])
	})
}

// A course without content yields an empty list, never an error
func TestListContentEmptyCourse(t *testing.T) {
	r, _ := setupCourseWithLecturer(t)

	rec := doJSON(t, r, http.MethodGet, "/content/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
