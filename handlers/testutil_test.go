package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"unihub/db"
	"unihub/routes"
)

// newTestRouter builds the full route tree against a fresh in-memory
// sqlite database
func newTestRouter(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// a second pool connection would see a different in-memory database
	database.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(database, "sqlite3"))
	t.Cleanup(func() { database.Close() })

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("db", database)
		c.Next()
	})
	routes.SetupRoutes(r)
	return r, database
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}

// registerUser creates a user with a fixed password through the public API
func registerUser(t *testing.T, r *gin.Engine, id int, role, name string) {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"userid":   id,
		"password": "s3cretpass",
		"role":     role,
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "registering %s %q: %s", role, name, rec.Body.String())
}

// createCourse creates a course as the given admin and returns its id
func createCourse(t *testing.T, r *gin.Engine, adminID int, name string, lecturerID *int) int {
	t.Helper()
	body := gin.H{"userid": adminID, "course_name": name}
	if lecturerID != nil {
		body["lecturer_id"] = *lecturerID
	}
	rec := doJSON(t, r, http.MethodPost, "/courses", body)
	require.Equal(t, http.StatusCreated, rec.Code, "creating course %q: %s", name, rec.Body.String())
	return int(decodeBody(t, rec)["course_id"].(float64))
}

// enrollStudent registers a student for a course and asserts success
func enrollStudent(t *testing.T, r *gin.Engine, studID, courseID int) {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/register-student", gin.H{
		"stud_id":   studID,
		"course_id": courseID,
	})
	require.Equal(t, http.StatusOK, rec.Code, "enrolling student %d: %s", studID, rec.Body.String())
}

func intPtr(v int) *int { return &v }
