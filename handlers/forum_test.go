package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateForumUnknownCourse(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/forum/9", gin.H{"forum_title": "General"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestForumThreadReplyFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	registerUser(t, r, 1, "admin", "Admin One")
	registerUser(t, r, 2, "student", "Student Two")
	registerUser(t, r, 3, "student", "Student Three")
	courseID := createCourse(t, r, 1, "Operating Systems", nil)

	rec := doJSON(t, r, http.MethodPost, "/forum/1", gin.H{"forum_title": "General"})
	require.Equal(t, http.StatusCreated, rec.Code)
	forumID := int(decodeBody(t, rec)["forum_id"].(float64))
	require.Equal(t, 1, forumID)

	rec = doJSON(t, r, http.MethodGet, "/forum/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	forums := decodeList(t, rec)
	require.Len(t, forums, 1)
	assert.Equal(t, "General", forums[0]["title"])
	assert.Equal(t, float64(courseID), forums[0]["course_id"])

	rec = doJSON(t, r, http.MethodPost, "/threads/1", gin.H{
		"dis_title": "Week 1 questions", "created_by": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	threadID := int(decodeBody(t, rec)["thread_id"].(float64))

	rec = doJSON(t, r, http.MethodGet, "/threads/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	threads := decodeList(t, rec)
	require.Len(t, threads, 1)
	assert.Equal(t, "Week 1 questions", threads[0]["title"])
	assert.Equal(t, "Student Two", threads[0]["creator_name"])

	for _, reply := range []gin.H{
		{"user_id": 2, "reply_text": "first"},
		{"user_id": 3, "reply_text": "second"},
	} {
		rec = doJSON(t, r, http.MethodPost, "/threads/1/replies", reply)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/threads/1/replies", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	replies := decodeList(t, rec)
	require.Len(t, replies, 2)
	assert.Equal(t, "first", replies[0]["reply_text"])
	assert.Equal(t, "Student Two", replies[0]["user_name"])
	assert.Equal(t, "second", replies[1]["reply_text"])
	assert.Equal(t, "Student Three", replies[1]["user_name"])
	assert.Equal(t, 1, threadID)
}

func TestCreateThreadUnknownForum(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/threads/3", gin.H{
		"dis_title": "Lost thread", "created_by": 1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddReplyUnknownThread(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/threads/3/replies", gin.H{
		"user_id": 1, "reply_text": "hello?",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
