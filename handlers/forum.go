package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"unihub/models"
)

// CreateForumHandler creates a discussion forum for a course
func CreateForumHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var req models.CreateForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

	exists, err := courseExists(database, courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying course: %v", err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	result, err := database.Exec(
		"INSERT INTO forums (course_id, title) VALUES (?, ?)",
		courseID, req.ForumTitle,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting forum: %v", err)
		return
	}

	forumID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, models.Forum{
		ForumID:  int(forumID),
		CourseID: courseID,
		Title:    req.ForumTitle,
	})
}

// GetForumsHandler lists the forums of a course
func GetForumsHandler(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	database := getDB(c)
	rows, err := database.Query(
		"SELECT forum_id, course_id, title FROM forums WHERE course_id = ?", courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying forums: %v", err)
		return
	}
	defer rows.Close()

	forums := []models.Forum{}
	for rows.Next() {
		var forum models.Forum
		if err := rows.Scan(&forum.ForumID, &forum.CourseID, &forum.Title); err != nil {
			log.Printf("Error scanning forum: %v", err)
			continue
		}
		forums = append(forums, forum)
	}

	c.JSON(http.StatusOK, forums)
}

// CreateThreadHandler opens a discussion thread in a forum
func CreateThreadHandler(c *gin.Context) {
	forumID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid forum ID"})
		return
	}

	var req models.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

	var exists bool
	err = database.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM forums WHERE forum_id = ?)", forumID).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying forum: %v", err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Forum not found"})
		return
	}

	result, err := database.Exec(
		"INSERT INTO threads (forum_id, title, created_by) VALUES (?, ?, ?)",
		forumID, req.DisTitle, req.CreatedBy,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting thread: %v", err)
		return
	}

	threadID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"thread_id":  threadID,
		"forum_id":   forumID,
		"dis_title":  req.DisTitle,
		"created_by": req.CreatedBy,
	})
}

// GetThreadsHandler lists the threads of a forum with creator names
func GetThreadsHandler(c *gin.Context) {
	forumID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid forum ID"})
		return
	}

	database := getDB(c)
	rows, err := database.Query(`
		SELECT t.thread_id, t.forum_id, t.title, t.created_by, u.name
		FROM threads t
		JOIN users u ON t.created_by = u.userid
		WHERE t.forum_id = ?`, forumID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying threads: %v", err)
		return
	}
	defer rows.Close()

	threads := []models.Thread{}
	for rows.Next() {
		var thread models.Thread
		if err := rows.Scan(&thread.ThreadID, &thread.ForumID, &thread.Title, &thread.CreatedBy, &thread.CreatorName); err != nil {
			log.Printf("Error scanning thread: %v", err)
			continue
		}
		threads = append(threads, thread)
	}

	c.JSON(http.StatusOK, threads)
}

// AddReplyHandler appends a reply to a thread with a server-assigned timestamp
func AddReplyHandler(c *gin.Context) {
	threadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid thread ID"})
		return
	}

	var req models.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	database := getDB(c)

	var exists bool
	err = database.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM threads WHERE thread_id = ?)", threadID).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying thread: %v", err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thread not found"})
		return
	}

	now := time.Now()
	result, err := database.Exec(
		"INSERT INTO replies (thread_id, user_id, reply_text, created_at) VALUES (?, ?, ?, ?)",
		threadID, req.UserID, req.ReplyText, now,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error inserting reply: %v", err)
		return
	}

	replyID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"reply_id":   replyID,
		"thread_id":  threadID,
		"user_id":    req.UserID,
		"reply_text": req.ReplyText,
		"created_at": now,
	})
}

// GetRepliesHandler lists a thread's replies oldest first, with replier names
func GetRepliesHandler(c *gin.Context) {
	threadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid thread ID"})
		return
	}

	database := getDB(c)
	rows, err := database.Query(`
		SELECT r.reply_id, r.thread_id, r.user_id, u.name, r.reply_text, r.created_at
		FROM replies r
		JOIN users u ON r.user_id = u.userid
		WHERE r.thread_id = ?
		ORDER BY r.created_at ASC, r.reply_id ASC`, threadID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error querying replies: %v", err)
		return
	}
	defer rows.Close()

	replies := []models.Reply{}
	for rows.Next() {
		var reply models.Reply
		if err := rows.Scan(&reply.ReplyID, &reply.ThreadID, &reply.UserID, &reply.UserName, &reply.ReplyText, &reply.CreatedAt); err != nil {
			log.Printf("Error scanning reply: %v", err)
			continue
		}
		replies = append(replies, reply)
	}

	c.JSON(http.StatusOK, replies)
}
