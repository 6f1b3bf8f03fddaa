package models

import "time"

// Roles accepted at registration
const (
	RoleStudent  = "student"
	RoleLecturer = "lecturer"
	RoleAdmin    = "admin"
)

// ValidRole checks the role against the allowed set
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleLecturer || role == RoleAdmin
}

// Content types accepted for course content
const (
	ContentLink  = "link"
	ContentFile  = "file"
	ContentSlide = "slide"
)

// ValidContentType checks the content type against the allowed set
func ValidContentType(t string) bool {
	return t == ContentLink || t == ContentFile || t == ContentSlide
}

// RegisterRequest for user registration. UserID is optional; clients that
// manage their own id space may supply it, otherwise one is assigned.
type RegisterRequest struct {
	UserID   int     `json:"userid"`
	Password string  `json:"password" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Email    *string `json:"email"`
}

// LoginRequest for authentication
type LoginRequest struct {
	UserID   int    `json:"userid" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// User public fields; the password hash is never serialized
type User struct {
	UserID int     `json:"userid"`
	Name   string  `json:"name"`
	Email  *string `json:"email"`
	Role   string  `json:"role"`
}

// CreateCourseRequest for admin course creation
type CreateCourseRequest struct {
	UserID     int    `json:"userid" binding:"required"`
	CourseName string `json:"course_name" binding:"required"`
	LecturerID *int   `json:"lecturer_id"`
}

// Course model
type Course struct {
	CourseID   int    `json:"course_id"`
	CourseName string `json:"course_name"`
}

// EnrollRequest registers a student for a course
type EnrollRequest struct {
	StudID   int `json:"stud_id" binding:"required"`
	CourseID int `json:"course_id" binding:"required"`
}

// AssignLecturerRequest assigns a lecturer to a course
type AssignLecturerRequest struct {
	LecturerID int `json:"lecturer_id" binding:"required"`
	CourseID   int `json:"course_id" binding:"required"`
}

// CourseMember is a user projection used in course membership listings
type CourseMember struct {
	UserID int    `json:"userid"`
	Name   string `json:"name"`
}

// CreateEventRequest for calendar events
type CreateEventRequest struct {
	EventTitle string `json:"event_title" binding:"required"`
	EventDate  string `json:"event_date" binding:"required"`
	CourseID   int    `json:"course_id" binding:"required"`
}

// CalendarEvent model
type CalendarEvent struct {
	EventID  int    `json:"event_id"`
	CourseID int    `json:"course_id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
}

// CreateForumRequest for course forums
type CreateForumRequest struct {
	ForumTitle string `json:"forum_title" binding:"required"`
}

// Forum model
type Forum struct {
	ForumID  int    `json:"forum_id"`
	CourseID int    `json:"course_id"`
	Title    string `json:"title"`
}

// CreateThreadRequest for discussion threads
type CreateThreadRequest struct {
	DisTitle  string `json:"dis_title" binding:"required"`
	CreatedBy int    `json:"created_by" binding:"required"`
}

// Thread model; CreatorName is joined in from users on listing
type Thread struct {
	ThreadID    int    `json:"thread_id"`
	ForumID     int    `json:"forum_id"`
	Title       string `json:"title"`
	CreatedBy   int    `json:"created_by"`
	CreatorName string `json:"creator_name"`
}

// CreateReplyRequest for thread replies
type CreateReplyRequest struct {
	UserID    int    `json:"user_id" binding:"required"`
	ReplyText string `json:"reply_text" binding:"required"`
}

// Reply model; UserName is joined in from users on listing
type Reply struct {
	ReplyID   int       `json:"reply_id"`
	ThreadID  int       `json:"thread_id"`
	UserID    int       `json:"user_id"`
	UserName  string    `json:"user_name"`
	ReplyText string    `json:"reply_text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSectionRequest for course sections
type CreateSectionRequest struct {
	LecturerID   int    `json:"lecturer_id" binding:"required"`
	SectionTitle string `json:"section_title" binding:"required"`
}

// Section model
type Section struct {
	SectionID int    `json:"section_id"`
	CourseID  int    `json:"course_id"`
	Title     string `json:"title"`
}

// CreateContentRequest for course content
type CreateContentRequest struct {
	UserID       int    `json:"userid" binding:"required"`
	ContentTitle string `json:"content_title" binding:"required"`
	ContentURL   string `json:"content_url" binding:"required"`
	ContentType  string `json:"content_type" binding:"required"`
	SectionID    int    `json:"section_id" binding:"required"`
}

// CourseContent model
type CourseContent struct {
	ContentID   int    `json:"content_id"`
	CourseID    int    `json:"course_id"`
	SectionID   int    `json:"section_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

// CreateAssignmentRequest for course assignments
type CreateAssignmentRequest struct {
	LecturerID  int    `json:"lecturer_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// Assignment model
type Assignment struct {
	AssignID    int    `json:"assign_id"`
	CourseID    int    `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// SubmitRequest for assignment submissions
type SubmitRequest struct {
	StudentID     int    `json:"student_id" binding:"required"`
	SubmissionURL string `json:"submission_url" binding:"required"`
}

// GradeRequest sets a submission's grade. Grade is a pointer so a zero
// grade still binds.
type GradeRequest struct {
	LecturerID int      `json:"lecturer_id" binding:"required"`
	StudentID  int      `json:"student_id" binding:"required"`
	Grade      *float64 `json:"grade" binding:"required"`
}
