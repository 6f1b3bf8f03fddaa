package routes

import (
	"github.com/gin-gonic/gin"

	"unihub/handlers"
)

// SetupRoutes configures the API routes
func SetupRoutes(r *gin.Engine) {
	r.POST("/register", handlers.RegisterHandler)
	r.POST("/login", handlers.LoginHandler)

	r.POST("/courses", handlers.CreateCourseHandler)
	r.GET("/courses", handlers.GetCoursesHandler)
	r.GET("/courses/student/:id", handlers.GetStudentCoursesHandler)
	r.GET("/courses/lecturer/:id", handlers.GetLecturerCoursesHandler)
	r.POST("/register-student", handlers.EnrollStudentHandler)
	r.POST("/register-lecturer", handlers.AssignLecturerHandler)
	r.GET("/course-members/:id", handlers.GetCourseMembersHandler)

	r.POST("/calendar", handlers.CreateEventHandler)
	r.GET("/calendar/course/:id", handlers.GetCourseEventsHandler)
	r.GET("/calendar/student/:id/:date", handlers.GetStudentEventsHandler)

	r.GET("/forum/:course_id", handlers.GetForumsHandler)
	r.POST("/forum/:course_id", handlers.CreateForumHandler)
	// gin requires one wildcard name per position, so both the forum id and
	// the thread id ride on :id here
	r.GET("/threads/:id", handlers.GetThreadsHandler)
	r.POST("/threads/:id", handlers.CreateThreadHandler)
	r.GET("/threads/:id/replies", handlers.GetRepliesHandler)
	r.POST("/threads/:id/replies", handlers.AddReplyHandler)

	r.GET("/sections/:course_id", handlers.GetSectionsHandler)
	r.POST("/sections/:course_id", handlers.CreateSectionHandler)
	r.GET("/content/:course_id", handlers.GetContentHandler)
	r.POST("/content/:course_id", handlers.AddContentHandler)

	r.GET("/assignments/:course_id", handlers.GetAssignmentsHandler)
	r.POST("/assignments/:course_id", handlers.CreateAssignmentHandler)
	r.POST("/assignment/:id/submit", handlers.SubmitAssignmentHandler)
	r.POST("/assignment/:id/grade", handlers.GradeSubmissionHandler)

	r.GET("/report/popular-courses", handlers.GetPopularCoursesHandler)
}
