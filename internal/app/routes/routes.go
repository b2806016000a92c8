package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esathi/engineersathi/internal/app/controllers"
	"github.com/esathi/engineersathi/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	semesterController *controllers.SemesterController,
	subjectController *controllers.SubjectController,
	noteController *controllers.NoteController,
	fileController *controllers.FileController,
	feedbackController *controllers.FeedbackController,
	statsController *controllers.StatsController,
	moderationController *controllers.ModerationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public API (open by design, no auth) ---
	api := router.Group("/api")

	semesters := api.Group("/semesters")
	{
		semesters.GET("", semesterController.GetAllSemesters)
		semesters.GET("/:number", semesterController.GetSemesterByNumber)
		semesters.GET("/:number/subjects", semesterController.GetSemesterSubjects)
	}

	subjects := api.Group("/subjects")
	{
		subjects.GET("", subjectController.GetAllSubjects)
		subjects.GET("/:id", subjectController.GetSubjectByID)
		subjects.GET("/:id/notes", noteController.GetSubjectNotes)
	}

	notes := api.Group("/notes")
	{
		notes.GET("", noteController.GetAllNotes)
		notes.GET("/:id", noteController.GetNoteByID)
		notes.GET("/:id/download", fileController.DownloadNote)
		notes.GET("/:id/file", fileController.ServeNote)
		notes.GET("/:id/serve", fileController.ServeNote)
		notes.POST("/:id/increment-download", noteController.IncrementDownloads)
		notes.POST("/:id/comments", noteController.AddComment)
		notes.POST("/:id/ratings", noteController.AddRating)
	}

	api.GET("/featured-notes", noteController.GetFeaturedNotes)
	api.POST("/feedback", feedbackController.SubmitFeedback)
	api.GET("/stats", statsController.GetStats)

	// --- Admin API ---
	admin := router.Group("/admin")
	admin.POST("/login", authController.Login)

	protected := admin.Group("")
	protected.Use(authMiddleware.AdminAuth())
	{
		adminSemesters := protected.Group("/semesters")
		{
			adminSemesters.GET("", semesterController.ListSemestersForAdmin)
			adminSemesters.POST("", semesterController.CreateSemester)
			adminSemesters.PUT("/:id", semesterController.UpdateSemester)
			adminSemesters.DELETE("/:id", semesterController.DeleteSemester)
		}

		adminSubjects := protected.Group("/subjects")
		{
			adminSubjects.GET("", subjectController.ListSubjectsForAdmin)
			adminSubjects.POST("", subjectController.CreateSubject)
			adminSubjects.PUT("/:id", subjectController.UpdateSubject)
			adminSubjects.DELETE("/:id", subjectController.DeleteSubject)
		}

		adminNotes := protected.Group("/notes")
		{
			adminNotes.GET("", noteController.GetAllNotes)
			adminNotes.POST("", noteController.BulkUploadNotes)
			adminNotes.PUT("/:id", noteController.UpdateNote)
			adminNotes.PATCH("/:id/featured", noteController.SetFeatured)
			adminNotes.DELETE("/:id", noteController.DeleteNote)
		}

		adminComments := protected.Group("/comments")
		{
			adminComments.GET("", moderationController.ListComments)
			adminComments.DELETE("/:id", moderationController.DeleteComment)
		}

		adminRatings := protected.Group("/ratings")
		{
			adminRatings.GET("", moderationController.ListRatings)
			adminRatings.DELETE("/:id", moderationController.DeleteRating)
		}

		adminFeedback := protected.Group("/feedback")
		{
			adminFeedback.GET("", moderationController.ListFeedback)
			adminFeedback.DELETE("/:id", moderationController.DeleteFeedback)
		}
	}
}
