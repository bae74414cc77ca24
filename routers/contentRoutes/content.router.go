package contentRoutes

import (
	controllers "caprep/controllers/content"
	"caprep/middleware"
	validators "caprep/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up all content management routes. Reads are
// public; every mutating route requires the admin JWT.
func SetupContentRoutes(app *fiber.App) {
	// Course CRUD
	courseGroup := app.Group("/course")
	courseGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/:id", controllers.GetCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteCourse)

	// Topic CRUD
	topicGroup := app.Group("/topic")
	topicGroup.Post("/create", middleware.JWTMiddleware, validators.CreateTopic(), controllers.CreateTopic)
	topicGroup.Get("/:id", controllers.GetTopic)
	topicGroup.Get("/:id/testpapers", controllers.GetTopicTestPapers)
	topicGroup.Get("/:id/notes", controllers.GetNotesByTopic)
	topicGroup.Get("/:id/videonotes", controllers.GetVideoNotesByTopic)
	topicGroup.Get("/:id/mcqs", controllers.GetMCQsByTopic)
	topicGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateTopic(), controllers.UpdateTopic)
	topicGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteTopic)

	// Test paper CRUD
	paperGroup := app.Group("/testpaper")
	paperGroup.Post("/create", middleware.JWTMiddleware, validators.CreateTestPaper(), controllers.CreateTestPaper)
	paperGroup.Get("/list", controllers.GetAllTestPapers)
	paperGroup.Get("/:id", controllers.GetTestPaper)
	paperGroup.Get("/:id/test", controllers.GetTestPaperForTest)
	paperGroup.Get("/:id/answers", controllers.GetTestPaperAnswers)
	paperGroup.Get("/:id/mcqs", controllers.GetMCQsByTestPaper)
	paperGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateTestPaper(), controllers.UpdateTestPaper)
	paperGroup.Post("/:id/schedule", middleware.JWTMiddleware, validators.ScheduleTestPaper(), controllers.ScheduleTestPaperPublish)
	paperGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteTestPaper)

	// MCQ CRUD
	mcqGroup := app.Group("/mcq")
	mcqGroup.Post("/create", middleware.JWTMiddleware, validators.CreateMCQ(), controllers.CreateMCQ)
	mcqGroup.Get("/list", controllers.GetAllMCQs)
	mcqGroup.Get("/:id", controllers.GetMCQ)
	mcqGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateMCQ(), controllers.UpdateMCQ)
	mcqGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteMCQ)

	// Note upload and CRUD
	noteGroup := app.Group("/note")
	noteGroup.Post("/upload", middleware.JWTMiddleware, validators.UploadNote(), controllers.UploadNote)
	noteGroup.Get("/list", controllers.GetAllNotes)
	noteGroup.Get("/:id", controllers.GetNote)
	noteGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteNote)

	// Video note CRUD
	videoNoteGroup := app.Group("/videonote")
	videoNoteGroup.Post("/create", middleware.JWTMiddleware, validators.CreateVideoNote(), controllers.CreateVideoNote)
	videoNoteGroup.Get("/list", controllers.GetAllVideoNotes)
	videoNoteGroup.Get("/:id", controllers.GetVideoNote)
	videoNoteGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteVideoNote)

	// Search
	app.Get("/search", controllers.Search)
}
