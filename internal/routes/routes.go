package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"promcare/internal/handlers"
	"promcare/internal/mailer"
	"promcare/internal/repository"
	"promcare/internal/ws"
)

// Deps carries everything the route table needs.
type Deps struct {
	Repos      repository.Registry
	Hub        *ws.Hub
	Dispatcher *mailer.Dispatcher
	JWTSecret  string
}

// Register wires the full endpoint surface onto the app.
func Register(app *fiber.App, deps Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"Message": "use '/docs' endpoint to find all the api related docs "})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// Registration
	app.Post("/registeradmin", handlers.RegisterAdminHandler(deps.Repos))
	app.Post("/registerdoctor", handlers.RegisterDoctorHandler(deps.Repos))
	app.Post("/registerpatient", handlers.RegisterPatientHandler(deps.Repos))

	// Login
	app.Post("/login", handlers.LoginHandler(deps.Repos, deps.JWTSecret))
	app.Post("/google-login", handlers.GoogleLoginHandler(deps.Repos))

	// Lookups
	app.Get("/patients/by-admin/:admin_email", handlers.PatientsByAdminHandler(deps.Repos))
	app.Get("/patients/by-doctor/:doctor_email", handlers.PatientsByDoctorHandler(deps.Repos))
	app.Get("/getalldoctors", handlers.AllDoctorsHandler(deps.Repos))

	// Patient mutations
	app.Put("/update-doctor", handlers.UpdateDoctorHandler(deps.Repos))
	app.Put("/add-questionnaire", handlers.AddQuestionnaireHandler(deps.Repos))
	app.Put("/add-questionnaire-scores", handlers.AddQuestionnaireScoresHandler(deps.Repos))
	app.Put("/update-questionnaire-status", handlers.UpdateQuestionnaireStatusHandler(deps.Repos))
	app.Put("/update-surgery-schedule", handlers.UpdateSurgeryScheduleHandler(deps.Repos))
	app.Put("/update-post-surgery-details", handlers.UpdatePostSurgeryDetailsHandler(deps.Repos))

	// Password resets
	app.Put("/patients/reset-password", handlers.ResetPatientPasswordHandler(deps.Repos))
	app.Put("/doctors/reset-password", handlers.ResetDoctorPasswordHandler(deps.Repos))
	app.Put("/admins/reset-password", handlers.ResetAdminPasswordHandler(deps.Repos))

	// Notifications
	app.Post("/add-notification", handlers.AddNotificationHandler(deps.Repos))
	app.Put("/mark-as-read", handlers.MarkAsReadHandler(deps.Repos))

	// Realtime broadcast
	app.Use("/ws", handlers.RequireWebSocketUpgrade())
	app.Get("/ws/message", handlers.BroadcastSocketHandler(deps.Hub))

	// Outbound mail (fire-and-forget)
	app.Post("/send/", handlers.SendEmailHandler(deps.Dispatcher))
}
