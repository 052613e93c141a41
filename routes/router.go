package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hwlab/portal-go/handlers"
	"github.com/hwlab/portal-go/middleware"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// public
	r.POST("/students/verify", handlers_instance.Auth.VerifyStudent)
	r.POST("/admin/login", handlers_instance.Auth.AdminLogin)
	r.POST("/logout", handlers_instance.Auth.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		student := auth.Group("/", middleware.StudentOnly())
		{
			student.GET("/home", handlers_instance.Student.Home)

			tickets := student.Group("/tickets")
			{
				tickets.POST("", handlers_instance.Ticket.Create)
				tickets.GET("/my", handlers_instance.Ticket.ListMine)
				tickets.GET("/:id/comments", handlers_instance.Ticket.Comments)
				tickets.PUT("/:id/cancel", handlers_instance.Ticket.Cancel)
			}

			borrowings := student.Group("/borrowings")
			{
				borrowings.POST("", handlers_instance.Borrowing.Create)
				borrowings.GET("/my", handlers_instance.Borrowing.ListMine)
				borrowings.PUT("/:id/cancel", handlers_instance.Borrowing.Cancel)
			}

			feedback := student.Group("/feedback")
			{
				feedback.POST("/assistance", handlers_instance.Feedback.SubmitAssistance)
				feedback.POST("/borrowing", handlers_instance.Feedback.SubmitBorrowing)
				feedback.GET("/pending", handlers_instance.Feedback.Pending)
			}

			student.GET("/equipment", handlers_instance.Equipment.ListInStock)
			student.GET("/equipment/:id/photo", handlers_instance.Equipment.PhotoURL)
			student.GET("/assistance-types", handlers_instance.Ticket.Types)
		}

		admin := auth.Group("/admin", middleware.AdminOnly())
		{
			admin.GET("/dashboard", handlers_instance.Report.Dashboard)
			admin.GET("/students/lookup", handlers_instance.Student.Lookup)

			admin.PUT("/profile", handlers_instance.Admin.UpdateProfile)
			admin.PUT("/password", handlers_instance.Admin.ChangePassword)
			admin.GET("/admins", handlers_instance.Admin.List)
			admin.POST("/admins", middleware.SuperAdminOnly(), handlers_instance.Admin.Create)

			tickets := admin.Group("/tickets")
			{
				tickets.GET("", handlers_instance.Ticket.ListRecent)
				tickets.GET("/:id", handlers_instance.Ticket.Get)
				tickets.PUT("/:id", handlers_instance.Ticket.Update)
				tickets.POST("/phone", handlers_instance.Ticket.CreatePhone)
				tickets.POST("/:id/comments", handlers_instance.Ticket.AddComment)
				tickets.GET("/:id/comments", handlers_instance.Ticket.Comments)
			}

			borrowings := admin.Group("/borrowings")
			{
				borrowings.GET("", handlers_instance.Borrowing.ListRecent)
				borrowings.GET("/:id", handlers_instance.Borrowing.Get)
				borrowings.PUT("/:id", handlers_instance.Borrowing.UpdateStatus)
				borrowings.POST("/phone", handlers_instance.Borrowing.CreatePhone)
			}

			equipment := admin.Group("/equipment")
			{
				equipment.GET("", handlers_instance.Equipment.List)
				equipment.GET("/:id", handlers_instance.Equipment.Get)
				equipment.POST("", handlers_instance.Equipment.Create)
				equipment.PUT("/:id/status", handlers_instance.Equipment.UpdateStatus)
				equipment.POST("/:id/photo", handlers_instance.Equipment.UploadPhoto)
				equipment.GET("/categories", handlers_instance.Equipment.Categories)
			}

			admin.GET("/feedback", handlers_instance.Feedback.Browse)

			reports := admin.Group("/reports")
			{
				reports.GET("/overview", handlers_instance.Report.Overview)
				reports.GET("/tickets", handlers_instance.Report.Tickets)
				reports.GET("/equipment", handlers_instance.Report.Equipment)
				reports.GET("/students", handlers_instance.Report.Students)
				reports.GET("/feedback", handlers_instance.Report.Feedback)
			}
		}
	}
}
