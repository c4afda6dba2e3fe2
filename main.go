package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/config"
	"github.com/servergreen991/designer-mom/controllers"
	"github.com/servergreen991/designer-mom/middleware"
	"github.com/servergreen991/designer-mom/services"
	"github.com/servergreen991/designer-mom/storage"
	"github.com/servergreen991/designer-mom/store"
)

func main() {
	log.Println("Starting Designer Mom API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	port, err := storage.OpenGormPort(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open persistence: %v", err)
	}

	st, err := store.NewStore(port)
	if err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}
	log.Println("State loaded successfully")

	ctx := context.Background()

	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}
	renderer, err := services.NewGeminiRenderer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}
	defer renderer.Close()

	var images services.ImageStore = services.PassthroughImageStore{}
	if cfg.UseS3() {
		s3Store, err := services.NewS3ImageStore(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3 image store: %v", err)
		}
		images = s3Store
		log.Printf("Preview images will be stored in S3 bucket %s", cfg.AWSS3Bucket)
	}

	sessions := services.NewSessionManager(st, storage.NewMemorySlot())
	workflow := services.NewWorkflow(st, renderer, images)
	backup := services.NewBackupService(st, sessions)

	router := setupRouter(st, sessions, workflow, backup, images)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires the controllers into a Gin engine. Split out of main
// so tests can build the full route table against in-memory dependencies.
func setupRouter(
	st *store.Store,
	sessions *services.SessionManager,
	workflow *services.Workflow,
	backup *services.BackupService,
	images services.ImageStore,
) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	auth := &controllers.AuthController{Sessions: sessions}
	users := &controllers.UserController{Store: st, Sessions: sessions}
	catalog := &controllers.CatalogController{Store: st, Images: images}
	orders := &controllers.OrderController{Store: st, Workflow: workflow}
	wizard := &controllers.WorkflowController{Store: st, Workflow: workflow}
	messages := &controllers.MessageController{Store: st}
	feedback := &controllers.FeedbackController{Store: st}
	settings := &controllers.SettingsController{Store: st}
	backups := &controllers.BackupController{Backup: backup}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)

		v1.POST("/auth/login", auth.Login)
		v1.POST("/auth/register", auth.Register)
		v1.POST("/auth/logout", auth.Logout)
		v1.GET("/auth/session", auth.Session)

		v1.GET("/settings", settings.GetAppSettings)
		v1.GET("/theme", settings.GetTheme)

		session := v1.Group("")
		session.Use(middleware.RequireSession(sessions))
		{
			session.GET("/fabrics", catalog.ListFabrics)
			session.GET("/designs", catalog.ListDesigns)
			session.PUT("/users/me", users.UpdateProfile)

			approved := session.Group("")
			approved.Use(middleware.RequireApproved(sessions))
			{
				approved.POST("/draft", wizard.StartDraft)
				approved.GET("/draft", wizard.GetDraft)
				approved.DELETE("/draft", wizard.DiscardDraft)
				approved.PUT("/draft/measurements", wizard.SetMeasurements)
				approved.POST("/draft/fabrics", wizard.ToggleFabric)
				approved.POST("/draft/design", wizard.SelectDesign)
				approved.POST("/draft/previews", wizard.GeneratePreviews)
				approved.POST("/draft/previews/edit", wizard.EditPreview)
				approved.POST("/draft/final", wizard.ChooseFinal)
				approved.POST("/draft/submit", wizard.Submit)

				approved.GET("/orders", orders.ListOrders)
				approved.GET("/orders/:id", orders.GetOrder)
				approved.GET("/orders/:id/messages", messages.ListOrderMessages)

				approved.GET("/messages", messages.ListMessages)
				approved.POST("/messages", messages.SendMessage)
				approved.POST("/feedback", feedback.SubmitFeedback)
			}

			staff := session.Group("")
			staff.Use(middleware.RequireStaff())
			{
				staff.GET("/users", users.ListUsers)
				staff.POST("/users/staff", users.CreateStaff)
				staff.POST("/users/:id/approve", users.ApproveUser)
				staff.DELETE("/users/:id", users.DeleteUser)

				staff.POST("/fabrics", catalog.AddFabric)
				staff.DELETE("/fabrics/:id", catalog.DeleteFabric)
				staff.POST("/designs", catalog.AddDesign)
				staff.DELETE("/designs/:id", catalog.DeleteDesign)

				staff.PUT("/orders/:id/status", orders.UpdateStatus)
				staff.PUT("/orders/:id", orders.UpdateOrder)

				staff.GET("/feedback", feedback.ListFeedback)
				staff.PUT("/settings", settings.UpdateAppSettings)
				staff.PUT("/theme", settings.UpdateTheme)

				staff.GET("/backup", backups.Export)
				staff.POST("/backup", backups.Import)
			}
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Designer Mom API is running",
	})
}
