package app

import (
	"fmt"
	"log"
	"os"

	"catalog-builder/app/controller"
	"catalog-builder/app/router"
	"catalog-builder/db"
	"catalog-builder/render"
	"catalog-builder/repository"
	"catalog-builder/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Ensure the image cache exists before the first product image request
	if err := service.EnsureCacheDir(); err != nil {
		return err
	}

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository()
	productRepo := repository.NewProductRepository()
	templateRepo := repository.NewTemplateRepository()
	catalogRepo := repository.NewCatalogRepository()

	// Custom template registry and render orchestrator
	templateDir := os.Getenv("TEMPLATE_DIR")
	if templateDir == "" {
		templateDir = "public/templates/custom"
	}
	orchestrator := render.NewOrchestrator(render.NewDirRegistry(templateDir))

	// PDF backends, tried in order
	backends := []service.PDFBackend{
		service.NewDirectPDFBackend(),
		service.NewBrowserPDFBackend(),
	}

	// Drive publishing is optional: enabled only when credentials and a
	// target folder are configured
	var driveService service.DriveServiceInterface
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	driveFolderID := os.Getenv("DRIVE_FOLDER_ID")
	if credentialsPath != "" && driveFolderID != "" {
		ds, err := service.NewDriveService(credentialsPath, driveFolderID)
		if err != nil {
			return err
		}
		driveService = ds
		log.Printf("✓ Drive publishing enabled (folder=%s)", driveFolderID)
	} else {
		log.Printf("⚠️  Drive publishing disabled (GOOGLE_APPLICATION_CREDENTIALS or DRIVE_FOLDER_ID not set)")
	}

	generatedDir := os.Getenv("GENERATED_DIR")
	if generatedDir == "" {
		generatedDir = "public/generated"
	}

	exportService := service.NewExportService(
		catalogRepo, productRepo, templateRepo, businessRepo,
		orchestrator, backends, driveService, generatedDir,
	)

	// Create controllers
	controllers := &router.Controllers{
		Business: controller.NewBusinessController(businessRepo, catalogRepo),
		Product:  controller.NewProductController(productRepo),
		Template: controller.NewTemplateController(templateRepo, catalogRepo),
		Catalog:  controller.NewCatalogController(catalogRepo, exportService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
