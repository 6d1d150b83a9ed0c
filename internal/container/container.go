package container

import (
	"database/sql"

	"assetdesk/internal/assets"
	"assetdesk/internal/assignments"
	"assetdesk/internal/auditlog"
	"assetdesk/internal/categories"
	"assetdesk/internal/consumables"
	"assetdesk/internal/entitystore"
	"assetdesk/internal/licenses"
	"assetdesk/internal/locations"
	"assetdesk/internal/maintenance"
	"assetdesk/internal/moves"
	"assetdesk/internal/reports"
	"assetdesk/internal/repository"
	"assetdesk/internal/suppliers"
	"assetdesk/internal/users"
	"assetdesk/pkg/security"
)

// AppContainer wires repositories, stores, services and handlers once at
// startup. Handlers are what the router consumes.
type AppContainer struct {
	Repository *repository.Repository

	LoginHandler       *security.LoginHandler
	AssetHandler       *assets.AssetHandler
	AssignmentHandler  *assignments.AssignmentHandler
	MoveHandler        *moves.MoveHandler
	LicenseHandler     *licenses.LicenseHandler
	ConsumableHandler  *consumables.ConsumableHandler
	MaintenanceHandler *maintenance.MaintenanceHandler
	CategoryHandler    *categories.CategoryHandler
	LocationHandler    *locations.LocationHandler
	SupplierHandler    *suppliers.SupplierHandler
	UserHandler        *users.UserHandler
	ReportsHandler     *reports.ReportsHandler
	AuditLogHandler    *auditlog.Handler
}

func NewAppContainer(db *sql.DB) *AppContainer {
	repo := repository.NewRepository(db)

	auditRepo := auditlog.NewRepository(repo)
	recorder := auditlog.NewRecorder(auditRepo)

	assetStore := entitystore.New(repo, recorder, "assets")
	assignmentStore := entitystore.New(repo, recorder, "asset_assignments")
	moveStore := entitystore.New(repo, recorder, "asset_moves")
	licenseStore := entitystore.New(repo, recorder, "software_licenses")
	licenseAssignmentStore := entitystore.New(repo, recorder, "license_assignments")
	consumableStore := entitystore.New(repo, recorder, "consumables")
	maintenanceStore := entitystore.New(repo, recorder, "maintenance_orders")
	categoryStore := entitystore.New(repo, recorder, "categories")
	locationStore := entitystore.New(repo, recorder, "locations")
	supplierStore := entitystore.New(repo, recorder, "suppliers")
	userStore := entitystore.New(repo, recorder, "users")

	assetRepo := assets.NewRepository(repo)
	assetService := assets.NewService(assetRepo, assetStore)

	assignmentRepo := assignments.NewRepository(repo)
	assignmentService := assignments.NewService(repo, assignmentRepo, assignmentStore, assetStore, userStore)

	moveRepo := moves.NewRepository(repo)
	moveService := moves.NewService(repo, moveRepo, moveStore, assetStore, locationStore)

	licenseRepo := licenses.NewRepository(repo)
	licenseService := licenses.NewService(repo, licenseRepo, licenseStore, licenseAssignmentStore, assetStore, userStore)

	consumableRepo := consumables.NewRepository(repo)
	consumableService := consumables.NewService(repo, consumableRepo, consumableStore)

	maintenanceRepo := maintenance.NewRepository(repo)
	maintenanceService := maintenance.NewService(repo, maintenanceRepo, maintenanceStore, assetStore)

	categoryRepo := categories.NewRepository(repo)
	categoryService := categories.NewService(repo, categoryRepo, categoryStore)

	locationRepo := locations.NewRepository(repo)
	locationService := locations.NewService(locationRepo, locationStore)

	supplierRepo := suppliers.NewRepository(repo)
	supplierService := suppliers.NewService(supplierRepo, supplierStore)

	userRepo := users.NewRepository(repo)
	userService := users.NewService(userRepo, userStore)

	reportsRepo := reports.NewRepository(repo)

	return &AppContainer{
		Repository: repo,

		LoginHandler:       security.NewLoginHandler(repo),
		AssetHandler:       assets.NewHandler(assetService, assetRepo),
		AssignmentHandler:  assignments.NewHandler(assignmentService, assignmentRepo),
		MoveHandler:        moves.NewHandler(moveService, moveRepo),
		LicenseHandler:     licenses.NewHandler(licenseService, licenseRepo),
		ConsumableHandler:  consumables.NewHandler(consumableService, consumableRepo),
		MaintenanceHandler: maintenance.NewHandler(maintenanceService, maintenanceRepo),
		CategoryHandler:    categories.NewHandler(categoryService, categoryRepo),
		LocationHandler:    locations.NewHandler(locationService, locationRepo),
		SupplierHandler:    suppliers.NewHandler(supplierService, supplierRepo),
		UserHandler:        users.NewHandler(userService, userRepo),
		ReportsHandler:     reports.NewHandler(reportsRepo),
		AuditLogHandler:    auditlog.NewHandler(auditRepo),
	}
}
