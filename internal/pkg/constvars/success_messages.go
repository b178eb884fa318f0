package constvars

const (
	// Generic messages
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// User messages
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"
	UserDeletedSuccess   = "user deleted successfully"
	UsersListSuccess     = "get users successfully"

	// Catalog messages
	SectionsListSuccess   = "get sections successfully"
	SectionGetSuccess     = "get section successfully"
	CatalogRefreshSuccess = "catalog refreshed successfully"

	// Routine messages
	RoutineSavedSuccess   = "routine saved successfully"
	RoutinesListSuccess   = "get routines successfully"
	RoutineGetSuccess     = "get routine successfully"
	RoutineDeletedSuccess = "routine deleted successfully"
	RoutinePreviewSuccess = "selection previewed successfully"
	RoutinesMergedSuccess = "routines merged successfully"

	// Swap messages
	SwapCreatedSuccess  = "swap request created successfully"
	SwapsListSuccess    = "get swap requests successfully"
	SwapUpdatedSuccess  = "swap request updated successfully"
	SwapDeletedSuccess  = "swap request deleted successfully"
	SwapInterestSuccess = "interest recorded successfully"

	// Import messages
	FacultyImportSuccess = "faculty list imported successfully"
)
