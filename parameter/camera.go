package parameter

// Viewport mapping
const (
	// CameraWorldPerCell is the world width covered by one terminal column at startup
	CameraWorldPerCell = 4.0

	// CameraCellAspect is the height/width ratio of a terminal cell
	// One row covers CameraWorldPerCell*CameraCellAspect world units
	CameraCellAspect = 2.0

	// HUDRows is the number of rows reserved at the top for the constants display
	HUDRows = 3
)
