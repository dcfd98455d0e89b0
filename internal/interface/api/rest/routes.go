package rest

const (
	// api
	RouteAPI = "/api"

	RouteUsers    = RouteAPI + "/users"
	RouteUser     = RouteAPI + "/user"
	RouteUserByID = RouteUser + "/:id"

	RouteUploadSingleFile    = RouteAPI + "/upload-single-file"
	RouteUploadMultipleFiles = RouteAPI + "/upload-multiple-files"

	// ops
	RouteHealth  = RouteAPI + "/healthz"
	RouteMetrics = RouteAPI + "/metrics"
)
