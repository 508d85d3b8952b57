package logsapi

const (
	logsPath = "/api/logs"
	infoPath = "/api/"

	// maxErrorBody bounds how much of a failed response is kept in an APIError.
	maxErrorBody = 512
)
