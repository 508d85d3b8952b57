package logsapi

// Log is the wire representation of a log entry.
type Log struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Entries   string   `json:"entries"`
	LogDate   string   `json:"log_date"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// LogRequest is the body for POST /api/logs and PUT /api/logs/{id}.
type LogRequest struct {
	Title   string   `json:"title"`
	Entries string   `json:"entries"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
	LogDate string   `json:"log_date"`
}

// Info is the body of GET /api/.
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// CreateKind tags how a successful create response could be interpreted.
type CreateKind int

const (
	// CreatedWithBody means the body decoded into a log carrying an id.
	CreatedWithBody CreateKind = iota + 1
	// CreatedEmptyBody means the server acknowledged without a body.
	CreatedEmptyBody
	// CreatedUndecodable means a body was sent but it is not a log.
	CreatedUndecodable
)

func (k CreateKind) String() string {
	switch k {
	case CreatedWithBody:
		return "created-with-body"
	case CreatedEmptyBody:
		return "created-empty-body"
	case CreatedUndecodable:
		return "created-undecodable"
	default:
		return "unknown"
	}
}

// CreateResult is the outcome of a successful POST /api/logs.
// Log is set only for CreatedWithBody.
type CreateResult struct {
	Kind       CreateKind
	Log        *Log
	StatusCode int
}

// errorBody matches {"error": "..."} failure payloads.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
