package lambda

// Request is the transport-neutral shape of an inbound enrollment call.
// The Lambda entrypoint fills it from an API Gateway proxy event so
// handlers never depend on the event types directly.
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// Response carries the status, headers (CORS included) and JSON body
// back to the entrypoint for conversion into a proxy response.
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}
