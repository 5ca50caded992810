package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	IsError() bool
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// Query keys are appended to the request URL only when present in the map;
// callers express "absent" by omitting the key, never by an empty value.
type Client interface {
	Get(ctx context.Context, url string, query map[string]string, headers map[string]string) (Response, error)
	Post(ctx context.Context, url string, body any, headers map[string]string) (Response, error)
}
