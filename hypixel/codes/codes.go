package codes

// Code - typehint for these enums
type Code string

/*
Codes - classifications of client errors
*/
const (
	Blank             Code = ""
	Transport         Code = "transport"
	BadRequest        Code = "bad-request"
	Forbidden         Code = "forbidden"
	RateLimited       Code = "rate-limited"
	APIRefused        Code = "api-refused"
	NotFound          Code = "not-found"
	MalformedResponse Code = "malformed-response"
)
