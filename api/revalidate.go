package api

// RevalidateResponse is the 200 body of the revalidation webhook,
// enumerating everything that was invalidated.
type RevalidateResponse struct {
	Revalidated bool   `json:"revalidated"`
	Message     string `json:"message"`
}
