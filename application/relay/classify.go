package relay

// Accepted reports whether an endpoint status code counts as a successful
// delivery. Any code in the 2xx class is accepted.
func Accepted(status int) bool {
	return status/100 == 2
}
