package services

import "github.com/moncredit/admin-dashboard/internal/core"

// PageInfo carries the pagination counters returned next to every list.
type PageInfo struct {
	Pages int
	Total int
}

// actionEnvelope is the response body of every approve/reject/block call.
type actionEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// checkSuccess turns a success:false body inside a 2xx response into a
// business failure carrying the server message.
func checkSuccess(ok bool, message string) error {
	if ok {
		return nil
	}
	return &core.APIError{Message: message}
}
