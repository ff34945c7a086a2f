package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// ErrorModel заменяет RFC 7807 ответ huma на {"error": "..."}, как у остальных ответов сервиса
type ErrorModel struct {
	status  int
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (e *ErrorModel) Error() string {
	return e.Message
}

func (e *ErrorModel) GetStatus() int {
	return e.status
}

func newError(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	return &ErrorModel{
		status:  status,
		Message: msg,
		Details: details,
	}
}

func init() {
	huma.NewError = newError
}
