package record

import (
	"datareceiver/internal/domain/record"
)

const (
	msgCreated        = "Data received and saved successfully"
	msgMissingFields  = "Missing required fields (id, origin, mime_data)"
	msgDuplicateFmt   = "Data with ID '%s' already exists"
	msgSaveFailed     = "Failed to save data to the database"
	msgRetrieveFailed = "Failed to retrieve data from the database"
)

type createInput struct {
	// Пустое тело обрабатывается как запрос без полей (400), а не ошибкой фреймворка
	Body createRequest `required:"false"`
}

// Поля принимают любой JSON тип: ложные значения (null, false, 0, "") считаются отсутствующими
type createRequest struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	ID       any      `json:"id,omitempty" doc:"Уникальный идентификатор записи" example:"unique123"`
	Origin   any      `json:"origin,omitempty" doc:"Источник данных" example:"web-app"`
	MimeData any      `json:"mime_data,omitempty" doc:"Произвольное содержимое" example:"This is some text data."`
}

type createOutput struct {
	Status int
	Body   createResponse
}

type createResponse struct {
	Message string         `json:"message,omitempty"`
	Data    *record.Record `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type listInput struct {
	Origin string `query:"origin" doc:"Фильтр по источнику (точное совпадение)" example:"web-app"`
	Date   string `query:"date" doc:"Фильтр по дате записи в формате YYYY-MM-DD" example:"2025-04-09"`
	Accept string `header:"Accept" doc:"application/json для выдачи в JSON, иначе HTML таблица"`
}

type listOutput struct {
	Status      int
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type errorBody struct {
	Error string `json:"error"`
}
