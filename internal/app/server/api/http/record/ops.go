package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "data-create",
		Method:        http.MethodPost,
		Path:          "/data",
		Summary:       "Принять и сохранить запись",
		Description:   "Сохраняет запись {id, origin, mime_data}. Время записи назначает сервер. Повторный id отклоняется с 409.",
		Tags:          []string{"data"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "data-list",
		Method:      http.MethodGet,
		Path:        "/data",
		Summary:     "Список записей с фильтрами",
		Description: "Возвращает все записи, отфильтрованные по origin и/или дате. Без пагинации.",
		Tags:        []string{"data"},
		Middlewares: h.middleware,
	}
}
