package record

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"datareceiver/internal/app/server/metrics"
	"datareceiver/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		service:    service,
		log:        log.With("component", "data_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	sub := record.Submission{
		ID:       fieldText(input.Body.ID),
		Origin:   fieldText(input.Body.Origin),
		MimeData: fieldText(input.Body.MimeData),
	}

	rec, err := h.service.Submit(ctx, sub)
	if err != nil {
		switch {
		case errors.Is(err, record.ErrMissingFields):
			metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeMissing).Inc()
			return failure(http.StatusBadRequest, msgMissingFields), nil
		case errors.Is(err, record.ErrDuplicateID):
			metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeConflict).Inc()
			return failure(http.StatusConflict, fmt.Sprintf(msgDuplicateFmt, sub.ID)), nil
		default:
			metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
			// детали ошибки хранилища остаются в логах сервиса
			return failure(http.StatusInternalServerError, msgSaveFailed), nil
		}
	}

	metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeCreated).Inc()

	return &createOutput{
		Status: http.StatusCreated,
		Body: createResponse{
			Message: msgCreated,
			Data:    rec,
		},
	}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	filter := record.Filter{Origin: input.Origin, Date: input.Date}

	records, err := h.service.Query(ctx, filter)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return jsonError(http.StatusInternalServerError, msgRetrieveFailed), nil
	}

	metrics.QueriesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.QueryResultRows.Observe(float64(len(records)))

	if wantsJSON(input.Accept) {
		body, err := json.Marshal(records)
		if err != nil {
			h.log.Error("failed to encode records", "error", err)
			return jsonError(http.StatusInternalServerError, msgRetrieveFailed), nil
		}
		return &listOutput{
			Status:      http.StatusOK,
			ContentType: "application/json",
			Body:        body,
		}, nil
	}

	var buf bytes.Buffer
	if err := renderHTML(&buf, records, filter); err != nil {
		h.log.Error("failed to render records", "error", err)
		return jsonError(http.StatusInternalServerError, msgRetrieveFailed), nil
	}

	return &listOutput{
		Status:      http.StatusOK,
		ContentType: "text/html; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}

// Helper functions

func failure(status int, msg string) *createOutput {
	return &createOutput{
		Status: status,
		Body:   createResponse{Error: msg},
	}
}

func jsonError(status int, msg string) *listOutput {
	body, _ := json.Marshal(errorBody{Error: msg})
	return &listOutput{
		Status:      status,
		ContentType: "application/json",
		Body:        body,
	}
}

// fieldText приводит значение JSON поля к тексту колонки, ложные значения дают ""
func fieldText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
}

// wantsJSON is true for API clients; browsers also send text/html and get the table
func wantsJSON(accept string) bool {
	accept = strings.ToLower(accept)
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
