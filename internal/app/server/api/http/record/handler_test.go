package record

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"datareceiver/internal/domain/record"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Submit(ctx context.Context, sub record.Submission) (*record.Record, error) {
	args := m.Called(ctx, sub)
	// Безопасное приведение nil к указателю
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Record), args.Error(1)
}

func (m *MockService) Query(ctx context.Context, filter record.Filter) ([]record.Record, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Record), args.Error(1)
}

func newTestAPI(t *testing.T, svc record.Servicer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc, nil, nil).SetupRoutes(api)
	return api
}

func decodeBody(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHandler_Create(t *testing.T) {
	sub := record.Submission{ID: "unique123", Origin: "web-app", MimeData: "This is some text data."}

	t.Run("Created", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)

		stored := &record.Record{ID: sub.ID, Origin: sub.Origin, MimeData: sub.MimeData, Datetime: "2025-04-09T10:11:12.345Z"}
		svc.On("Submit", mock.Anything, sub).Return(stored, nil)

		resp := api.Post("/data", map[string]any{
			"id":        sub.ID,
			"origin":    sub.Origin,
			"mime_data": sub.MimeData,
		})

		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
		body := decodeBody(t, resp.Body.Bytes())
		assert.Equal(t, "Data received and saved successfully", body["message"])
		assert.Equal(t, map[string]any{
			"id":        "unique123",
			"origin":    "web-app",
			"mime_data": "This is some text data.",
			"datetime":  "2025-04-09T10:11:12.345Z",
		}, body["data"])
		assert.NotContains(t, body, "error")
		svc.AssertExpectations(t)
	})

	t.Run("Unknown fields are ignored", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Submit", mock.Anything, sub).Return(&record.Record{ID: sub.ID}, nil)

		resp := api.Post("/data", map[string]any{
			"id":        sub.ID,
			"origin":    sub.Origin,
			"mime_data": sub.MimeData,
			"text":      "extra",
		})

		assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	})

	t.Run("Missing fields", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Submit", mock.Anything, record.Submission{ID: "a", Origin: "web-app"}).
			Return(nil, record.ErrMissingFields)

		resp := api.Post("/data", map[string]any{"id": "a", "origin": "web-app", "mime_data": ""})

		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Missing required fields (id, origin, mime_data)", decodeBody(t, resp.Body.Bytes())["error"])
	})

	t.Run("Falsy non-string fields count as missing", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Submit", mock.Anything, record.Submission{ID: "a", Origin: "web-app"}).
			Return(nil, record.ErrMissingFields)

		resp := api.Post("/data", map[string]any{"id": "a", "origin": "web-app", "mime_data": false})

		require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
		assert.Equal(t, "Missing required fields (id, origin, mime_data)", decodeBody(t, resp.Body.Bytes())["error"])
		svc.AssertExpectations(t)
	})

	t.Run("Empty body", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Submit", mock.Anything, record.Submission{}).Return(nil, record.ErrMissingFields)

		resp := api.Post("/data")

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("Duplicate id", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Submit", mock.Anything, sub).Return(nil, record.ErrDuplicateID)

		resp := api.Post("/data", map[string]any{"id": sub.ID, "origin": sub.Origin, "mime_data": sub.MimeData})

		require.Equal(t, http.StatusConflict, resp.Code)
		assert.Equal(t, "Data with ID 'unique123' already exists", decodeBody(t, resp.Body.Bytes())["error"])
	})

	t.Run("Storage failure does not leak details", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Submit", mock.Anything, sub).
			Return(nil, errors.Join(record.ErrStorage, errors.New("database disk image is malformed")))

		resp := api.Post("/data", map[string]any{"id": sub.ID, "origin": sub.Origin, "mime_data": sub.MimeData})

		require.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, "Failed to save data to the database", decodeBody(t, resp.Body.Bytes())["error"])
		assert.NotContains(t, resp.Body.String(), "malformed")
	})
}

func TestHandler_List(t *testing.T) {
	rows := []record.Record{
		{ID: "a1", Origin: "A", MimeData: "<b>hi</b>", Datetime: "2025-04-09T10:00:00.000Z"},
		{ID: "b1", Origin: "B", MimeData: "plain", Datetime: "2025-04-10T10:00:00.000Z"},
	}

	t.Run("HTML table by default", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Query", mock.Anything, record.Filter{}).Return(rows, nil)

		resp := api.Get("/data")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
		body := resp.Body.String()
		assert.Contains(t, body, "<table>")
		assert.Contains(t, body, "a1")
		assert.Contains(t, body, "2025-04-10T10:00:00.000Z")
		// содержимое экранируется шаблоном
		assert.Contains(t, body, "&lt;b&gt;hi&lt;/b&gt;")
	})

	t.Run("Filters are passed to the service", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Query", mock.Anything, record.Filter{Origin: "A", Date: "2025-04-09"}).Return(rows[:1], nil)

		resp := api.Get("/data?origin=A&date=2025-04-09", "Accept: application/json")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

		var got []record.Record
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, rows[:1], got)
		svc.AssertExpectations(t)
	})

	t.Run("Empty result is 200", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Query", mock.Anything, record.Filter{Origin: "nobody"}).Return([]record.Record{}, nil)

		resp := api.Get("/data?origin=nobody", "Accept: application/json")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, "[]", resp.Body.String())

		resp = api.Get("/data?origin=nobody")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "No data found.")
	})

	t.Run("Storage failure", func(t *testing.T) {
		svc := new(MockService)
		api := newTestAPI(t, svc)
		svc.On("Query", mock.Anything, record.Filter{}).Return(nil, record.ErrStorage)

		resp := api.Get("/data")

		require.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, "Failed to retrieve data from the database", decodeBody(t, resp.Body.Bytes())["error"])
	})
}

func TestFieldText(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: nil, want: ""},
		{in: "", want: ""},
		{in: false, want: ""},
		{in: float64(0), want: ""},
		{in: "text", want: "text"},
		{in: true, want: "true"},
		{in: float64(42), want: "42"},
		{in: 1.5, want: "1.5"},
		{in: []any{"a", float64(1)}, want: `["a",1]`},
		{in: map[string]any{"k": "v"}, want: `{"k":"v"}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fieldText(tt.in), "%#v", tt.in)
	}
}

func TestWantsJSON(t *testing.T) {
	assert.True(t, wantsJSON("application/json"))
	assert.True(t, wantsJSON("Application/JSON; charset=utf-8"))
	assert.False(t, wantsJSON(""))
	assert.False(t, wantsJSON("text/html,application/xhtml+xml,application/json;q=0.9"))
	assert.False(t, wantsJSON("*/*"))
}
