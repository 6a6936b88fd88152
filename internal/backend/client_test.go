package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franpass87/bookwidget/internal/config"
	"github.com/franpass87/bookwidget/internal/models"
)

func testClient(endpoint string) *Client {
	return New(config.Widget{
		ProductID:     "42",
		Endpoint:      endpoint,
		Token:         "secret",
		ErrorFallback: "Something went wrong, please try again",
	})
}

func TestQuerySlots(t *testing.T) {
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"action":     r.PostFormValue("action"),
			"token":      r.PostFormValue("token"),
			"product_id": r.PostFormValue("product_id"),
			"date":       r.PostFormValue("date"),
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"slots": []map[string]any{
					{"id": "7", "time": "10:00", "available": 3, "soldout": false},
					{"id": "3", "time": "09:00", "available": 0, "soldout": true},
				},
			},
		})
	}))
	defer srv.Close()

	slots := testClient(srv.URL).QuerySlots(context.Background(), "42", "2026-06-01")

	require.Len(t, slots, 2)
	// Server order is preserved as-is.
	assert.Equal(t, "7", slots[0].ID)
	assert.Equal(t, models.Slot{ID: "3", Time: "09:00", Available: 0, SoldOut: true}, slots[1])

	assert.Equal(t, "booking_slots", gotForm["action"])
	assert.Equal(t, "secret", gotForm["token"])
	assert.Equal(t, "42", gotForm["product_id"])
	assert.Equal(t, "2026-06-01", gotForm["date"])
}

func TestQuerySlotsEmptyDateMakesNoCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	slots := testClient(srv.URL).QuerySlots(context.Background(), "42", "")

	assert.Empty(t, slots)
	assert.Zero(t, calls.Load())
}

func TestQuerySlotsSoftFails(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "failure envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"success": false})
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>not json</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			slots := testClient(srv.URL).QuerySlots(context.Background(), "42", "2026-06-01")
			assert.Empty(t, slots, "slot query failures must resolve to an empty list")
		})
	}
}

func TestQuerySlotsUnreachableBackend(t *testing.T) {
	slots := testClient("http://127.0.0.1:1").QuerySlots(context.Background(), "42", "2026-06-01")
	assert.Empty(t, slots)
}

func TestValidateReservation(t *testing.T) {
	tests := []struct {
		name    string
		res     models.Reservation
		wantErr error
	}{
		{
			name:    "no slot selected",
			res:     models.Reservation{ProductID: "42", Adults: 2},
			wantErr: ErrNoSlotSelected,
		},
		{
			name:    "no participants",
			res:     models.Reservation{ProductID: "42", OccurrenceID: "7"},
			wantErr: ErrNoParticipants,
		},
		{
			name: "children only is valid",
			res:  models.Reservation{ProductID: "42", OccurrenceID: "7", Children: 1},
		},
		{
			name: "adults and children",
			res:  models.Reservation{ProductID: "42", OccurrenceID: "7", Adults: 2, Children: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReservation(tt.res)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitReservationValidationSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()
	client := testClient(srv.URL)

	res := client.SubmitReservation(context.Background(), models.Reservation{ProductID: "42", Adults: 1})
	assert.False(t, res.OK)
	assert.Equal(t, "select a slot", res.Message)

	res = client.SubmitReservation(context.Background(), models.Reservation{ProductID: "42", OccurrenceID: "7"})
	assert.False(t, res.OK)
	assert.Equal(t, "at least one participant required", res.Message)

	assert.Zero(t, calls.Load(), "validation failures must not reach the network")
}

func TestSubmitReservationSuccess(t *testing.T) {
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"action":        r.PostFormValue("action"),
			"occurrence_id": r.PostFormValue("occurrence_id"),
			"adults":        r.PostFormValue("adults"),
			"children":      r.PostFormValue("children"),
			"extras":        r.PostFormValue("extras"),
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"cart_url": "/cart"},
		})
	}))
	defer srv.Close()

	result := testClient(srv.URL).SubmitReservation(context.Background(), models.Reservation{
		ProductID:    "42",
		OccurrenceID: "7",
		Adults:       2,
		Children:     1,
		Extras:       []models.ReservationExtra{{Name: "Picnic basket", Price: 500}},
	})

	require.True(t, result.OK)
	assert.Equal(t, "/cart", result.CartURL)
	assert.Empty(t, result.Message)

	assert.Equal(t, "booking_reserve", gotForm["action"])
	assert.Equal(t, "7", gotForm["occurrence_id"])
	assert.Equal(t, "2", gotForm["adults"])
	assert.Equal(t, "1", gotForm["children"])

	var extras []models.ReservationExtra
	require.NoError(t, json.Unmarshal([]byte(gotForm["extras"]), &extras))
	require.Len(t, extras, 1)
	assert.Equal(t, "Picnic basket", extras[0].Name)
	assert.Equal(t, models.Cents(500), extras[0].Price)
}

func TestSubmitReservationBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"data":    map[string]any{"msg": "full"},
		})
	}))
	defer srv.Close()

	result := testClient(srv.URL).SubmitReservation(context.Background(), models.Reservation{
		ProductID: "42", OccurrenceID: "7", Adults: 1,
	})

	assert.False(t, result.OK)
	assert.Empty(t, result.CartURL)
	assert.Equal(t, "full", result.Message)
}

func TestSubmitReservationFallbackMessage(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "failure without message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"success": false})
			},
		},
		{
			name: "transport error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "success without cart url",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{}})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			result := testClient(srv.URL).SubmitReservation(context.Background(), models.Reservation{
				ProductID: "42", OccurrenceID: "7", Adults: 1,
			})
			assert.False(t, result.OK)
			assert.Equal(t, "Something went wrong, please try again", result.Message)
		})
	}
}

func TestSubmitReservationBareStringFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "data": "sold out while you were deciding"})
	}))
	defer srv.Close()

	result := testClient(srv.URL).SubmitReservation(context.Background(), models.Reservation{
		ProductID: "42", OccurrenceID: "7", Adults: 1,
	})
	assert.Equal(t, "sold out while you were deciding", result.Message)
}

func TestToggleFeature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "feature_toggle", r.PostFormValue("action"))
		assert.Equal(t, "gift-cards", r.PostFormValue("feature"))
		assert.Equal(t, "true", r.PostFormValue("enabled"))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	err := testClient(srv.URL).ToggleFeature(context.Background(), "gift-cards", true)
	assert.NoError(t, err)
}

func TestFetchCalendarOpaque(t *testing.T) {
	payload := `{"weeks":[{"days":[1,2,3]}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "admin_calendar", r.PostFormValue("action"))
		w.Write([]byte(`{"success":true,"data":` + payload + `}`))
	}))
	defer srv.Close()

	data, err := testClient(srv.URL).FetchCalendar(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))
}

func TestResetInstallationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "data": map[string]any{"msg": "locked"}})
	}))
	defer srv.Close()

	err := testClient(srv.URL).ResetInstallation(context.Background())
	require.Error(t, err)
	assert.Equal(t, "locked", err.Error())
}
