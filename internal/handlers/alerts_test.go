package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"solarwatch/internal/models"
	"solarwatch/internal/service"
)

func TestAlertHandlers_ListActive(t *testing.T) {
	alerts := &mockAlerts{active: []models.Alert{
		{ID: "alert-1", PlantID: "plant-001", Level: models.AlertCritical, Title: "No Production During Daylight"},
	}}
	s := &service.Service{Authorization: &mockAuth{}, Alerts: alerts}
	r := newTestRouter(s)

	w := doAuthed(r, http.MethodGet, "/api/v1/alerts?plant_id=plant-001&level=Critical")
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Count  int            `json:"count"`
		Alerts []models.Alert `json:"alerts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal alerts: %v", err)
	}
	if resp.Count != 1 || resp.Alerts[0].ID != "alert-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if alerts.lastFilter.PlantID != "plant-001" || alerts.lastFilter.Level != "Critical" {
		t.Fatalf("filter not forwarded: %+v", alerts.lastFilter)
	}
}

func TestAlertHandlers_InvalidLevel(t *testing.T) {
	alerts := &mockAlerts{activeErr: service.ErrValidation}
	s := &service.Service{Authorization: &mockAuth{}, Alerts: alerts}
	r := newTestRouter(s)

	w := doAuthed(r, http.MethodGet, "/api/v1/alerts?level=Severe")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAlertHandlers_History(t *testing.T) {
	alerts := &mockAlerts{history: []models.Alert{{ID: "alert-9", Acknowledged: true}}}
	s := &service.Service{Authorization: &mockAuth{}, Alerts: alerts}
	r := newTestRouter(s)

	t.Run("custom window", func(t *testing.T) {
		w := doAuthed(r, http.MethodGet, "/api/v1/alerts/history?days=14")
		if w.Code != http.StatusOK {
			t.Fatalf("history status=%d, body=%s", w.Code, w.Body.String())
		}
		if alerts.lastDays != 14 {
			t.Fatalf("days = %d, want 14", alerts.lastDays)
		}
	})

	t.Run("negative days rejected", func(t *testing.T) {
		w := doAuthed(r, http.MethodGet, "/api/v1/alerts/history?days=-3")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-numeric days rejected", func(t *testing.T) {
		w := doAuthed(r, http.MethodGet, "/api/v1/alerts/history?days=week")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAlertHandlers_Create(t *testing.T) {
	alerts := &mockAlerts{created: models.Alert{ID: "alert-new", PlantID: "plant-001", Level: models.AlertWarning}}
	s := &service.Service{Authorization: &mockAuth{}, Alerts: alerts}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"plant_id":"plant-001","level":"Warning","title":"Inverter temperature high","message":"Inverter 2 at 78C"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", body)
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	if alerts.createCalls != 1 || alerts.lastCreateID != "plant-001" {
		t.Fatalf("create not forwarded: calls=%d plant=%q", alerts.createCalls, alerts.lastCreateID)
	}
	var created models.Alert
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created alert: %v", err)
	}
	if created.ID != "alert-new" {
		t.Fatalf("unexpected created alert: %+v", created)
	}

	// Missing required fields → 400 before the service is hit.
	body = bytes.NewBufferString(`{"plant_id":"plant-001"}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/alerts", body)
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on incomplete body, got %d", w.Code)
	}
	if alerts.createCalls != 1 {
		t.Fatalf("service should not be called on binding failure")
	}
}

func TestAlertHandlers_Acknowledge(t *testing.T) {
	t.Run("acknowledged", func(t *testing.T) {
		alerts := &mockAlerts{}
		s := &service.Service{Authorization: &mockAuth{}, Alerts: alerts}
		r := newTestRouter(s)

		w := doAuthed(r, http.MethodPost, "/api/v1/alerts/alert-1/ack")
		if w.Code != http.StatusOK {
			t.Fatalf("ack status=%d, body=%s", w.Code, w.Body.String())
		}
		if alerts.ackCalls != 1 || alerts.lastAckID != "alert-1" {
			t.Fatalf("ack not forwarded: calls=%d id=%q", alerts.ackCalls, alerts.lastAckID)
		}
	})

	t.Run("unknown alert", func(t *testing.T) {
		alerts := &mockAlerts{ackErr: service.ErrAlertNotFound}
		s := &service.Service{Authorization: &mockAuth{}, Alerts: alerts}
		r := newTestRouter(s)

		w := doAuthed(r, http.MethodPost, "/api/v1/alerts/alert-404/ack")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
