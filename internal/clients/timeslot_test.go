package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-service/internal/domain"
)

func TestSetTimeslotStatusSendsBody(t *testing.T) {
	var gotPath, gotMethod string
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{}}`))
	}))
	defer srv.Close()

	id := "b-1"
	c := NewTimeslotClient(srv.URL+"/", time.Second)
	if err := c.SetTimeslotStatus(context.Background(), "p1", "t1", "booked", &id); err != nil {
		t.Fatalf("SetTimeslotStatus returned error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/timeslots/p1/t1" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	if got["status"] != "booked" || got["serviceId"] != "b-1" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestSetTimeslotStatusNullServiceID(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewTimeslotClient(srv.URL, time.Second)
	if err := c.SetTimeslotStatus(context.Background(), "p1", "t1", "available", nil); err != nil {
		t.Fatalf("SetTimeslotStatus returned error: %v", err)
	}
	v, ok := got["serviceId"]
	if !ok || v != nil {
		t.Fatalf("expected explicit null serviceId, got %v (present=%v)", v, ok)
	}
}

func TestSetTimeslotStatusRemoteRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"Timeslot already booked","data":null}`))
	}))
	defer srv.Close()

	err := NewTimeslotClient(srv.URL, time.Second).SetTimeslotStatus(context.Background(), "p1", "t1", "booked", nil)
	var rc domain.RemoteCallError
	if !errors.As(err, &rc) {
		t.Fatalf("expected RemoteCallError, got %v", err)
	}
	if rc.Msg != "Timeslot already booked" {
		t.Fatalf("unexpected message %q", rc.Msg)
	}
}

func TestSetTimeslotStatusRejectWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	err := NewTimeslotClient(srv.URL, time.Second).SetTimeslotStatus(context.Background(), "p1", "t1", "booked", nil)
	if err == nil || err.Error() != "Failed to update timeslot" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetTimeslotStatusMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	}))
	defer srv.Close()

	err := NewTimeslotClient(srv.URL, time.Second).SetTimeslotStatus(context.Background(), "p1", "t1", "booked", nil)
	if err == nil || err.Error() != "Error calling timeslot service" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetTimeslotStatusTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	err := NewTimeslotClient(srv.URL, 20*time.Millisecond).SetTimeslotStatus(context.Background(), "p1", "t1", "booked", nil)
	var rc domain.RemoteCallError
	if !errors.As(err, &rc) || rc.Msg != "Error calling timeslot service" {
		t.Fatalf("expected transport RemoteCallError, got %v", err)
	}
}
