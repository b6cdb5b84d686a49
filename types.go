package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// Book represents a stored book. Its id is the store key.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BookView is a book joined with its id, as returned to clients.
type BookView struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (b Book) view(id int) BookView {
	return BookView{ID: id, Title: b.Title, Author: b.Author}
}

// envelope wraps every response body.
type envelope struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    any    `json:"data"`
}

// bookPayload is the request body for create and update. Pointers tell a
// missing field apart from an empty one.
type bookPayload struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
}

// api represents the API server with the book store and its instrumentation
type api struct {
	addr    string
	store   bookStore
	log     logrus.FieldLogger
	tracer  trace.Tracer
	metrics *metrics
}

// ctxKey is used for context keys to avoid collisions
type ctxKey string

// statusRecorder wraps http.ResponseWriter to capture status codes for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}
