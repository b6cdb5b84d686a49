package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

// addBook creates a book unless one with the same title exists. The title
// scan, id allocation and insert happen under a single store lock.
func (a *api) addBook(ctx context.Context, p *message.Printer, b Book) envelope {
	ctx, span := a.tracer.Start(ctx, "book.add", trace.WithAttributes(attribute.String("book.title", b.Title)))
	defer span.End()

	var created BookView
	err := a.store.Update(func(tx *Tx) error {
		if _, ok := tx.FindByTitle(b.Title); ok {
			return ErrDuplicateTitle
		}
		id := tx.NextID()
		tx.Insert(id, b)
		created = b.view(id)
		return nil
	})
	if errors.Is(err, ErrDuplicateTitle) {
		span.SetAttributes(attribute.Bool("book.duplicate", true))
		return envelope{Message: p.Sprintf(msgDuplicateTitle, b.Title), Status: http.StatusBadRequest}
	}
	if err != nil {
		return a.internalError(ctx, span, p, err)
	}

	span.SetAttributes(attribute.Int("book.id", created.ID))
	return envelope{Message: p.Sprintf(msgBookCreated), Status: http.StatusCreated, Data: created}
}

func (a *api) listBooks(ctx context.Context, p *message.Printer) envelope {
	ctx, span := a.tracer.Start(ctx, "book.list")
	defer span.End()

	var books []BookView
	err := a.store.View(func(tx *Tx) error {
		books = tx.List()
		return nil
	})
	if err != nil {
		return a.internalError(ctx, span, p, err)
	}

	span.SetAttributes(attribute.Int("book.count", len(books)))
	return envelope{Message: p.Sprintf(msgBooksListed), Status: http.StatusOK, Data: books}
}

func (a *api) findBook(ctx context.Context, p *message.Printer, id int) envelope {
	ctx, span := a.tracer.Start(ctx, "book.find", trace.WithAttributes(attribute.Int("book.id", id)))
	defer span.End()

	var found BookView
	err := a.store.View(func(tx *Tx) error {
		b, ok := tx.Get(id)
		if !ok {
			return ErrNotFound
		}
		found = b.view(id)
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return a.notFound(p, id)
	}
	if err != nil {
		return a.internalError(ctx, span, p, err)
	}
	return envelope{Message: p.Sprintf(msgBookFound), Status: http.StatusOK, Data: found}
}

// updateBook replaces title and author of an existing book. The new title
// is not checked against other books.
func (a *api) updateBook(ctx context.Context, p *message.Printer, id int, b Book) envelope {
	ctx, span := a.tracer.Start(ctx, "book.update", trace.WithAttributes(attribute.Int("book.id", id)))
	defer span.End()

	var updated BookView
	err := a.store.Update(func(tx *Tx) error {
		if !tx.Contains(id) {
			return ErrNotFound
		}
		tx.Insert(id, b)
		updated = b.view(id)
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return a.notFound(p, id)
	}
	if err != nil {
		return a.internalError(ctx, span, p, err)
	}
	return envelope{Message: p.Sprintf(msgBookUpdated), Status: http.StatusOK, Data: updated}
}

func (a *api) deleteBook(ctx context.Context, p *message.Printer, id int) envelope {
	ctx, span := a.tracer.Start(ctx, "book.delete", trace.WithAttributes(attribute.Int("book.id", id)))
	defer span.End()

	err := a.store.Update(func(tx *Tx) error {
		if !tx.Remove(id) {
			return ErrNotFound
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return a.notFound(p, id)
	}
	if err != nil {
		return a.internalError(ctx, span, p, err)
	}
	return envelope{Message: p.Sprintf(msgBookDeleted, strconv.Itoa(id)), Status: http.StatusAccepted}
}

func (a *api) notFound(p *message.Printer, id int) envelope {
	return envelope{Message: p.Sprintf(msgBookNotFound, strconv.Itoa(id)), Status: http.StatusNotFound}
}

func (a *api) internalError(ctx context.Context, span trace.Span, p *message.Printer, err error) envelope {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	a.log.WithField("request_id", GetRequestID(ctx)).WithError(err).Error("store operation failed")
	return envelope{Message: p.Sprintf(msgInternalError), Status: http.StatusInternalServerError}
}

// HTTP handlers

func (a *api) healthHandler(w http.ResponseWriter, r *http.Request) {
	p := printerFor(r)
	writeEnvelope(w, envelope{Message: p.Sprintf(msgHealthy), Status: http.StatusOK})
}

func (a *api) createBookHandler(w http.ResponseWriter, r *http.Request) {
	p := printerFor(r)
	b, bad := decodeBook(r, p)
	if bad != nil {
		writeEnvelope(w, *bad)
		return
	}
	writeEnvelope(w, a.addBook(r.Context(), p, b))
}

func (a *api) getBooksHandler(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, a.listBooks(r.Context(), printerFor(r)))
}

func (a *api) getBookByIdHandler(w http.ResponseWriter, r *http.Request) {
	p := printerFor(r)
	id, ok := bookID(w, r, p)
	if !ok {
		return
	}
	writeEnvelope(w, a.findBook(r.Context(), p, id))
}

func (a *api) updateBookByIdHandler(w http.ResponseWriter, r *http.Request) {
	p := printerFor(r)
	id, ok := bookID(w, r, p)
	if !ok {
		return
	}
	b, bad := decodeBook(r, p)
	if bad != nil {
		writeEnvelope(w, *bad)
		return
	}
	writeEnvelope(w, a.updateBook(r.Context(), p, id, b))
}

func (a *api) deleteBookByIdHandler(w http.ResponseWriter, r *http.Request) {
	p := printerFor(r)
	id, ok := bookID(w, r, p)
	if !ok {
		return
	}
	writeEnvelope(w, a.deleteBook(r.Context(), p, id))
}

func routeNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, envelope{Message: printerFor(r).Sprintf(msgRouteNotFound), Status: http.StatusNotFound})
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, envelope{Message: printerFor(r).Sprintf(msgMethodNotAllowed), Status: http.StatusMethodNotAllowed})
}

// bookID parses the {id} path segment, answering 404 itself when that
// fails. The route only matches digits, so failure means the number does
// not fit in an int and cannot be a stored id.
func bookID(w http.ResponseWriter, r *http.Request, p *message.Printer) (int, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeEnvelope(w, envelope{Message: p.Sprintf(msgBookNotFound, raw), Status: http.StatusNotFound})
		return 0, false
	}
	return id, true
}

// decodeBook reads a {title, author} body. Both fields must be present.
func decodeBook(r *http.Request, p *message.Printer) (Book, *envelope) {
	var payload bookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return Book{}, &envelope{Message: p.Sprintf(msgInvalidBody), Status: http.StatusBadRequest}
	}
	if payload.Title == nil || payload.Author == nil {
		return Book{}, &envelope{Message: p.Sprintf(msgMissingFields), Status: http.StatusBadRequest}
	}
	return Book{Title: *payload.Title, Author: *payload.Author}, nil
}

func writeEnvelope(w http.ResponseWriter, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.Status)
	_ = json.NewEncoder(w).Encode(env)
}
