package main

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys double as the English text.
const (
	msgBookCreated      = "book created"
	msgDuplicateTitle   = "book with title %s already exists"
	msgBooksListed      = "books retrieved"
	msgBookFound        = "book retrieved"
	msgBookNotFound     = "book with id %s not found"
	msgBookUpdated      = "book updated"
	msgBookDeleted      = "book with id %s deleted"
	msgInvalidBody      = "invalid request body"
	msgMissingFields    = "title and author are required"
	msgRouteNotFound    = "route not found"
	msgMethodNotAllowed = "method not allowed"
	msgInternalError    = "internal server error"
	msgHealthy          = "ok"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.Indonesian,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

func init() {
	id := map[string]string{
		msgBookCreated:      "Berhasil menambahkan buku baru",
		msgDuplicateTitle:   "Title %s sudah pernah ditambahkan",
		msgBooksListed:      "Berhasil mendapatkan semua buku",
		msgBookFound:        "Berhasil mendapatkan data buku",
		msgBookNotFound:     "Buku dengan id %s tidak ditemukan",
		msgBookUpdated:      "Berhasil mengupdate data buku",
		msgBookDeleted:      "Buku dengan id %s berhasil dihapus",
		msgInvalidBody:      "Body request tidak valid",
		msgMissingFields:    "Title dan author wajib diisi",
		msgRouteNotFound:    "Route tidak ditemukan",
		msgMethodNotAllowed: "Method tidak diizinkan",
		msgInternalError:    "Terjadi kesalahan pada server",
		msgHealthy:          "ok",
	}
	for key, msg := range id {
		if err := message.SetString(language.Indonesian, key, msg); err != nil {
			panic(err)
		}
	}
}

// printerFor picks the response language from the Accept-Language header.
// English is used when nothing matches.
func printerFor(r *http.Request) *message.Printer {
	_, idx := language.MatchStrings(languageMatcher, r.Header.Get("Accept-Language"))
	return message.NewPrinter(supportedLanguages[idx])
}
